package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for startlayout.

To load completions:

Bash:
  $ source <(startlayout completion bash)

  # To load completions for each session, execute once:
  $ startlayout completion bash > /etc/bash_completion.d/startlayout

Zsh:
  $ startlayout completion zsh > "${fpath[1]}/_startlayout"

Fish:
  $ startlayout completion fish | source

  # To load completions for each session, execute once:
  $ startlayout completion fish > ~/.config/fish/completions/startlayout.fish

PowerShell:
  PS> startlayout completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> startlayout completion powershell > startlayout.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
