package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkessler/startlayout/pkg/policy"
)

// applyOpts holds the command-line flags for the apply command.
type applyOpts struct {
	mode       string // "profile" or "machine"
	mount      string // mounted profile template root (profile mode)
	configPath string // tool config file
}

// applyCommand creates the apply command, putting an existing layout
// document into effect.
func (c *CLI) applyCommand() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   "apply [layout.xml]",
		Short: "Apply a layout document through the OS policy mechanism",
		Long: `Apply puts a previously built layout document into effect.

In profile mode the document is imported into a user profile template
mounted at --mount, so new profiles pick it up. In machine mode the
Explorer machine policy is pointed at the document and the layout version
counter next to it is incremented, forcing running sessions to reload.

Both modes require Windows and administrative rights.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "apply mode: profile or machine")
	cmd.Flags().StringVar(&opts.mount, "mount", "", "mounted profile template root (profile mode)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "tool config file (default "+defaultConfigName+" if present)")

	return cmd
}

func (c *CLI) runApply(cmd *cobra.Command, layoutPath string, opts applyOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.mode == "" {
		opts.mode = cfg.Apply.Mode
	}
	if opts.mode == "" {
		opts.mode = string(policy.ModeMachine)
	}
	if opts.mount == "" {
		opts.mount = cfg.Apply.Mount
	}

	mode, err := policy.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	if err := policy.Apply(cmd.Context(), c.Logger, policy.Options{
		Mode:       mode,
		LayoutPath: layoutPath,
		MountPath:  opts.mount,
	}); err != nil {
		return err
	}
	p.done("Applied layout " + layoutPath)

	printSuccess("Applied %s in %s mode", StyleHighlight.Render(layoutPath), mode)
	return nil
}
