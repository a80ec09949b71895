package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkessler/startlayout/pkg/pipeline"
)

// defaultOutput is where the layout document lands when neither the flag
// nor the config file names a destination.
const defaultOutput = "startlayout.xml"

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output          string   // destination path for the layout document
	width           int      // group cell width (even)
	overrideOptions string   // attribute text inserted into the header
	catalogPath     string   // static catalog file
	configPath      string   // tool config file
	exclude         []string // extra top-level directories to skip
	noCache         bool     // disable the persistent lookup cache
}

// buildCommand creates the build command: shortcut tree in, layout document out.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [root]",
		Short: "Build a layout document from a shortcut tree",
		Long: `Build walks the shortcut tree rooted at the given directory, resolves
every shortcut against the identity catalog, and writes the resulting
Start menu layout-modification document.

Each immediate sub-directory of the root becomes a named group; a directory
inside a group becomes a folder. The top-level "Startup" directory is always
skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file (default "+defaultOutput+")")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "group cell width, an even integer (default 6)")
	cmd.Flags().StringVar(&opts.overrideOptions, "override-options", "", "attribute text inserted verbatim into the document header")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "static catalog file mapping display names to identifiers")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "tool config file (default "+defaultConfigName+" if present)")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "extra top-level directories to skip")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the persistent lookup cache")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, root string, opts buildOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// Flags win over config-file values.
	if opts.output == "" {
		opts.output = cfg.Output
	}
	if opts.output == "" {
		opts.output = defaultOutput
	}
	if opts.width == 0 {
		opts.width = cfg.Width
	}
	if opts.overrideOptions == "" {
		opts.overrideOptions = cfg.OverrideOptions
	}
	if opts.catalogPath == "" {
		opts.catalogPath = cfg.Catalog
	}
	exclude := append(append([]string{}, cfg.Exclude...), opts.exclude...)

	cat, err := c.newCatalog(opts.catalogPath, opts.noCache)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cat, c.Logger)

	spin := newSpinner("Building layout...")
	spin.Start()
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Root:            root,
		Output:          opts.output,
		Width:           opts.width,
		OverrideOptions: opts.overrideOptions,
		Exclude:         exclude,
	})
	if err != nil {
		spin.StopWithError("Build failed")
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Wrote %s (%d groups, %d folders, %d tiles)",
		StyleHighlight.Render(result.Path),
		result.Stats.Groups, result.Stats.Folders, result.Stats.Tiles))

	return nil
}
