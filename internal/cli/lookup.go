package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkessler/startlayout/pkg/errors"
	"github.com/mkessler/startlayout/pkg/layout"
)

// lookupCommand creates the lookup command, a debugging aid that resolves a
// single display name the same way build does.
func (c *CLI) lookupCommand() *cobra.Command {
	var catalogPath string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "lookup [display name]",
		Short: "Resolve one display name against the identity catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.newCatalog(catalogPath, noCache)
			if err != nil {
				return err
			}

			name := args[0]
			id, ok, err := cat.Lookup(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New(errors.ErrCodeFileNotFound, "no catalog match for %q", name)
			}

			kind := "desktop application"
			if strings.Contains(id, layout.PackagedAppMarker) {
				kind = "packaged application"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s %s\n",
				StyleDim.Render("id:  "), StyleValue.Render(id),
				StyleDim.Render("kind:"), kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "static catalog file mapping display names to identifiers")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the persistent lookup cache")

	return cmd
}
