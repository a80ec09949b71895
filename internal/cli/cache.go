package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkessler/startlayout/pkg/cache"
)

// cacheCommand creates the cache command with its subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the persistent lookup cache",
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheClearCommand())

	return cmd
}

func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show lookup cache location and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}

			entries, size := cacheStats(dir)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s %d entries, %d bytes\n",
				StyleDim.Render("dir: "), StyleValue.Render(dir),
				StyleDim.Render("size:"), entries, size)
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached lookup results",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared lookup cache at %s", dir)
			return nil
		},
	}
}

// cacheStats counts entry files and their total size. A missing directory
// counts as an empty cache.
func cacheStats(dir string) (entries int, size int64) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		entries++
		if info, ierr := d.Info(); ierr == nil {
			size += info.Size()
		}
		return nil
	})
	return entries, size
}
