// Package cli implements the startlayout command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkessler/startlayout/pkg/buildinfo"
	"github.com/mkessler/startlayout/pkg/cache"
	"github.com/mkessler/startlayout/pkg/catalog"
	"github.com/mkessler/startlayout/pkg/errors"
)

// appName is the application name used for directories and display.
const appName = "startlayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "startlayout",
		Short:        "Startlayout turns shortcut trees into Start menu layout policies",
		Long: `Startlayout converts a directory tree of launcher shortcuts into a
Start menu layout-modification document, and can apply the document through
the user-profile or machine-policy mechanisms.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCatalog assembles the identity catalog for a run: the static catalog
// file (when configured) first, then the OS installed-application list,
// wrapped in the persistent lookup cache unless disabled.
func (c *CLI) newCatalog(staticPath string, noCache bool) (catalog.Catalog, error) {
	var chain catalog.Multi

	if staticPath != "" {
		static, err := catalog.LoadStatic(staticPath)
		if err != nil {
			return nil, err
		}
		chain = append(chain, static)
	}

	if osCatalog, err := catalog.NewStartApps(); err == nil {
		chain = append(chain, osCatalog)
	} else if errors.Is(err, errors.ErrCodeUnsupported) {
		c.Logger.Debug("installed-application catalog unavailable on this platform")
	} else {
		return nil, err
	}

	if len(chain) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"no identity catalog available; pass --catalog with a static catalog file")
	}

	return catalog.NewCached(chain, newLookupCache(noCache), 0), nil
}

func newLookupCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the lookup-cache directory using the XDG convention
// (~/.cache/startlayout/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
