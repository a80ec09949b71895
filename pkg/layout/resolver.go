package layout

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mkessler/startlayout/pkg/catalog"
	"github.com/mkessler/startlayout/pkg/errors"
)

// Resolver turns shortcut files into tiles via the identity catalog.
type Resolver struct {
	catalog catalog.Catalog
	logger  *log.Logger
}

// NewResolver creates a resolver over the given catalog.
// A nil logger falls back to log.Default().
func NewResolver(c catalog.Catalog, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{catalog: c, logger: logger}
}

// Resolve maps one shortcut file to a tile at the given grid position.
//
// The display name is the shortcut's base name with its extension stripped;
// it is looked up in the catalog case-insensitively. A miss returns (nil, nil):
// the shortcut is skipped and the caller must not advance its placer. A found
// identifier containing [PackagedAppMarker] yields a packaged-app tile,
// anything else a classic desktop tile.
func (r *Resolver) Resolve(ctx context.Context, path string, row, col int) (*Tile, error) {
	name := displayName(path)

	id, ok, err := r.catalog.Lookup(ctx, name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalog, err, "look up %q", name)
	}
	if !ok {
		r.logger.Debug("no catalog match, skipping shortcut", "name", name, "path", path)
		return nil, nil
	}

	kind := KindDesktopApp
	if strings.Contains(id, PackagedAppMarker) {
		kind = KindPackagedApp
	}

	return &Tile{Kind: kind, Column: col, Row: row, ID: id}, nil
}

// displayName strips the extension from a shortcut's base name.
func displayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// isShortcut reports whether a file name looks like a launcher shortcut.
func isShortcut(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ShortcutExt)
}
