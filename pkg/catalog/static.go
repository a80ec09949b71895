package catalog

import (
	"context"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mkessler/startlayout/pkg/errors"
)

// Entry is one display-name to identifier mapping in a static catalog file.
type Entry struct {
	Name string `toml:"name"`
	ID   string `toml:"id"`
}

// staticFile is the TOML shape of a catalog file:
//
//	[[app]]
//	name = "Calculator"
//	id = "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App"
//
//	[[app]]
//	name = "Notepad++"
//	id = "{6D809377-6AF0-444B-8957-A3773F02200E}\Notepad++\notepad++.exe"
type staticFile struct {
	App []Entry `toml:"app"`
}

// Static is a catalog loaded from a TOML file. Entries keep file order so
// that duplicate names resolve to the first declaration.
type Static struct {
	entries []Entry
}

// NewStatic creates a catalog from a list of entries. Mostly useful in tests;
// production code loads entries from a file with [LoadStatic].
func NewStatic(entries []Entry) *Static {
	return &Static{entries: entries}
}

// LoadStatic reads a static catalog from a TOML file.
func LoadStatic(path string) (*Static, error) {
	var f staticFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load catalog %s", path)
	}
	for _, e := range f.App {
		if e.Name == "" || e.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "catalog %s: every [[app]] entry needs name and id", path)
		}
	}
	return &Static{entries: f.App}, nil
}

// Lookup implements Catalog.
func (s *Static) Lookup(_ context.Context, displayName string) (string, bool, error) {
	for _, e := range s.entries {
		if strings.EqualFold(e.Name, displayName) {
			return e.ID, true, nil
		}
	}
	return "", false, nil
}

// Len returns the number of entries in the catalog.
func (s *Static) Len() int {
	return len(s.entries)
}
