//go:build !windows

package catalog

import (
	"github.com/mkessler/startlayout/pkg/errors"
)

// NewStartApps is unavailable off Windows; there is no installed-application
// list to query. Builds on other platforms must use a static catalog file.
func NewStartApps() (Catalog, error) {
	return nil, errors.New(errors.ErrCodeUnsupported, "the installed-application catalog requires Windows")
}
