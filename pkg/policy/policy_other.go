//go:build !windows

package policy

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/mkessler/startlayout/pkg/errors"
)

// Apply is unavailable off Windows; layout documents can be built anywhere
// but only applied on the machine they target.
func Apply(_ context.Context, _ *log.Logger, _ Options) error {
	return errors.New(errors.ErrCodeUnsupported, "applying a start layout requires Windows")
}
