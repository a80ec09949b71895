// Package policy makes a produced layout document take effect.
//
// Two modes exist, mirroring the two deployment scopes:
//
//   - profile: import the document into a user profile template mounted at a
//     given path, so new profiles created from the template pick it up.
//   - machine: point the Explorer machine policy at the document and bump the
//     version counter file next to it, forcing existing sessions to reload.
//
// Both modes are Windows-only; other platforms get a stub that reports
// UNSUPPORTED. The layout core never calls this package.
package policy

import (
	"bytes"
	"os"
	"strconv"

	"github.com/mkessler/startlayout/pkg/errors"
)

// Mode selects how a layout document is applied.
type Mode string

const (
	// ModeProfile imports the document against a mounted profile template.
	ModeProfile Mode = "profile"

	// ModeMachine writes the document path into the Explorer machine policy
	// and increments the layout version counter.
	ModeMachine Mode = "machine"
)

// ParseMode validates a mode string from the command line.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeProfile, ModeMachine:
		return Mode(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "apply mode must be %q or %q, got %q", ModeProfile, ModeMachine, s)
}

// Options configures one apply run.
type Options struct {
	Mode Mode

	// LayoutPath is the serialized layout document.
	LayoutPath string

	// MountPath is the mounted profile template root (profile mode only).
	MountPath string
}

// VersionFileName is the counter file kept next to the layout document in
// machine mode. Explorer re-reads the layout when the number changes.
const VersionFileName = "layoutversion"

// bumpVersion increments the counter in path, creating it at 1 when missing
// or unreadable, and returns the new value.
func bumpVersion(path string) (int, error) {
	version := 0
	if data, err := os.ReadFile(path); err == nil {
		if n, perr := strconv.Atoi(string(bytes.TrimSpace(data))); perr == nil {
			version = n
		}
	}
	version++
	if err := os.WriteFile(path, []byte(strconv.Itoa(version)), 0644); err != nil {
		return 0, errors.Wrap(errors.ErrCodeApplyFailed, err, "write version counter %s", path)
	}
	return version, nil
}
