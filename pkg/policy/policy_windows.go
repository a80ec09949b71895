//go:build windows

package policy

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows/registry"

	"github.com/mkessler/startlayout/pkg/errors"
)

// explorerPolicyKey is the Explorer policy location holding the locked
// Start layout settings.
const explorerPolicyKey = `Software\Policies\Microsoft\Windows\Explorer`

// Apply puts the layout document into effect according to opts.
func Apply(ctx context.Context, logger *log.Logger, opts Options) error {
	if _, err := os.Stat(opts.LayoutPath); err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "layout document %s", opts.LayoutPath)
	}

	switch opts.Mode {
	case ModeProfile:
		return applyProfile(ctx, logger, opts)
	case ModeMachine:
		return applyMachine(logger, opts)
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown apply mode %q", opts.Mode)
}

// applyProfile imports the document into a mounted profile template via
// Import-StartLayout.
func applyProfile(ctx context.Context, logger *log.Logger, opts Options) error {
	if opts.MountPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "profile mode needs a mount path")
	}

	cmd := exec.CommandContext(ctx, "powershell.exe",
		"-NoProfile", "-NonInteractive", "-Command",
		"Import-StartLayout -LayoutPath $env:SL_LAYOUT -MountPath $env:SL_MOUNT")
	cmd.Env = append(os.Environ(),
		"SL_LAYOUT="+opts.LayoutPath,
		"SL_MOUNT="+opts.MountPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeApplyFailed, err, "Import-StartLayout failed: %s", strings.TrimSpace(stderr.String()))
	}

	logger.Info("imported layout into profile template", "layout", opts.LayoutPath, "mount", opts.MountPath)
	return nil
}

// applyMachine locks the Start layout machine-wide: the Explorer policy gets
// the document path, and the version counter next to the document is bumped
// so running sessions notice the change.
func applyMachine(logger *log.Logger, opts Options) error {
	abs, err := filepath.Abs(opts.LayoutPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeApplyFailed, err, "resolve layout path %s", opts.LayoutPath)
	}

	k, _, err := registry.CreateKey(registry.LOCAL_MACHINE, explorerPolicyKey, registry.SET_VALUE)
	if err != nil {
		return errors.Wrap(errors.ErrCodeApplyFailed, err, "open policy key %s", explorerPolicyKey)
	}
	defer k.Close()

	if err := k.SetDWordValue("LockedStartLayout", 1); err != nil {
		return errors.Wrap(errors.ErrCodeApplyFailed, err, "set LockedStartLayout")
	}
	if err := k.SetStringValue("StartLayoutFile", abs); err != nil {
		return errors.Wrap(errors.ErrCodeApplyFailed, err, "set StartLayoutFile")
	}

	versionPath := filepath.Join(filepath.Dir(abs), VersionFileName)
	version, err := bumpVersion(versionPath)
	if err != nil {
		return err
	}

	logger.Info("applied machine start layout policy", "layout", abs, "version", version)
	return nil
}
