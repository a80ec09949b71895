//go:build windows

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"sync"

	"github.com/mkessler/startlayout/pkg/errors"
)

// StartApps is a catalog backed by the OS installed-application list.
//
// The list is obtained by shelling out to PowerShell's Get-StartApps, which
// reports every entry the Start menu itself can pin: packaged applications
// (AppUserModelID) and classic desktop applications (DesktopApplicationID).
// The scan runs once, on first lookup, and is reused for the rest of the run.
type StartApps struct {
	once    sync.Once
	scanErr error
	entries []Entry
}

// startApp mirrors one object in Get-StartApps JSON output.
type startApp struct {
	Name  string `json:"Name"`
	AppID string `json:"AppID"`
}

// NewStartApps creates a catalog over the OS installed-application list.
func NewStartApps() (*StartApps, error) {
	return &StartApps{}, nil
}

// Lookup implements Catalog.
func (s *StartApps) Lookup(ctx context.Context, displayName string) (string, bool, error) {
	s.once.Do(func() { s.scanErr = s.scan(ctx) })
	if s.scanErr != nil {
		return "", false, s.scanErr
	}
	for _, e := range s.entries {
		if strings.EqualFold(e.Name, displayName) {
			return e.ID, true, nil
		}
	}
	return "", false, nil
}

// scan runs Get-StartApps and parses its JSON output.
func (s *StartApps) scan(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "powershell.exe",
		"-NoProfile", "-NonInteractive", "-Command",
		"Get-StartApps | ConvertTo-Json -Compress")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeCatalog, err, "Get-StartApps failed: %s", strings.TrimSpace(stderr.String()))
	}

	out := bytes.TrimSpace(stdout.Bytes())
	if len(out) == 0 {
		return nil
	}

	// ConvertTo-Json emits a bare object when the list has one element.
	var apps []startApp
	if bytes.HasPrefix(out, []byte("{")) {
		var one startApp
		if err := json.Unmarshal(out, &one); err != nil {
			return errors.Wrap(errors.ErrCodeCatalog, err, "parse Get-StartApps output")
		}
		apps = []startApp{one}
	} else if err := json.Unmarshal(out, &apps); err != nil {
		return errors.Wrap(errors.ErrCodeCatalog, err, "parse Get-StartApps output")
	}

	s.entries = make([]Entry, 0, len(apps))
	for _, a := range apps {
		if a.Name == "" || a.AppID == "" {
			continue
		}
		s.entries = append(s.entries, Entry{Name: a.Name, ID: a.AppID})
	}
	return nil
}
