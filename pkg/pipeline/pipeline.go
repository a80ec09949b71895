// Package pipeline provides the build → serialize → write flow for the
// startlayout tool.
//
// The CLI commands are thin wrappers over a [Runner]; centralizing the flow
// here keeps flag handling, config-file merging, and the core packages
// decoupled from each other.
//
// # Usage
//
//	runner := pipeline.NewRunner(cat, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Root:   `C:\ProgramData\Microsoft\Windows\Start Menu\Programs`,
//	    Output: `C:\Layouts\startlayout.xml`,
//	})
package pipeline

import (
	"time"

	"github.com/mkessler/startlayout/pkg/errors"
	"github.com/mkessler/startlayout/pkg/layout"
)

// Options contains all configuration for one pipeline run.
type Options struct {
	// Root is the shortcut tree to convert.
	Root string

	// Output is the destination path for the layout document.
	Output string

	// Width is the group cell width. Zero means layout.DefaultWidth.
	Width int

	// OverrideOptions is inserted verbatim into the document header.
	OverrideOptions string

	// Header and Footer override the document templates (rarely needed).
	Header string
	Footer string

	// Exclude lists extra top-level directories to skip.
	Exclude []string

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Root == "" {
		return errors.New(errors.ErrCodeInvalidInput, "a shortcut root directory is required")
	}
	if o.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "an output path is required")
	}
	if o.Width == 0 {
		o.Width = layout.DefaultWidth
	}
	if o.Width < 2 || o.Width%2 != 0 {
		return errors.New(errors.ErrCodeInvalidInput, "grid width must be a positive even integer, got %d", o.Width)
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the constructed layout tree.
	Layout *layout.Layout

	// Path is the written document's path.
	Path string

	// Stats contains counts and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Groups  int
	Folders int
	Tiles   int

	BuildTime time.Duration
	WriteTime time.Duration
}

// count fills the group/folder/tile counters from a built layout.
func (s *Stats) count(l *layout.Layout) {
	s.Groups = len(l.Groups)
	for _, g := range l.Groups {
		s.Folders += len(g.Folders)
		s.Tiles += len(g.Tiles)
		for _, f := range g.Folders {
			s.Tiles += len(f.Tiles)
		}
	}
}
