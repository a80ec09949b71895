package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkessler/startlayout/pkg/catalog"
	"github.com/mkessler/startlayout/pkg/layout"
	"github.com/mkessler/startlayout/pkg/startxml"
)

// Runner executes the pipeline against one identity catalog.
//
// The Runner is stateless apart from the catalog and logger; it can be
// reused across runs with different options.
type Runner struct {
	Catalog catalog.Catalog
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(c catalog.Catalog, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Catalog: c, Logger: logger}
}

// Execute runs the complete build → serialize → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}

	result := &Result{Path: opts.Output}

	buildStart := time.Now()
	l, err := r.Build(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.count(l)

	r.Logger.Info("built layout",
		"groups", result.Stats.Groups,
		"folders", result.Stats.Folders,
		"tiles", result.Stats.Tiles,
		"duration", result.Stats.BuildTime)

	writeStart := time.Now()
	if err := startxml.WriteFile(opts.Output, l); err != nil {
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)

	r.Logger.Info("wrote layout document",
		"path", opts.Output,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Build runs only the layout-construction stage.
func (r *Runner) Build(ctx context.Context, opts Options) (*layout.Layout, error) {
	if !opts.validated {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}

	resolver := layout.NewResolver(r.Catalog, r.Logger)
	return layout.Build(ctx, resolver, opts.Root, layout.Options{
		Width:           opts.Width,
		OverrideOptions: opts.OverrideOptions,
		Header:          opts.Header,
		Footer:          opts.Footer,
		Exclude:         opts.Exclude,
	})
}
