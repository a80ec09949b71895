package layout

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkessler/startlayout/pkg/errors"
)

// StartupDirName is the top-level directory excluded from group building.
// Its shortcuts describe autostart behavior, not Start-menu placement.
const StartupDirName = "Startup"

// Options configures a layout build.
type Options struct {
	// Width is the group cell width. Zero means DefaultWidth.
	Width int

	// OverrideOptions is inserted verbatim into the document header.
	OverrideOptions string

	// Header and Footer override the serializer's document templates.
	Header string
	Footer string

	// Exclude lists additional top-level directory names to skip,
	// on top of the always-excluded Startup directory.
	Exclude []string
}

// Build constructs the complete layout from the shortcut tree rooted at root.
//
// Each immediate sub-directory of root becomes one group, in directory order.
// A missing root is fatal and produces nothing partial.
func Build(ctx context.Context, r *Resolver, root string, opts Options) (*Layout, error) {
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	if width < 2 || width%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "grid width must be a positive even integer, got %d", width)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRootNotFound, err, "shortcut root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeRootNotFound, "shortcut root %s is not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRootNotFound, err, "read shortcut root %s", root)
	}

	l := &Layout{
		Width:           width,
		OverrideOptions: opts.OverrideOptions,
		Header:          opts.Header,
		Footer:          opts.Footer,
	}

	for _, e := range entries {
		if !e.IsDir() || excluded(e.Name(), opts.Exclude) {
			continue
		}
		g, err := buildGroup(ctx, r, filepath.Join(root, e.Name()), width)
		if err != nil {
			return nil, err
		}
		l.Groups = append(l.Groups, g)
	}

	return l, nil
}

// buildGroup builds one group from a top-level directory. Folders and tiles
// share a single placement sequence in directory order.
func buildGroup(ctx context.Context, r *Resolver, dir string, width int) (Group, error) {
	g := Group{Name: filepath.Base(dir)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Group{}, errors.Wrap(errors.ErrCodeRootNotFound, err, "read group directory %s", dir)
	}

	placer := NewPlacer(width)
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		if e.IsDir() {
			row, col := placer.Pos()
			f, err := buildFolder(ctx, r, path, width, row, col)
			if err != nil {
				return Group{}, err
			}
			g.Folders = append(g.Folders, f)
			placer.Advance()
			continue
		}

		if !isShortcut(e.Name()) {
			continue
		}
		row, col := placer.Pos()
		t, err := r.Resolve(ctx, path, row, col)
		if err != nil {
			return Group{}, err
		}
		if t == nil {
			continue
		}
		g.Tiles = append(g.Tiles, *t)
		placer.Advance()
	}

	return g, nil
}

// buildFolder builds one folder from a sub-directory. Every shortcut below
// the directory, at any depth, lands in the folder's flat tile list; deeper
// sub-directories are not representable in the output dialect and only
// contribute their files. The folder's tiles sit on a fresh grid at (0,0),
// independent of the grid that positions the folder itself.
func buildFolder(ctx context.Context, r *Resolver, dir string, width, row, col int) (Folder, error) {
	f := Folder{Column: col, Row: row}

	placer := NewPlacer(width)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(errors.ErrCodeRootNotFound, err, "walk folder directory %s", dir)
		}
		if d.IsDir() || !isShortcut(d.Name()) {
			return nil
		}
		trow, tcol := placer.Pos()
		t, rerr := r.Resolve(ctx, path, trow, tcol)
		if rerr != nil {
			return rerr
		}
		if t == nil {
			return nil
		}
		f.Tiles = append(f.Tiles, *t)
		placer.Advance()
		return nil
	})
	if err != nil {
		return Folder{}, err
	}

	return f, nil
}

// excluded reports whether a top-level directory name is skipped.
func excluded(name string, extra []string) bool {
	if name == StartupDirName {
		return true
	}
	for _, e := range extra {
		if strings.EqualFold(name, e) {
			return true
		}
	}
	return false
}
