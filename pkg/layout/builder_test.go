package layout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkessler/startlayout/pkg/catalog"
	apperrors "github.com/mkessler/startlayout/pkg/errors"
)

// writeShortcuts creates empty .lnk fixtures under dir, creating parents as needed.
func writeShortcuts(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuildTwoSiblingGroups(t *testing.T) {
	root := t.TempDir()
	writeShortcuts(t, root, "Office/Excel.lnk", "Tools/Calculator.lnk")

	r := testResolver([]catalog.Entry{
		{Name: "Excel", ID: `C:\Office\EXCEL.EXE`},
		{Name: "Calculator", ID: "calc!App"},
	})

	l, err := Build(context.Background(), r, root, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(l.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(l.Groups))
	}
	for _, g := range l.Groups {
		if len(g.Tiles) != 1 || len(g.Folders) != 0 {
			t.Fatalf("group %s: %d tiles %d folders, want 1 tile", g.Name, len(g.Tiles), len(g.Folders))
		}
		tile := g.Tiles[0]
		if tile.Row != 0 || tile.Column != 0 {
			t.Errorf("group %s tile at (%d,%d), want (0,0)", g.Name, tile.Row, tile.Column)
		}
	}
	if l.Groups[0].Name != "Office" || l.Groups[1].Name != "Tools" {
		t.Errorf("group names %q, %q; want directory order Office, Tools", l.Groups[0].Name, l.Groups[1].Name)
	}
}

func TestBuildSkipsUnresolvableWithoutGap(t *testing.T) {
	root := t.TempDir()
	writeShortcuts(t, root, "Apps/Alpha.lnk", "Apps/Beta.lnk")

	// Alpha has no catalog entry; Beta must still land at (0,0).
	r := testResolver([]catalog.Entry{{Name: "Beta", ID: "beta!App"}})

	l, err := Build(context.Background(), r, root, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	g := l.Groups[0]
	if len(g.Tiles) != 1 {
		t.Fatalf("got %d tiles, want 1", len(g.Tiles))
	}
	if g.Tiles[0].ID != "beta!App" || g.Tiles[0].Row != 0 || g.Tiles[0].Column != 0 {
		t.Errorf("tile = %+v, want beta!App at (0,0)", g.Tiles[0])
	}
}

func TestBuildExcludesStartup(t *testing.T) {
	root := t.TempDir()
	writeShortcuts(t, root,
		"Office/Excel.lnk",
		"Startup/Updater.lnk",
		"Tools/Calculator.lnk",
	)

	r := testResolver([]catalog.Entry{
		{Name: "Excel", ID: "excel.exe"},
		{Name: "Updater", ID: "updater.exe"},
		{Name: "Calculator", ID: "calc!App"},
	})

	l, err := Build(context.Background(), r, root, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(l.Groups) != 2 {
		t.Fatalf("got %d groups, want 2 (Startup excluded)", len(l.Groups))
	}
	for _, g := range l.Groups {
		if g.Name == StartupDirName {
			t.Error("Startup directory produced a group")
		}
	}
}

func TestBuildSharedGroupPlacement(t *testing.T) {
	root := t.TempDir()
	// Directory order in the group: Accessories (dir), a.lnk, b.lnk, c.lnk.
	writeShortcuts(t, root,
		"Apps/Accessories/Paint.lnk",
		"Apps/a.lnk", "Apps/b.lnk", "Apps/c.lnk",
	)

	r := testResolver([]catalog.Entry{
		{Name: "Paint", ID: "paint!App"},
		{Name: "a", ID: "a.exe"},
		{Name: "b", ID: "b.exe"},
		{Name: "c", ID: "c.exe"},
	})

	l, err := Build(context.Background(), r, root, Options{Width: 6})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	g := l.Groups[0]
	if len(g.Folders) != 1 || len(g.Tiles) != 3 {
		t.Fatalf("got %d folders %d tiles, want 1 and 3", len(g.Folders), len(g.Tiles))
	}

	// Folder consumed (0,0); tiles follow on the shared sequence and wrap.
	f := g.Folders[0]
	if f.Row != 0 || f.Column != 0 {
		t.Errorf("folder at (%d,%d), want (0,0)", f.Row, f.Column)
	}
	wantTiles := [][2]int{{0, 2}, {0, 4}, {2, 0}}
	for i, w := range wantTiles {
		if g.Tiles[i].Row != w[0] || g.Tiles[i].Column != w[1] {
			t.Errorf("tile %d at (%d,%d), want (%d,%d)", i, g.Tiles[i].Row, g.Tiles[i].Column, w[0], w[1])
		}
	}

	// The folder's internal grid is independent and starts at (0,0).
	if len(f.Tiles) != 1 || f.Tiles[0].Row != 0 || f.Tiles[0].Column != 0 {
		t.Errorf("folder tiles = %+v, want one tile at (0,0)", f.Tiles)
	}
}

func TestBuildFlattensDeepNesting(t *testing.T) {
	root := t.TempDir()
	writeShortcuts(t, root,
		"Apps/Utilities/Archive/Old/Legacy.lnk",
		"Apps/Utilities/Paint.lnk",
	)

	r := testResolver([]catalog.Entry{
		{Name: "Legacy", ID: "legacy.exe"},
		{Name: "Paint", ID: "paint!App"},
	})

	l, err := Build(context.Background(), r, root, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	g := l.Groups[0]
	if len(g.Folders) != 1 {
		t.Fatalf("got %d folders, want 1 (nesting flattened)", len(g.Folders))
	}
	f := g.Folders[0]
	if len(f.Tiles) != 2 {
		t.Fatalf("folder has %d tiles, want 2 flattened from all depths", len(f.Tiles))
	}
	// Walk order is lexical: Archive/Old/Legacy.lnk before Paint.lnk.
	if f.Tiles[0].ID != "legacy.exe" || f.Tiles[1].ID != "paint!App" {
		t.Errorf("folder tile order = %q, %q", f.Tiles[0].ID, f.Tiles[1].ID)
	}
	if f.Tiles[1].Row != 0 || f.Tiles[1].Column != 2 {
		t.Errorf("second folder tile at (%d,%d), want (0,2)", f.Tiles[1].Row, f.Tiles[1].Column)
	}
}

func TestBuildEmptyGroupStillEmitted(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Empty"), 0755); err != nil {
		t.Fatal(err)
	}

	l, err := Build(context.Background(), testResolver(nil), root, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(l.Groups) != 1 || l.Groups[0].Name != "Empty" {
		t.Fatalf("groups = %+v, want one empty group", l.Groups)
	}
}

func TestBuildIgnoresNonShortcutFiles(t *testing.T) {
	root := t.TempDir()
	writeShortcuts(t, root, "Apps/Calculator.lnk")
	if err := os.WriteFile(filepath.Join(root, "Apps", "desktop.ini"), []byte("[.ShellClassInfo]"), 0644); err != nil {
		t.Fatal(err)
	}

	r := testResolver([]catalog.Entry{
		{Name: "Calculator", ID: "calc!App"},
		{Name: "desktop", ID: "should-never-match"},
	})

	l, err := Build(context.Background(), r, root, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(l.Groups[0].Tiles) != 1 {
		t.Errorf("got %d tiles, want only the .lnk file resolved", len(l.Groups[0].Tiles))
	}
}

func TestBuildMissingRoot(t *testing.T) {
	_, err := Build(context.Background(), testResolver(nil), filepath.Join(t.TempDir(), "nope"), Options{})
	if !apperrors.Is(err, apperrors.ErrCodeRootNotFound) {
		t.Errorf("Build() error = %v, want ROOT_NOT_FOUND", err)
	}
}

func TestBuildRejectsOddWidth(t *testing.T) {
	_, err := Build(context.Background(), testResolver(nil), t.TempDir(), Options{Width: 5})
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("Build() error = %v, want INVALID_INPUT", err)
	}
}

func TestBuildExtraExclusions(t *testing.T) {
	root := t.TempDir()
	writeShortcuts(t, root, "Office/Excel.lnk", "Hidden/Secret.lnk")

	r := testResolver([]catalog.Entry{
		{Name: "Excel", ID: "excel.exe"},
		{Name: "Secret", ID: "secret.exe"},
	})

	l, err := Build(context.Background(), r, root, Options{Exclude: []string{"hidden"}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(l.Groups) != 1 || l.Groups[0].Name != "Office" {
		t.Errorf("groups = %+v, want only Office", l.Groups)
	}
}
