package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkessler/startlayout/pkg/cache"
	"github.com/mkessler/startlayout/pkg/errors"
)

func TestStaticLookupCaseInsensitive(t *testing.T) {
	c := NewStatic([]Entry{
		{Name: "Calculator", ID: "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App"},
		{Name: "Excel", ID: `C:\Program Files\Microsoft Office\root\Office16\EXCEL.EXE`},
	})

	tests := []struct {
		query  string
		wantID string
		wantOK bool
	}{
		{"Calculator", "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App", true},
		{"calculator", "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App", true},
		{"CALCULATOR", "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App", true},
		{"excel", `C:\Program Files\Microsoft Office\root\Office16\EXCEL.EXE`, true},
		{"Calc", "", false},
	}

	for _, tt := range tests {
		id, ok, err := c.Lookup(context.Background(), tt.query)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", tt.query, err)
		}
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.query, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestStaticFirstEntryWins(t *testing.T) {
	c := NewStatic([]Entry{
		{Name: "Mail", ID: "first!Mail"},
		{Name: "mail", ID: "second!Mail"},
	})

	id, ok, err := c.Lookup(context.Background(), "MAIL")
	if err != nil || !ok {
		t.Fatalf("Lookup() = ok=%v err=%v, want hit", ok, err)
	}
	if id != "first!Mail" {
		t.Errorf("Lookup() = %q, want the first declared entry", id)
	}
}

func TestLoadStatic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.toml")
	content := `
[[app]]
name = "Calculator"
id = "Microsoft.WindowsCalculator_8wekyb3d8bbwe!App"

[[app]]
name = "Paint"
id = "Microsoft.Paint_8wekyb3d8bbwe!App"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadStatic(path)
	if err != nil {
		t.Fatalf("LoadStatic() error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	id, ok, _ := c.Lookup(context.Background(), "paint")
	if !ok || id != "Microsoft.Paint_8wekyb3d8bbwe!App" {
		t.Errorf("Lookup(paint) = (%q, %v)", id, ok)
	}
}

func TestLoadStaticRejectsIncompleteEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.toml")
	if err := os.WriteFile(path, []byte("[[app]]\nname = \"Calculator\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadStatic(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("LoadStatic() error = %v, want INVALID_CONFIG", err)
	}
}

// countingCatalog records how many lookups reach it.
type countingCatalog struct {
	inner *Static
	calls int
}

func (c *countingCatalog) Lookup(ctx context.Context, name string) (string, bool, error) {
	c.calls++
	return c.inner.Lookup(ctx, name)
}

func TestCachedAvoidsRepeatLookups(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	counting := &countingCatalog{inner: NewStatic([]Entry{
		{Name: "Calculator", ID: "calc!App"},
	})}
	c := NewCached(counting, fc, 0)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		id, ok, err := c.Lookup(ctx, "Calculator")
		if err != nil || !ok || id != "calc!App" {
			t.Fatalf("Lookup() = (%q, %v, %v)", id, ok, err)
		}
	}
	if counting.calls != 1 {
		t.Errorf("inner catalog reached %d times, want 1", counting.calls)
	}
}

func TestCachedCachesMisses(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	counting := &countingCatalog{inner: NewStatic(nil)}
	c := NewCached(counting, fc, 0)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, ok, err := c.Lookup(ctx, "Nothing"); ok || err != nil {
			t.Fatalf("Lookup() = ok=%v err=%v, want clean miss", ok, err)
		}
	}
	if counting.calls != 1 {
		t.Errorf("inner catalog reached %d times for a miss, want 1", counting.calls)
	}
}

func TestMultiFirstMatchWins(t *testing.T) {
	m := Multi{
		NewStatic([]Entry{{Name: "Mail", ID: "static!Mail"}}),
		NewStatic([]Entry{
			{Name: "Mail", ID: "os!Mail"},
			{Name: "Photos", ID: "os!Photos"},
		}),
	}

	ctx := context.Background()

	id, ok, _ := m.Lookup(ctx, "mail")
	if !ok || id != "static!Mail" {
		t.Errorf("Lookup(mail) = (%q, %v), want the first catalog's entry", id, ok)
	}

	id, ok, _ = m.Lookup(ctx, "photos")
	if !ok || id != "os!Photos" {
		t.Errorf("Lookup(photos) = (%q, %v), want fall-through to second catalog", id, ok)
	}

	if _, ok, _ := m.Lookup(ctx, "missing"); ok {
		t.Error("Lookup(missing) should miss in every catalog")
	}
}
