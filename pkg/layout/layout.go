// Package layout builds a Start-menu layout tree from a directory of
// launcher shortcuts.
//
// The input is a root directory whose immediate sub-directories become named
// groups. Inside a group, shortcut files become tiles and sub-directories
// become folders; anything nested deeper than a folder is flattened into that
// folder's tile list, because the layout dialect only represents one level of
// folder nesting. Every tile and folder occupies one fixed 2x2 cell, placed
// left to right in steps of two columns, wrapping to a new row when the
// group's cell width is reached.
//
// The tree is built once per run and never mutated afterwards; serialization
// lives in the startxml package.
package layout

// DefaultWidth is the default group cell width. Widths are always even:
// every placement occupies a 2x2 footprint.
const DefaultWidth = 6

// ShortcutExt is the file extension identifying launcher shortcuts,
// matched case-insensitively.
const ShortcutExt = ".lnk"

// PackagedAppMarker distinguishes packaged-application identifiers.
// AppUserModelIDs have the form PackageFamilyName!ApplicationId; classic
// desktop application IDs never contain the separator.
const PackagedAppMarker = "!"

// TileKind classifies how a tile is rendered.
type TileKind int

const (
	// KindDesktopApp is a classic desktop application tile, identified by
	// a DesktopApplicationID.
	KindDesktopApp TileKind = iota

	// KindPackagedApp is a packaged (store) application tile, identified by
	// an AppUserModelID.
	KindPackagedApp
)

// Tile is one pinned launcher entry.
type Tile struct {
	Kind   TileKind
	Column int
	Row    int
	ID     string
}

// Folder is a sub-container of tiles occupying one cell of its parent group.
// Its tiles sit on their own grid, independent of the group's.
type Folder struct {
	Column int
	Row    int
	Tiles  []Tile
}

// Group is one named section of the layout. Folders and tiles share a single
// placement sequence in the order they were encountered.
type Group struct {
	Name    string
	Folders []Folder
	Tiles   []Tile
}

// Layout is the complete start-menu layout for one run.
//
// Header and Footer carry the document template text surrounding the groups;
// when empty, the serializer falls back to its defaults. OverrideOptions is
// inserted verbatim into the header and never validated or escaped.
type Layout struct {
	Width           int
	OverrideOptions string
	Header          string
	Footer          string
	Groups          []Group
}
