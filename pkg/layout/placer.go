package layout

// Placer tracks the next free cell in one grid scope.
//
// Each group owns one placer shared by its folders and tiles; each folder
// owns a fresh placer for its internal grid. Placement advances two columns
// at a time (the 2x2 footprint) and wraps to a new row when the next
// placement would cross the width. Rows grow without bound.
//
// The placer only counts; the caller decides whether a placement actually
// happened before advancing. A shortcut that fails resolution must not
// advance the placer, so the next entry fills its cell.
type Placer struct {
	width int
	row   int
	col   int
}

// NewPlacer creates a placer at (0,0) for a grid of the given cell width.
func NewPlacer(width int) *Placer {
	return &Placer{width: width}
}

// Pos returns the current placement position.
func (p *Placer) Pos() (row, col int) {
	return p.row, p.col
}

// Advance moves to the next cell after a successful placement.
func (p *Placer) Advance() {
	if p.col+2 < p.width {
		p.col += 2
		return
	}
	p.row += 2
	p.col = 0
}
