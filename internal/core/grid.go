package core

import "strings"

// DefaultCellSize is the pixel size hint used when none is supplied.
const DefaultCellSize = 20

// Grid stores the play field in row-major order.
//
// Out-of-bounds reads report Border and out-of-bounds writes are dropped, so
// nothing walking the grid can leave the field. A Grid has a single owner and
// is not safe for concurrent use; hand other goroutines a Clone.
type Grid struct {
	w, h     int
	cellSize int
	cells    []CellType
}

// NewGrid allocates a w x h grid with a Border perimeter and Empty interior.
func NewGrid(w, h, cellSize int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	g := &Grid{w: w, h: h, cellSize: cellSize, cells: make([]CellType, w*h)}
	g.stampBorders()
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// CellSize returns the rendering size hint in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Index returns the linear slice index for (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Cells exposes the backing slice. Callers treat it as read-only.
func (g *Grid) Cells() []CellType { return g.cells }

// Rows returns one slice per row, each aliasing the backing storage.
func (g *Grid) Rows() [][]CellType {
	rows := make([][]CellType, g.h)
	for y := range rows {
		rows[y] = g.cells[y*g.w : (y+1)*g.w : (y+1)*g.w]
	}
	return rows
}

// CellType returns the type at p, or Border when p is off the grid.
func (g *Grid) CellType(p Point) CellType { return g.At(p.X, p.Y) }

// At is CellType by coordinate pair.
func (g *Grid) At(x, y int) CellType {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return Border
	}
	return g.cells[y*g.w+x]
}

// SetCellType overwrites the cell at p. Off-grid writes are ignored. No
// transition checks are made; see BeginTrace and CloseLoop.
func (g *Grid) SetCellType(p Point, t CellType) { g.Set(p.X, p.Y, t) }

// Set is SetCellType by coordinate pair.
func (g *Grid) Set(x, y int, t CellType) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = t
}

// BeginTrace marks p as Trace if it is currently Empty and reports whether
// it did.
func (g *Grid) BeginTrace(p Point) bool {
	if g.CellType(p) != Empty {
		return false
	}
	g.cells[g.Index(p.X, p.Y)] = Trace
	return true
}

// CloseLoop seals the current trace into Border.
func (g *Grid) CloseLoop() { g.ConvertTraceToBorder() }

// AbortTrace discards the current trace.
func (g *Grid) AbortTrace() { g.ClearTrace() }

// ConvertTraceToBorder replaces every Trace cell with Border.
func (g *Grid) ConvertTraceToBorder() { g.replace(Trace, Border) }

// ClearTrace replaces every Trace cell with Empty.
func (g *Grid) ClearTrace() { g.replace(Trace, Empty) }

func (g *Grid) replace(from, to CellType) {
	for i, c := range g.cells {
		if c == from {
			g.cells[i] = to
		}
	}
}

// Reset restores the freshly constructed state in place.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.stampBorders()
}

func (g *Grid) stampBorders() {
	last := (g.h - 1) * g.w
	for x := 0; x < g.w; x++ {
		g.cells[x] = Border
		g.cells[last+x] = Border
	}
	for y := 0; y < g.h; y++ {
		g.cells[y*g.w] = Border
		g.cells[y*g.w+g.w-1] = Border
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cellSize: g.cellSize, cells: make([]CellType, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// PixelToCell converts a pixel position to the cell containing it.
func (g *Grid) PixelToCell(px, py float64) Point {
	s := float64(g.cellSize)
	return Point{X: floorDiv(px, s), Y: floorDiv(py, s)}
}

// CellOrigin returns the top-left pixel of the cell at p.
func (g *Grid) CellOrigin(p Point) (float64, float64) {
	return float64(p.X * g.cellSize), float64(p.Y * g.cellSize)
}

func floorDiv(v, s float64) int {
	q := int(v / s)
	if v < 0 && float64(q)*s != v {
		q--
	}
	return q
}

// String renders one glyph per cell, each row terminated by a newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w*3 + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for _, c := range g.cells[y*g.w : (y+1)*g.w] {
			b.WriteRune(c.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
