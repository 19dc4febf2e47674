package render

import "image/color"

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last color. When the palette is
// empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Scale returns the on-screen size of one cell: cellSize multiplied by the
// user zoom, never below one pixel.
func Scale(cellSize, zoom int) int {
	if cellSize <= 0 {
		cellSize = 1
	}
	if zoom <= 0 {
		zoom = 1
	}
	return cellSize * zoom
}

// Placement locates a board inside a viewport.
type Placement struct {
	Cell int // pixels (or terminal columns) per cell
	X, Y int // top-left corner of the board
}

// Fit picks the largest cell size up to maxCell at which a gridW x gridH
// board fits in viewW x viewH, and centers the board. The cell size never
// drops below one, so a too-small viewport clips the board instead.
func Fit(viewW, viewH, gridW, gridH, maxCell int) Placement {
	if gridW <= 0 || gridH <= 0 {
		return Placement{Cell: 1}
	}
	cell := min(viewW/gridW, viewH/gridH)
	if maxCell > 0 {
		cell = min(cell, maxCell)
	}
	cell = max(cell, 1)
	return Placement{
		Cell: cell,
		X:    max((viewW-gridW*cell)/2, 0),
		Y:    max((viewH-gridH*cell)/2, 0),
	}
}
