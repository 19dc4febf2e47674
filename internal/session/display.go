package session

import (
	"image/color"

	"zona/internal/core"
)

// Display values beyond the four cell types.
const (
	DisplayPlayer = uint8(core.Claimed) + 1 + iota
	DisplayEnemy
)

var sessionPalette = buildPalette()

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, DisplayEnemy+1)
	for _, t := range []core.CellType{core.Empty, core.Border, core.Trace, core.Claimed} {
		palette[t] = t.Color()
	}
	palette[DisplayPlayer] = color.RGBA{R: 0x16, G: 0xc7, B: 0x9a, A: 0xff}
	palette[DisplayEnemy] = color.RGBA{R: 0xff, G: 0x47, B: 0x57, A: 0xff}
	return palette
}

// Palette exposes the colors indexed by the values returned from Cells.
func (s *Session) Palette() []color.RGBA {
	return sessionPalette
}

// Cells returns a row-major display buffer: the cell type of every cell with
// enemies and the player stamped on top. The buffer is reused between calls.
func (s *Session) Cells() []uint8 {
	for i, c := range s.grid.Cells() {
		s.display[i] = uint8(c)
	}
	w, h := s.grid.Width(), s.grid.Height()
	for _, c := range s.EnemyCells() {
		if core.InBounds(c, w, h) {
			s.display[s.grid.Index(c.X, c.Y)] = DisplayEnemy
		}
	}
	if p := s.player.Pos; core.InBounds(p, w, h) {
		s.display[s.grid.Index(p.X, p.Y)] = DisplayPlayer
	}
	return s.display
}
