package ui

import (
	"image/color"

	"zona/internal/core"
)

const shadeCount = 6

// Overlay layer values. Zero leaves the cell untouched, 1..shadeCount tint
// one discovered area each, and LayerEnemy marks areas holding an enemy.
const (
	LayerNone  uint8 = 0
	LayerEnemy uint8 = shadeCount + 1
)

var overlayPalette = []color.RGBA{
	{},
	{R: 0x3a, G: 0x86, B: 0xff, A: 90},
	{R: 0x16, G: 0xc7, B: 0x9a, A: 90},
	{R: 0xff, G: 0xbe, B: 0x0b, A: 90},
	{R: 0xfb, G: 0x56, B: 0x07, A: 90},
	{R: 0x83, G: 0x38, B: 0xec, A: 90},
	{R: 0xf1, G: 0xfa, B: 0xee, A: 90},
	{R: 0xff, G: 0x47, B: 0x57, A: 150},
}

// AreaPalette returns the colors indexed by AreaLayer values.
func AreaPalette() []color.RGBA { return overlayPalette }

// AreaLayer classifies the Empty areas of g and writes one layer value per
// cell into dst, growing it as needed. With tint every area gets a rotating
// shade; with markEnemy areas that hold an enemy get LayerEnemy instead.
func AreaLayer(dst []uint8, g *core.Grid, enemies []core.Point, tint, markEnemy bool) []uint8 {
	n := g.Width() * g.Height()
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	clear(dst)
	if !tint && !markEnemy {
		return dst
	}
	for i, area := range g.ClassifyAreas(enemies) {
		var v uint8
		switch {
		case markEnemy && area.HasEnemy:
			v = LayerEnemy
		case tint:
			v = uint8(1 + i%shadeCount)
		default:
			continue
		}
		for _, c := range area.Cells {
			dst[g.Index(c.X, c.Y)] = v
		}
	}
	return dst
}
