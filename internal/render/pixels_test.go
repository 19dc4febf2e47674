package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 0x00, G: 0xd9, B: 0xff, A: 255},
		{R: 0xff, G: 0x47, B: 0x57, A: 128},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, 4*len(cells))
	FillPaletteRGBA(buf, cells, palette)

	want := []byte{
		0, 0, 0, 255,
		0x00, 0xd9, 0xff, 255,
		0xff, 0x47, 0x57, 128,
		0xff, 0x47, 0x57, 128,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 99}
	FillPaletteRGBA(buf, []uint8{3, 1}, nil)
	if !slices.Equal(buf, []byte{0, 0, 0, 0, 0, 0, 0, 0, 99}) {
		t.Fatalf("buffer not cleared: %v", buf)
	}
}

func TestScale(t *testing.T) {
	cases := []struct{ cell, zoom, want int }{
		{16, 1, 16},
		{16, 2, 32},
		{0, 3, 3},
		{12, 0, 12},
	}
	for _, c := range cases {
		if got := Scale(c.cell, c.zoom); got != c.want {
			t.Errorf("Scale(%d, %d) = %d, want %d", c.cell, c.zoom, got, c.want)
		}
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		name                 string
		vw, vh, gw, gh, maxC int
		want                 Placement
	}{
		{"exact", 640, 400, 64, 40, 10, Placement{Cell: 10}},
		{"capped and centered", 1000, 500, 64, 40, 10, Placement{Cell: 10, X: 180, Y: 50}},
		{"shrinks to fit", 320, 400, 64, 40, 16, Placement{Cell: 5, X: 0, Y: 100}},
		{"uncapped", 300, 100, 10, 10, 0, Placement{Cell: 10, X: 100, Y: 0}},
		{"terminal cells", 80, 24, 64, 20, 1, Placement{Cell: 1, X: 8, Y: 2}},
		{"too small clips", 30, 10, 64, 40, 1, Placement{Cell: 1}},
	}
	for _, c := range cases {
		got := Fit(c.vw, c.vh, c.gw, c.gh, c.maxC)
		if got != c.want {
			t.Errorf("%s: Fit = %+v, want %+v", c.name, got, c.want)
		}
	}
}
