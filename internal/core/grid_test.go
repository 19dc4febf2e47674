package core

import (
	"slices"
	"testing"
)

func TestNewGridBorders(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {5, 5}, {8, 4}, {4, 9}} {
		w, h := dims[0], dims[1]
		g := NewGrid(w, h, 10)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				perimeter := x == 0 || y == 0 || x == w-1 || y == h-1
				want := Empty
				if perimeter {
					want = Border
				}
				if got := g.At(x, y); got != want {
					t.Fatalf("%dx%d cell (%d,%d) = %v, want %v", w, h, x, y, got, want)
				}
			}
		}
		if pct := g.Stats().ClaimedPercentage; pct != 0 {
			t.Fatalf("%dx%d fresh claimed percentage = %f", w, h, pct)
		}
	}
}

func TestNewGridNormalizesInput(t *testing.T) {
	g := NewGrid(0, -3, 0)
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("dimensions = %dx%d, want 1x1", g.Width(), g.Height())
	}
	if g.CellSize() != DefaultCellSize {
		t.Fatalf("cell size = %d, want %d", g.CellSize(), DefaultCellSize)
	}
	if g.At(0, 0) != Border {
		t.Fatal("single cell grid must be border")
	}
	if s := g.Stats(); s.ClaimedPercentage != 0 {
		t.Fatalf("zero denominator must give 0%%, got %f", s.ClaimedPercentage)
	}
}

func TestOutOfBoundsIsBorder(t *testing.T) {
	g := NewGrid(5, 5, 20)
	for _, p := range []Point{{-1, 2}, {5, 2}, {2, -1}, {2, 5}, {100, 100}} {
		if g.CellType(p) != Border {
			t.Fatalf("out of bounds %v read %v", p, g.CellType(p))
		}
		before := slices.Clone(g.Cells())
		g.SetCellType(p, Claimed)
		if !slices.Equal(before, g.Cells()) {
			t.Fatalf("out of bounds write at %v modified the grid", p)
		}
	}
}

func TestSetCellTypeUnchecked(t *testing.T) {
	g := NewGrid(5, 5, 20)
	g.SetCellType(Pt(0, 0), Trace)
	if g.At(0, 0) != Trace {
		t.Fatal("SetCellType must overwrite without validation")
	}
	g.Set(2, 2, Claimed)
	if g.CellType(Pt(2, 2)) != Claimed {
		t.Fatal("Set and CellType disagree")
	}
}

func TestBeginTraceOnlyFromEmpty(t *testing.T) {
	g := NewGrid(5, 5, 20)
	if !g.BeginTrace(Pt(1, 1)) {
		t.Fatal("BeginTrace on empty cell failed")
	}
	if g.At(1, 1) != Trace {
		t.Fatal("BeginTrace did not mark trace")
	}
	if g.BeginTrace(Pt(0, 0)) {
		t.Fatal("BeginTrace must refuse border")
	}
	if g.BeginTrace(Pt(1, 1)) {
		t.Fatal("BeginTrace must refuse existing trace")
	}
	if g.BeginTrace(Pt(-1, 1)) {
		t.Fatal("BeginTrace must refuse off-grid points")
	}
}

func TestTraceResolution(t *testing.T) {
	g := NewGrid(6, 6, 20)
	trace := []Point{{1, 1}, {2, 1}, {3, 1}}
	for _, p := range trace {
		g.BeginTrace(p)
	}
	g.Set(4, 4, Claimed)

	clone := g.Clone()
	clone.CloseLoop()
	for _, p := range trace {
		if clone.CellType(p) != Border {
			t.Fatalf("CloseLoop left %v as %v", p, clone.CellType(p))
		}
	}
	if clone.At(4, 4) != Claimed {
		t.Fatal("CloseLoop touched a claimed cell")
	}

	g.AbortTrace()
	for _, p := range trace {
		if g.CellType(p) != Empty {
			t.Fatalf("AbortTrace left %v as %v", p, g.CellType(p))
		}
	}
	if g.Stats().TraceCells != 0 || clone.Stats().TraceCells != 0 {
		t.Fatal("trace cells survived resolution")
	}
}

func TestResetMatchesFreshGrid(t *testing.T) {
	g := NewGrid(7, 5, 20)
	cells := g.Cells()
	g.Set(1, 1, Trace)
	g.Set(2, 2, Claimed)
	g.Set(0, 0, Empty)
	g.Set(6, 4, Trace)
	g.CaptureEmptyAreas(nil)

	g.Reset()
	fresh := NewGrid(7, 5, 20)
	if !slices.Equal(g.Cells(), fresh.Cells()) {
		t.Fatalf("reset grid differs from fresh:\n%s\nvs\n%s", g, fresh)
	}
	if &g.Cells()[0] != &cells[0] {
		t.Fatal("Reset must reuse storage")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(5, 5, 16)
	c := g.Clone()
	c.Set(2, 2, Claimed)
	if g.At(2, 2) != Empty {
		t.Fatal("mutating clone changed original")
	}
	g.Set(1, 1, Trace)
	if c.At(1, 1) != Empty {
		t.Fatal("mutating original changed clone")
	}
	if c.CellSize() != 16 || c.Width() != 5 || c.Height() != 5 {
		t.Fatal("clone lost dimensions")
	}
}

func TestRowsAliasStorage(t *testing.T) {
	g := NewGrid(4, 3, 20)
	rows := g.Rows()
	if len(rows) != 3 || len(rows[0]) != 4 {
		t.Fatalf("rows shape %dx%d", len(rows), len(rows[0]))
	}
	g.Set(1, 1, Claimed)
	if rows[1][1] != Claimed {
		t.Fatal("rows must alias the grid storage")
	}
	if rows[2][3] != Border {
		t.Fatal("row view misaligned")
	}
}

func TestPixelConversion(t *testing.T) {
	g := NewGrid(10, 10, 20)
	cases := []struct {
		x, y float64
		want Point
	}{
		{0, 0, Pt(0, 0)},
		{19.9, 20, Pt(0, 1)},
		{45, 99, Pt(2, 4)},
		{-0.5, 10, Pt(-1, 0)},
	}
	for _, tc := range cases {
		if got := g.PixelToCell(tc.x, tc.y); got != tc.want {
			t.Errorf("PixelToCell(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	if x, y := g.CellOrigin(Pt(3, 2)); x != 60 || y != 40 {
		t.Fatalf("CellOrigin = %v,%v", x, y)
	}
}

func TestStringDump(t *testing.T) {
	g := NewGrid(5, 4, 20)
	g.Set(1, 1, Trace)
	g.Set(3, 2, Claimed)
	want := "" +
		"█████\n" +
		"█○··█\n" +
		"█··▓█\n" +
		"█████\n"
	if got := g.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestCellTypeHelpers(t *testing.T) {
	names := map[CellType]string{Empty: "EMPTY", Border: "BORDER", Trace: "TRACE", Claimed: "CLAIMED", CellType(9): "UNKNOWN"}
	for ct, name := range names {
		if ct.String() != name {
			t.Errorf("%d.String() = %q, want %q", ct, ct.String(), name)
		}
	}
	if CellType(9).Valid() || !Claimed.Valid() {
		t.Fatal("Valid misreports")
	}
	if Border.Color().B != 0xff || Trace.Color().R != 0xff {
		t.Fatal("unexpected palette")
	}
	if !Border.Safe() || !Claimed.Safe() || Empty.Safe() || Trace.Safe() {
		t.Fatal("Safe misreports")
	}
}
