package term

import (
	"image/color"

	"zona/internal/core"
	"zona/internal/render"
	"zona/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Surface is the part of tcell.Screen the renderer draws on.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

const (
	playerGlyph = '@'
	enemyGlyph  = '*'
)

// Renderer draws a session one terminal cell per grid cell, centered in the
// viewport, with a status line underneath.
type Renderer struct {
	gridW, gridH int
	place        render.Placement
	unsub        func()
}

// NewRenderer subscribes to vp and keeps a gridW x gridH board centered in
// it, leaving the bottom row for the status line.
func NewRenderer(vp *core.Viewport, gridW, gridH int) *Renderer {
	r := &Renderer{gridW: gridW, gridH: gridH}
	r.fit(vp.Size())
	r.unsub = vp.Subscribe(r.fit)
	return r
}

func (r *Renderer) fit(w, h int) {
	r.place = render.Fit(w, h-1, r.gridW, r.gridH, 1)
}

// Placement returns where the board is drawn.
func (r *Renderer) Placement() render.Placement { return r.place }

// Close stops following the viewport.
func (r *Renderer) Close() { r.unsub() }

// Draw paints the board and status onto scr. Cells falling outside the
// surface are skipped.
func (r *Renderer) Draw(scr Surface, s *session.Session, status string) {
	sw, sh := scr.Size()
	g := s.Grid()
	put := func(x, y int, ch rune, st tcell.Style) {
		px, py := r.place.X+x, r.place.Y+y
		if px < 0 || py < 0 || px >= sw || py >= sh-1 {
			return
		}
		scr.SetContent(px, py, ch, nil, st)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t := g.At(x, y)
			put(x, y, t.Glyph(), CellStyle(t))
		}
	}
	enemyStyle := tcell.StyleDefault.Foreground(rgb(s.Palette()[session.DisplayEnemy])).Bold(true)
	for _, c := range s.EnemyCells() {
		if core.InBounds(c, g.Width(), g.Height()) {
			put(c.X, c.Y, enemyGlyph, enemyStyle)
		}
	}
	p := s.Player().Pos
	put(p.X, p.Y, playerGlyph, tcell.StyleDefault.Foreground(rgb(s.Palette()[session.DisplayPlayer])).Bold(true))

	if sh <= 0 {
		return
	}
	col := 0
	for _, ch := range status {
		if col >= sw {
			break
		}
		scr.SetContent(col, sh-1, ch, nil, tcell.StyleDefault)
		col++
	}
	for ; col < sw; col++ {
		scr.SetContent(col, sh-1, ' ', nil, tcell.StyleDefault)
	}
}

// CellStyle returns the terminal style for a cell type. Empty cells keep a
// dim glyph so the play field stays visible on black.
func CellStyle(t core.CellType) tcell.Style {
	if t == core.Empty {
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x44, 0x44, 0x4c)).Background(tcell.ColorBlack)
	}
	return tcell.StyleDefault.Foreground(rgb(t.Color())).Background(tcell.ColorBlack)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
