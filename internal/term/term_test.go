package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"zona/internal/core"
	"zona/internal/render"
	"zona/internal/session"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	ch    rune
	style tcell.Style
}

type fakeSurface struct {
	w, h  int
	cells map[[2]int]cell
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, cells: map[[2]int]cell{}}
}

func (f *fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = cell{primary, style}
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }

func (f *fakeSurface) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.w; x++ {
		if c, ok := f.cells[[2]int{x, y}]; ok {
			b.WriteRune(c.ch)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func tinySession() *session.Session {
	cfg := session.DefaultConfig()
	cfg.Layout = "tiny"
	cfg.Width, cfg.Height, cfg.CellSize = 12, 8, 32
	cfg.Enemies = 0
	cfg.PlayerStep = 1
	return session.New(cfg)
}

func TestRendererCentersAndFollowsViewport(t *testing.T) {
	vp := core.NewViewport(40, 12)
	r := NewRenderer(vp, 12, 8)
	defer r.Close()
	if got := r.Placement(); got != (render.Placement{Cell: 1, X: 14, Y: 1}) {
		t.Fatalf("initial placement = %+v", got)
	}
	vp.Resize(20, 10)
	if got := r.Placement(); got != (render.Placement{Cell: 1, X: 4, Y: 0}) {
		t.Fatalf("placement after resize = %+v", got)
	}
	r.Close()
	vp.Resize(80, 24)
	if got := r.Placement(); got.X != 4 {
		t.Fatal("closed renderer still follows the viewport")
	}
}

func TestRendererDraw(t *testing.T) {
	s := tinySession()
	s.Steer(core.Down)
	s.Step()

	vp := core.NewViewport(20, 10)
	r := NewRenderer(vp, 12, 8)
	defer r.Close()
	scr := newFakeSurface(20, 10)
	r.Draw(scr, s, "status here")

	if row := scr.row(0); row != "    ████████████    " {
		t.Fatalf("top row = %q", row)
	}
	if row := scr.row(1); row != "    █·····@····█    " {
		t.Fatalf("player row = %q", row)
	}
	if c := scr.cells[[2]int{4, 0}]; c.style != CellStyle(core.Border) {
		t.Fatal("border cell style mismatch")
	}
	if row := scr.row(9); row != "status here         " {
		t.Fatalf("status row = %q", row)
	}
}

func TestRendererDrawsEnemies(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 12, 8, 32
	cfg.Enemies = 2
	s := session.New(cfg)

	vp := core.NewViewport(12, 9)
	r := NewRenderer(vp, 12, 8)
	defer r.Close()
	scr := newFakeSurface(12, 9)
	r.Draw(scr, s, "")
	for _, c := range s.EnemyCells() {
		if got := scr.cells[[2]int{c.X, c.Y}].ch; got != enemyGlyph {
			t.Fatalf("enemy at %v drawn as %q", c, got)
		}
	}
}

func TestCellStyleUsesCellColors(t *testing.T) {
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xbe, 0x0b)).Background(tcell.ColorBlack)
	if CellStyle(core.Trace) != want {
		t.Fatal("trace style must use the trace color")
	}
	if CellStyle(core.Empty) == CellStyle(core.Border) {
		t.Fatal("empty and border styles must differ")
	}
}

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)
	g := NewGame(screen, tinySession(), 60, nil, nil)
	t.Cleanup(g.Close)
	return g, screen
}

func TestGameKeys(t *testing.T) {
	g, _ := newTestGame(t)

	if g.handleKey(tcell.KeyDown, 0) {
		t.Fatal("arrow must not quit")
	}
	if g.sess.Player().Dir != core.Down {
		t.Fatalf("dir = %v", g.sess.Player().Dir)
	}
	g.handleKey(tcell.KeyRune, 'l')
	if g.sess.Player().Dir != core.Right {
		t.Fatalf("dir after l = %v", g.sess.Player().Dir)
	}
	g.handleKey(tcell.KeyRune, ' ')
	if !g.paused {
		t.Fatal("space must pause")
	}

	before := g.sess.Seed()
	g.handleKey(tcell.KeyRune, 's')
	if g.sess.Seed() == before {
		t.Fatal("reseed kept the old seed")
	}
	g.handleKey(tcell.KeyRune, 'r')
	if g.sess.Ticks() != 0 {
		t.Fatal("reset must clear ticks")
	}

	for _, quit := range []struct {
		key tcell.Key
		ch  rune
	}{{tcell.KeyEscape, 0}, {tcell.KeyCtrlC, 0}, {tcell.KeyRune, 'q'}} {
		if !g.handleKey(quit.key, quit.ch) {
			t.Fatalf("key %v %q did not quit", quit.key, quit.ch)
		}
	}
}

func TestGameAdvance(t *testing.T) {
	g, _ := newTestGame(t)
	start := time.Unix(100, 0)

	g.advance(start)
	if g.sess.Ticks() != 1 {
		t.Fatalf("first frame ticks = %d", g.sess.Ticks())
	}
	g.advance(start.Add(50 * time.Millisecond))
	if g.sess.Ticks() != 4 {
		t.Fatalf("ticks after 50ms at 60 TPS = %d", g.sess.Ticks())
	}

	g.paused = true
	g.advance(start.Add(100 * time.Millisecond))
	if g.sess.Ticks() != 4 {
		t.Fatal("paused game advanced")
	}
	g.tickOnce = true
	g.advance(start.Add(110 * time.Millisecond))
	if g.sess.Ticks() != 5 || g.tickOnce {
		t.Fatalf("single step: ticks=%d tickOnce=%v", g.sess.Ticks(), g.tickOnce)
	}
}

func TestGameStatus(t *testing.T) {
	g, _ := newTestGame(t)
	if !strings.HasPrefix(g.status(), "tiny | playing | score 0") {
		t.Fatalf("status = %q", g.status())
	}
	g.paused = true
	g.notice = "grid copied"
	if s := g.status(); !strings.Contains(s, "| paused | grid copied") {
		t.Fatalf("status = %q", s)
	}
}

func TestGameResizeEvent(t *testing.T) {
	g, _ := newTestGame(t)
	if got := g.renderer.Placement(); got.X != 14 {
		t.Fatalf("placement = %+v", got)
	}
	g.handleEvent(tcell.NewEventResize(20, 10))
	if got := g.renderer.Placement(); got != (render.Placement{Cell: 1, X: 4, Y: 0}) {
		t.Fatalf("placement after resize = %+v", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Run(ctx); err != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}
