//go:build ebiten

package app

import (
	"io"
	"log"
	"time"

	"zona/internal/core"
	"zona/internal/render"
	"zona/internal/session"
	"zona/internal/store"
	"zona/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the readout panel right of the board.
const HUDWidth = 220

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess     *session.Session
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	viewport *core.Viewport
	recorder *store.Recorder
	log      *log.Logger

	maxCell  int
	place    render.Placement
	unsub    func()
	paused   bool
	tickOnce bool
	notice   string
}

// New constructs a Game for sess. Cells are drawn at most zoom times the
// layout cell size; recorder may be nil.
func New(sess *session.Session, zoom int, recorder *store.Recorder, logger *log.Logger) *Game {
	g := sess.Grid()
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if recorder == nil {
		recorder = store.NewRecorder(nil, logger)
	}
	game := &Game{
		sess:     sess,
		painter:  render.NewGridPainter(g.Width(), g.Height()),
		hud:      ui.NewHUD(sess, HUDWidth),
		overlay:  ui.NewOverlay(g.Width(), g.Height()),
		recorder: recorder,
		log:      logger,
		maxCell:  render.Scale(g.CellSize(), zoom),
	}
	w, h := game.WindowSize()
	game.viewport = core.NewViewport(w, h)
	game.place = render.Fit(w-HUDWidth, h, g.Width(), g.Height(), game.maxCell)
	game.unsub = game.viewport.Subscribe(func(w, h int) {
		game.place = render.Fit(w-HUDWidth, h, g.Width(), g.Height(), game.maxCell)
	})
	game.refreshNotes()
	return game
}

// WindowSize returns the initial window size: the board at full cell size
// plus the HUD panel.
func (g *Game) WindowSize() (int, int) {
	grid := g.sess.Grid()
	return grid.Width()*g.maxCell + HUDWidth, grid.Height() * g.maxCell
}

// Close releases the viewport subscription.
func (g *Game) Close() {
	g.unsub()
	g.viewport.Close()
}

// Reset restarts the round with seed; zero reuses the configured seed.
func (g *Game) Reset(seed int64) {
	g.sess.Reset(seed)
	g.tickOnce = false
	g.notice = ""
	g.refreshNotes()
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sess.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyGrid()
	}
	g.steer()
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.sess.Step()
		g.tickOnce = false
		g.record()
	}
	g.hud.Update()
	return nil
}

func (g *Game) steer() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.sess.Steer(core.Up)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.sess.Steer(core.Down)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.sess.Steer(core.Left)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.sess.Steer(core.Right)
	}
}

func (g *Game) record() {
	res, err := g.recorder.Observe(g.sess)
	if err != nil {
		g.log.Printf("%v", err)
		return
	}
	if res != nil {
		g.refreshNotes()
	}
}

func (g *Game) copyGrid() {
	if err := CopyGrid(g.sess.Grid()); err != nil {
		g.log.Printf("%v", err)
		g.notice = "Clipboard unavailable"
	} else {
		g.notice = "Grid copied"
	}
	g.refreshNotes()
}

func (g *Game) refreshNotes() {
	notes := []string{"Arrows steer  Space pause", "N step  R reset  S reseed", "C copy  1/2 overlays  Q quit"}
	if best := g.recorder.BestNote(g.sess.Name()); best != "" {
		notes = append(notes, "", best)
	}
	if g.notice != "" {
		notes = append(notes, "", g.notice)
	}
	g.hud.SetNotes(notes...)
}

// Draw renders the board, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Cells(), g.sess.Palette(), g.place)
	g.overlay.Draw(screen, g.sess, g.place)
	w, h := g.viewport.Size()
	g.hud.Draw(screen, w-HUDWidth, h)
}

// Layout follows the window size so the board re-centers on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
