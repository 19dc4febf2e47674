package term

import (
	"context"
	"io"
	"log"
	"time"

	"zona/internal/app"
	"zona/internal/core"
	"zona/internal/session"
	"zona/internal/store"
	"zona/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

// Game runs a session on a terminal screen.
type Game struct {
	screen   tcell.Screen
	sess     *session.Session
	viewport *core.Viewport
	renderer *Renderer
	timer    *core.FixedStep
	recorder *store.Recorder
	log      *log.Logger

	paused   bool
	tickOnce bool
	notice   string
	best     string
}

// NewGame wires sess to an initialised screen. recorder may be nil.
func NewGame(screen tcell.Screen, sess *session.Session, tps int, recorder *store.Recorder, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if recorder == nil {
		recorder = store.NewRecorder(nil, logger)
	}
	w, h := screen.Size()
	vp := core.NewViewport(w, h)
	g := &Game{
		screen:   screen,
		sess:     sess,
		viewport: vp,
		renderer: NewRenderer(vp, sess.Grid().Width(), sess.Grid().Height()),
		timer:    core.NewFixedStep(tps),
		recorder: recorder,
		log:      logger,
	}
	g.best = recorder.BestNote(sess.Name())
	return g
}

// Close detaches the renderer and closes the viewport. The screen is left
// to its owner.
func (g *Game) Close() {
	g.renderer.Close()
	g.viewport.Close()
}

// Run processes input and advances the session until the player quits or
// ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if g.handleEvent(ev) {
				return nil
			}
			g.draw()
		case now := <-frame.C:
			g.advance(now)
			g.draw()
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.viewport.Resize(ev.Size())
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())
	}
	return false
}

func (g *Game) handleKey(key tcell.Key, ch rune) (quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		g.sess.Steer(core.Up)
	case tcell.KeyDown:
		g.sess.Steer(core.Down)
	case tcell.KeyLeft:
		g.sess.Steer(core.Left)
	case tcell.KeyRight:
		g.sess.Steer(core.Right)
	case tcell.KeyRune:
		switch ch {
		case 'q':
			return true
		case 'k':
			g.sess.Steer(core.Up)
		case 'j':
			g.sess.Steer(core.Down)
		case 'h':
			g.sess.Steer(core.Left)
		case 'l':
			g.sess.Steer(core.Right)
		case ' ':
			g.paused = !g.paused
		case 'n':
			g.tickOnce = true
		case 'r':
			g.reset(g.sess.Seed())
		case 's':
			g.reset(time.Now().UnixNano())
		case 'c':
			if err := app.CopyGrid(g.sess.Grid()); err != nil {
				g.log.Printf("%v", err)
				g.notice = "clipboard unavailable"
			} else {
				g.notice = "grid copied"
			}
		}
	}
	return false
}

func (g *Game) reset(seed int64) {
	g.sess.Reset(seed)
	g.timer.Reset()
	g.tickOnce = false
	g.notice = ""
}

// advance runs the ticks due at now.
func (g *Game) advance(now time.Time) {
	steps := g.timer.Advance(now)
	if g.paused {
		steps = 0
		if g.tickOnce {
			steps = 1
		}
	}
	g.tickOnce = false
	for i := 0; i < steps; i++ {
		g.sess.Step()
		res, err := g.recorder.Observe(g.sess)
		if err != nil {
			g.log.Printf("%v", err)
		} else if res != nil {
			g.best = g.recorder.BestNote(g.sess.Name())
		}
	}
}

func (g *Game) status() string {
	r := g.sess.Readout()
	line := ui.StatusLine(r)
	if g.paused {
		line += " | paused"
	}
	for _, extra := range []string{ui.Banner(r), g.notice, g.best} {
		if extra != "" {
			line += " | " + extra
		}
	}
	return line
}

func (g *Game) draw() {
	g.screen.Clear()
	g.renderer.Draw(g.screen, g.sess, g.status())
	g.screen.Show()
}
