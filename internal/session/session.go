package session

import (
	"fmt"
	"io"
	"log"

	"zona/internal/core"
	prng "zona/pkg/core"

	"github.com/google/uuid"
)

// State is the outcome state of a session.
type State uint8

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Player is the tracing cursor. Pos is always a grid cell.
type Player struct {
	Pos        core.Point
	Dir        core.Point
	Tracing    bool
	TraceStart core.Point
	Trail      []core.Point
}

// Enemy bounces through Empty space. X and Y are pixel coordinates of its
// centre; velocity is in pixels per tick.
type Enemy struct {
	X, Y   float64
	VX, VY float64
}

// Session drives one playing session on a single Grid: it moves the player
// and the enemies, detects collisions, closes loops into captures and keeps
// score. It is owned by one game loop and is not safe for concurrent use.
type Session struct {
	id   string
	cfg  Config
	grid *core.Grid
	rng  *prng.RNG
	log  *log.Logger

	player  Player
	enemies []Enemy

	state       State
	score       int
	lives       int
	captures    int
	lastCapture int
	ticks       int
	seed        int64

	display []uint8
}

// New creates a session and resets it with the configured seed.
func New(cfg Config) *Session {
	cfg = cfg.normalized()
	s := &Session{
		id:   uuid.NewString(),
		cfg:  cfg,
		grid: core.NewGrid(cfg.Width, cfg.Height, cfg.CellSize),
	}
	s.SetLogger(cfg.Logger)
	s.display = make([]uint8, cfg.Width*cfg.Height)
	s.Reset(0)
	return s
}

// SetLogger routes lifecycle events to base, prefixed with the short session
// ID. Nil discards them.
func (s *Session) SetLogger(base *log.Logger) {
	s.cfg.Logger = base
	if base == nil {
		base = log.New(io.Discard, "", 0)
	}
	s.log = log.New(base.Writer(), fmt.Sprintf("%s[%s] ", base.Prefix(), s.id[:8]), base.Flags())
}

// ID returns the session UUID.
func (s *Session) ID() string { return s.id }

// Name returns the layout name.
func (s *Session) Name() string { return s.cfg.Layout }

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// Grid exposes the live grid. Other goroutines must use Grid().Clone().
func (s *Session) Grid() *core.Grid { return s.grid }

// Player returns a copy of the player state.
func (s *Session) Player() Player { return s.player }

// Enemies returns the live enemy slice.
func (s *Session) Enemies() []Enemy { return s.enemies }

// State returns the current outcome state.
func (s *Session) State() State { return s.state }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Captures returns how many loops have been closed.
func (s *Session) Captures() int { return s.captures }

// Ticks returns the number of Step calls since the last Reset.
func (s *Session) Ticks() int { return s.ticks }

// Seed returns the seed used by the last Reset.
func (s *Session) Seed() int64 { return s.seed }

// Reset restores the grid in place, respawns the player and enemies and
// clears the score. A zero seed reuses the configured seed.
func (s *Session) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	s.rng = prng.NewRNG(seed)
	s.grid.Reset()
	s.player = Player{Pos: core.Pt(s.cfg.Width/2, 0)}
	s.player.TraceStart = s.player.Pos
	s.state = StatePlaying
	s.score = 0
	s.lives = s.cfg.Lives
	s.captures = 0
	s.lastCapture = 0
	s.ticks = 0
	s.spawnEnemies()
	s.log.Printf("reset: %dx%d cells, %d enemies, seed %d", s.cfg.Width, s.cfg.Height, len(s.enemies), seed)
}

func (s *Session) spawnEnemies() {
	s.enemies = s.enemies[:0]
	empty := make([]core.Point, 0, len(s.grid.Cells()))
	for y := 0; y < s.grid.Height(); y++ {
		for x := 0; x < s.grid.Width(); x++ {
			if s.grid.At(x, y) == core.Empty {
				empty = append(empty, core.Pt(x, y))
			}
		}
	}
	if len(empty) == 0 {
		return
	}
	half := float64(s.cfg.CellSize) / 2
	for i := 0; i < s.cfg.Enemies; i++ {
		c := empty[s.rng.IntN(len(empty))]
		ox, oy := s.grid.CellOrigin(c)
		s.enemies = append(s.enemies, Enemy{
			X:  ox + half,
			Y:  oy + half,
			VX: s.rng.Sign() * s.cfg.EnemySpeed,
			VY: s.rng.Sign() * s.cfg.EnemySpeed,
		})
	}
}

// Steer sets the player's heading. The zero Point stops the player. While
// tracing, reversing onto the trail is ignored.
func (s *Session) Steer(dir core.Point) {
	if s.player.Tracing && dir == (core.Point{X: -s.player.Dir.X, Y: -s.player.Dir.Y}) && dir != (core.Point{}) {
		return
	}
	s.player.Dir = dir
}

// Step advances the session by one tick.
func (s *Session) Step() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++
	for i := range s.enemies {
		if s.moveEnemy(&s.enemies[i]) {
			s.loseLife("enemy hit the trace")
			return
		}
	}
	if s.ticks%s.cfg.PlayerStep == 0 {
		s.movePlayer()
	}
}

// EnemyCells returns the grid cell of every enemy.
func (s *Session) EnemyCells() []core.Point {
	cells := make([]core.Point, len(s.enemies))
	for i, e := range s.enemies {
		cells[i] = s.grid.PixelToCell(e.X, e.Y)
	}
	return cells
}

func (s *Session) enemyAt(p core.Point) bool {
	for _, e := range s.enemies {
		if s.grid.PixelToCell(e.X, e.Y) == p {
			return true
		}
	}
	return false
}

func (s *Session) movePlayer() {
	p := &s.player
	if p.Dir == (core.Point{}) {
		return
	}
	next := p.Pos.Add(p.Dir)
	if !core.InBounds(next, s.grid.Width(), s.grid.Height()) {
		p.Dir = core.Point{}
		return
	}
	for _, c := range core.Line(p.Pos, next)[1:] {
		if !s.enter(c) {
			return
		}
	}
}

// enter moves the player onto c and reports whether movement may continue.
func (s *Session) enter(c core.Point) bool {
	p := &s.player
	switch s.grid.CellType(c) {
	case core.Trace:
		s.loseLife("player crossed its own trace")
		return false
	case core.Empty:
		if s.enemyAt(c) {
			s.loseLife("player ran into an enemy")
			return false
		}
		if !p.Tracing {
			p.Tracing = true
			p.TraceStart = p.Pos
			p.Trail = p.Trail[:0]
		}
		s.grid.BeginTrace(c)
		p.Trail = append(p.Trail, c)
		p.Pos = c
		return true
	default:
		p.Pos = c
		if p.Tracing {
			s.closeLoop()
			p.Dir = core.Point{}
			return false
		}
		return true
	}
}

func (s *Session) closeLoop() {
	s.grid.CloseLoop()
	captured := s.grid.CaptureEmptyAreas(s.EnemyCells())
	s.player.Tracing = false
	s.player.Trail = s.player.Trail[:0]
	s.captures++
	s.lastCapture = captured
	s.score += captured * s.cfg.PointsPerCell

	s.log.Printf("loop closed: %d cells captured, %.1f%% claimed", captured, s.grid.Stats().ClaimedPercentage)
	if s.grid.IsFullyCaptured(s.cfg.WinThreshold) {
		s.state = StateWon
		s.log.Printf("won with score %d after %d ticks", s.score, s.ticks)
	}
}

func (s *Session) loseLife(reason string) {
	s.grid.AbortTrace()
	p := &s.player
	if p.Tracing {
		p.Pos = p.TraceStart
	}
	p.Tracing = false
	p.Trail = p.Trail[:0]
	p.Dir = core.Point{}
	s.lives--
	s.log.Printf("life lost: %s (%d left)", reason, s.lives)
	if s.lives <= 0 {
		s.lives = 0
		s.state = StateLost
		s.log.Printf("lost with score %d after %d ticks", s.score, s.ticks)
	}
}

// moveEnemy advances e, reflecting off Border and Claimed cells, and reports
// whether its path touched the trace or the tracing player.
func (s *Session) moveEnemy(e *Enemy) bool {
	g := s.grid
	from := g.PixelToCell(e.X, e.Y)

	if nx := e.X + e.VX; blocks(g.CellType(g.PixelToCell(nx, e.Y))) {
		e.VX = -e.VX
	} else {
		e.X = nx
	}
	// The axes move one after the other, so the enemy passes through the
	// cell reached by the x step alone.
	mid := g.PixelToCell(e.X, e.Y)
	if ny := e.Y + e.VY; blocks(g.CellType(g.PixelToCell(e.X, ny))) {
		e.VY = -e.VY
	} else {
		e.Y = ny
	}

	to := g.PixelToCell(e.X, e.Y)
	return s.sweepHits(from, mid) || s.sweepHits(mid, to)
}

// sweepHits reports whether the cells from a to b touch the trace or the
// tracing player.
func (s *Session) sweepHits(a, b core.Point) bool {
	for _, c := range core.Line(a, b) {
		if s.grid.CellType(c) == core.Trace {
			return true
		}
		if s.player.Tracing && c == s.player.Pos {
			return true
		}
	}
	return false
}

func blocks(t core.CellType) bool { return t == core.Border || t == core.Claimed }
