package session

import (
	"zona/internal/core"
	prng "zona/pkg/core"
)

// Autopilot steers a session with rectangular excursions: out of the safe
// zone for a few cells, sideways, then back until a safe cell closes the
// loop. It is deterministic for a given seed.
type Autopilot struct {
	rng *prng.RNG

	active  bool
	leg     int
	steps   int
	depth   int
	width   int
	lastPos core.Point
	heading core.Point
}

// NewAutopilot returns a driver seeded with seed.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: prng.NewRNG(seed)}
}

var headings = [4]core.Point{core.Up, core.Right, core.Down, core.Left}

func turnRight(d core.Point) core.Point { return core.Point{X: -d.Y, Y: d.X} }

// Drive inspects s and steers it for the coming tick.
func (a *Autopilot) Drive(s *Session) {
	if s.State() != StatePlaying {
		return
	}
	p := s.Player()
	g := s.Grid()

	if !p.Tracing {
		if a.active {
			// Loop closed or life lost.
			a.active = false
		}
		a.lastPos = p.Pos
		if d, ok := a.pickExit(g, p.Pos); ok {
			a.active = true
			a.leg, a.steps = 0, 0
			a.depth = a.rng.Range(2, 6)
			a.width = a.rng.Range(2, 8)
			a.heading = d
			s.Steer(d)
			return
		}
		s.Steer(a.patrol(g, p))
		return
	}

	if p.Pos != a.lastPos {
		a.steps++
		a.lastPos = p.Pos
	}
	switch {
	case a.leg == 0 && a.steps >= a.depth:
		a.leg, a.steps = 1, 0
		a.heading = turnRight(a.heading)
	case a.leg == 1 && a.steps >= a.width:
		a.leg, a.steps = 2, 0
		a.heading = turnRight(a.heading)
	}
	s.Steer(a.heading)
}

// pickExit finds a heading from a safe cell into open space.
func (a *Autopilot) pickExit(g *core.Grid, pos core.Point) (core.Point, bool) {
	offset := a.rng.IntN(len(headings))
	for i := range headings {
		d := headings[(offset+i)%len(headings)]
		if g.CellType(pos.Add(d)) == core.Empty {
			return d, true
		}
	}
	return core.Point{}, false
}

// patrol walks along safe cells looking for open space.
func (a *Autopilot) patrol(g *core.Grid, p Player) core.Point {
	w, h := g.Width(), g.Height()
	if p.Dir != (core.Point{}) {
		next := p.Pos.Add(p.Dir)
		if core.InBounds(next, w, h) && g.CellType(next).Safe() {
			return p.Dir
		}
	}
	offset := a.rng.IntN(len(headings))
	for i := range headings {
		d := headings[(offset+i)%len(headings)]
		next := p.Pos.Add(d)
		if core.InBounds(next, w, h) && g.CellType(next).Safe() {
			return d
		}
	}
	return core.Point{}
}
