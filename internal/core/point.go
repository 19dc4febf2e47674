package core

import (
	"math"
	"strconv"
	"strings"
)

// Point is an integer grid coordinate. X grows to the right, Y grows down.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Equal reports whether both coordinates match.
func (p Point) Equal(o Point) bool { return p.X == o.X && p.Y == o.Y }

// Add offsets p by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Key returns the canonical "x,y" membership key. Every set or map keyed by
// position in this module goes through Key.
func (p Point) Key() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// String formats the point for logs.
func (p Point) String() string { return "(" + p.Key() + ")" }

// FromKey decodes a key produced by Key. Malformed input yields the zero
// Point and false.
func FromKey(key string) (Point, bool) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Point{}, false
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b Point) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// InBounds reports whether p lies in [0,w) x [0,h).
func InBounds(p Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Direction offsets, clockwise from up.
var (
	Up        = Point{X: 0, Y: -1}
	UpRight   = Point{X: 1, Y: -1}
	Right     = Point{X: 1, Y: 0}
	DownRight = Point{X: 1, Y: 1}
	Down      = Point{X: 0, Y: 1}
	DownLeft  = Point{X: -1, Y: 1}
	Left      = Point{X: -1, Y: 0}
	UpLeft    = Point{X: -1, Y: -1}
)

// FourNeighbors returns the orthogonal neighbours of p in the fixed order
// Up, Right, Down, Left. Flood fill relies on this order for reproducible
// discovery.
func FourNeighbors(p Point) [4]Point {
	return [4]Point{p.Add(Up), p.Add(Right), p.Add(Down), p.Add(Left)}
}

// EightNeighbors returns all surrounding cells clockwise from Up.
func EightNeighbors(p Point) [8]Point {
	return [8]Point{
		p.Add(Up), p.Add(UpRight), p.Add(Right), p.Add(DownRight),
		p.Add(Down), p.Add(DownLeft), p.Add(Left), p.Add(UpLeft),
	}
}

// Line rasterizes the segment from -> to with Bresenham's algorithm. Both
// endpoints are included and Line(b, a) is Line(a, b) reversed.
func Line(from, to Point) []Point {
	if from == to {
		return []Point{from}
	}
	// Always walk from the lower endpoint and flip the result afterwards.
	reverse := to.X < from.X || (to.X == from.X && to.Y < from.Y)
	a, b := from, to
	if reverse {
		a, b = to, from
	}

	dx := absInt(b.X - a.X)
	dy := absInt(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	n := dx
	if dy > n {
		n = dy
	}
	pts := make([]Point, 0, n+1)
	x, y := a.X, a.Y
	err := dx - dy
	for {
		pts = append(pts, Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
