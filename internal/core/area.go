package core

// DefaultWinThreshold is the claimed percentage that wins a round.
const DefaultWinThreshold = 75.0

// Area is a maximal 4-connected run of Empty cells. Cells are in BFS
// discovery order.
type Area struct {
	Cells    []Point
	Size     int
	HasEnemy bool
}

// Contains reports whether p is one of the area's cells.
func (a Area) Contains(p Point) bool {
	k := p.Key()
	for _, c := range a.Cells {
		if c.Key() == k {
			return true
		}
	}
	return false
}

// Visited is the set of cells already walked during one discovery pass.
type Visited map[string]struct{}

// NewVisited returns an empty set.
func NewVisited() Visited { return make(Visited) }

// Has reports membership of p.
func (v Visited) Has(p Point) bool {
	_, ok := v[p.Key()]
	return ok
}

// Add inserts p.
func (v Visited) Add(p Point) { v[p.Key()] = struct{}{} }

// GridStats is a tally of the grid by cell type.
type GridStats struct {
	TotalCells        int
	EmptyCells        int
	BorderCells       int
	TraceCells        int
	ClaimedCells      int
	// UnknownCells counts values outside the four types, which only an
	// unchecked SetCellType can store.
	UnknownCells      int
	ClaimedPercentage float64
}

// FloodFill collects the Empty region containing start with a FIFO
// breadth-first walk over 4-neighbours. visited is shared across calls of one
// discovery pass; nil starts a private set. A non-Empty or already-visited
// start yields an empty Area.
func (g *Grid) FloodFill(start Point, visited Visited) Area {
	if visited == nil {
		visited = NewVisited()
	}
	var cells []Point
	queue := []Point{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if visited.Has(cur) {
			continue
		}
		if !InBounds(cur, g.w, g.h) || g.cells[cur.Y*g.w+cur.X] != Empty {
			continue
		}
		visited.Add(cur)
		cells = append(cells, cur)
		for _, n := range FourNeighbors(cur) {
			queue = append(queue, n)
		}
	}
	return Area{Cells: cells, Size: len(cells)}
}

// FindEmptyAreas partitions every Empty cell into connected Areas, scanning
// row-major for seeds.
func (g *Grid) FindEmptyAreas() []Area {
	visited := NewVisited()
	var areas []Area
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := Point{X: x, Y: y}
			if g.cells[y*g.w+x] != Empty || visited.Has(p) {
				continue
			}
			if area := g.FloodFill(p, visited); area.Size > 0 {
				areas = append(areas, area)
			}
		}
	}
	return areas
}

// ClassifyAreas runs FindEmptyAreas and flags every Area holding at least one
// of the enemy positions.
func (g *Grid) ClassifyAreas(enemies []Point) []Area {
	areas := g.FindEmptyAreas()
	for i := range areas {
		for _, e := range enemies {
			if areas[i].Contains(e) {
				areas[i].HasEnemy = true
				break
			}
		}
	}
	return areas
}

// CaptureArea claims every cell of area. Capturing twice is harmless.
func (g *Grid) CaptureArea(area Area) {
	for _, c := range area.Cells {
		g.Set(c.X, c.Y, Claimed)
	}
}

// CaptureEmptyAreas claims every Empty region that holds no enemy and
// returns the number of cells claimed.
func (g *Grid) CaptureEmptyAreas(enemies []Point) int {
	captured := 0
	for _, area := range g.ClassifyAreas(enemies) {
		if area.HasEnemy {
			continue
		}
		g.CaptureArea(area)
		captured += area.Size
	}
	return captured
}

// Stats tallies the grid; the per-type counts always sum to TotalCells.
// ClaimedPercentage is relative to the non-Border cells and is 0 when there
// are none.
func (g *Grid) Stats() GridStats {
	s := GridStats{TotalCells: len(g.cells)}
	for _, c := range g.cells {
		switch c {
		case Empty:
			s.EmptyCells++
		case Border:
			s.BorderCells++
		case Trace:
			s.TraceCells++
		case Claimed:
			s.ClaimedCells++
		default:
			s.UnknownCells++
		}
	}
	if capturable := s.TotalCells - s.BorderCells; capturable > 0 {
		s.ClaimedPercentage = float64(s.ClaimedCells) / float64(capturable) * 100
	}
	return s
}

// IsFullyCaptured reports whether the claimed percentage has reached
// threshold.
func (g *Grid) IsFullyCaptured(threshold float64) bool {
	return g.Stats().ClaimedPercentage >= threshold
}
