package core

import "image/color"

// CellType is the state held by one grid cell.
//
// Legal transitions: Empty->Trace, Trace->Border, Trace->Empty,
// Empty->Claimed. Border only changes across a full Reset.
type CellType uint8

const (
	// Empty cells are open play field; the player may trace through them
	// and flood fill may claim them.
	Empty CellType = iota
	// Border cells are impassable: the perimeter plus every sealed trace.
	Border
	// Trace marks the player's current unclosed path.
	Trace
	// Claimed cells are captured territory.
	Claimed
)

// Valid reports whether t is one of the four known cell types.
func (t CellType) Valid() bool { return t <= Claimed }

// String returns the upper-case debug name.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "EMPTY"
	case Border:
		return "BORDER"
	case Trace:
		return "TRACE"
	case Claimed:
		return "CLAIMED"
	default:
		return "UNKNOWN"
	}
}

// Glyph is the single character used by Grid.String.
func (t CellType) Glyph() rune {
	switch t {
	case Empty:
		return '·'
	case Border:
		return '█'
	case Trace:
		return '○'
	case Claimed:
		return '▓'
	default:
		return '?'
	}
}

// Color is the reference render color for t.
func (t CellType) Color() color.RGBA {
	switch t {
	case Empty:
		return color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	case Border:
		return color.RGBA{R: 0x00, G: 0xd9, B: 0xff, A: 0xff}
	case Trace:
		return color.RGBA{R: 0xff, G: 0xbe, B: 0x0b, A: 0xff}
	case Claimed:
		return color.RGBA{R: 0x7b, G: 0x2c, B: 0xbf, A: 0xff}
	default:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
}

// Safe reports whether a player may stand on t without tracing.
func (t CellType) Safe() bool { return t == Border || t == Claimed }
