package ui

import (
	"fmt"
	"strings"

	"zona/internal/session"
)

// ReadoutLines flattens r into panel lines: each group name followed by its
// fields as indented "Label: Value" rows, with a blank line between groups.
func ReadoutLines(r session.Readout) []string {
	var lines []string
	for i, g := range r.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, f := range g.Fields {
			lines = append(lines, fmt.Sprintf("  %s: %s", f.Label, f.Value))
		}
	}
	return lines
}

// StatusLine condenses r into the single line shown under the terminal board.
func StatusLine(r session.Readout) string {
	parts := make([]string, 0, 6)
	add := func(format, key string) {
		if f, ok := r.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf(format, f.Value))
		}
	}
	add("%s", "layout")
	add("%s", "state")
	add("score %s", "score")
	add("lives %s", "lives")
	if claimed, ok := r.Lookup("claimed_pct"); ok {
		target, _ := r.Lookup("threshold")
		parts = append(parts, fmt.Sprintf("claimed %s/%s", claimed.Value, target.Value))
	}
	add("seed %s", "seed")
	return strings.Join(parts, " | ")
}

// Banner returns the end-of-round message, or "" while playing.
func Banner(r session.Readout) string {
	f, _ := r.Lookup("state")
	switch f.Value {
	case session.StateWon.String():
		return "CLEARED! R restarts, S reseeds"
	case session.StateLost.String():
		return "GAME OVER. R restarts, S reseeds"
	default:
		return ""
	}
}
