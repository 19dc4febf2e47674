package session

import (
	"strconv"
)

// Field is one labelled value shown by a front end.
type Field struct {
	Key   string
	Label string
	Value string
}

// FieldGroup clusters related fields for presentation.
type FieldGroup struct {
	Name   string
	Fields []Field
}

// Readout is a snapshot of everything the HUD displays.
type Readout struct {
	Groups []FieldGroup
}

// Lookup returns the field with the given key.
func (r Readout) Lookup(key string) (Field, bool) {
	for _, g := range r.Groups {
		for _, f := range g.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Readout captures the current score, lives and grid statistics.
func (s *Session) Readout() Readout {
	stats := s.grid.Stats()
	return Readout{Groups: []FieldGroup{
		{
			Name: "Session",
			Fields: []Field{
				textField("layout", "Layout", s.cfg.Layout),
				textField("state", "State", s.state.String()),
				int64Field("seed", "Seed", s.seed),
				intField("ticks", "Ticks", s.ticks),
			},
		},
		{
			Name: "Score",
			Fields: []Field{
				intField("score", "Score", s.score),
				intField("lives", "Lives", s.lives),
				intField("captures", "Captures", s.captures),
				intField("last_capture", "Last capture", s.lastCapture),
			},
		},
		{
			Name: "Grid",
			Fields: []Field{
				textField("size", "Size", strconv.Itoa(s.grid.Width())+"x"+strconv.Itoa(s.grid.Height())),
				percentField("claimed_pct", "Claimed", stats.ClaimedPercentage),
				percentField("threshold", "Target", s.cfg.WinThreshold),
				intField("empty", "Empty", stats.EmptyCells),
				intField("border", "Border", stats.BorderCells),
				intField("trace", "Trace", stats.TraceCells),
				intField("claimed", "Claimed cells", stats.ClaimedCells),
			},
		},
	}}
}

func textField(key, label, value string) Field {
	return Field{Key: key, Label: label, Value: value}
}

func intField(key, label string, value int) Field {
	return Field{Key: key, Label: label, Value: strconv.Itoa(value)}
}

func int64Field(key, label string, value int64) Field {
	return Field{Key: key, Label: label, Value: strconv.FormatInt(value, 10)}
}

func percentField(key, label string, value float64) Field {
	return Field{Key: key, Label: label, Value: strconv.FormatFloat(value, 'f', 1, 64) + "%"}
}
