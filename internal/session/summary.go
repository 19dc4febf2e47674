package session

// Summary is the end-of-session record handed to result storage.
type Summary struct {
	SessionID         string
	Layout            string
	Seed              int64
	Score             int
	Captures          int
	Ticks             int
	ClaimedPercentage float64
	Won               bool
}

// Summary reports the session's outcome so far.
func (s *Session) Summary() Summary {
	return Summary{
		SessionID:         s.id,
		Layout:            s.cfg.Layout,
		Seed:              s.seed,
		Score:             s.score,
		Captures:          s.captures,
		Ticks:             s.ticks,
		ClaimedPercentage: s.grid.Stats().ClaimedPercentage,
		Won:               s.state == StateWon,
	}
}
