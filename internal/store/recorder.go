package store

import (
	"fmt"
	"io"
	"log"

	"zona/internal/session"
)

// Recorder saves the outcome of every finished round exactly once. A nil DB
// turns saving off while still tracking rounds.
type Recorder struct {
	db    DB
	log   *log.Logger
	armed bool
}

// NewRecorder returns a recorder writing to db.
func NewRecorder(db DB, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Recorder{db: db, log: logger, armed: true}
}

// Observe inspects s after a tick. The first time a round is seen finished
// its result is saved and returned; otherwise Observe returns nil.
func (r *Recorder) Observe(s *session.Session) (*Result, error) {
	if s.State() == session.StatePlaying {
		r.armed = true
		return nil, nil
	}
	if !r.armed {
		return nil, nil
	}
	r.armed = false
	res := NewResult(s.Summary())
	if r.db == nil {
		return res, nil
	}
	if err := r.db.SaveResult(res); err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}
	r.log.Printf("saved result %s: %s score %d (%s)", res.ID[:8], res.Layout, res.Score, s.State())
	return res, nil
}

// BestNote describes the best stored score for layout, or "" when nothing
// is stored.
func (r *Recorder) BestNote(layout string) string {
	if r.db == nil {
		return ""
	}
	best, err := r.db.BestResult(layout)
	if err != nil {
		r.log.Printf("best result lookup failed: %v", err)
		return ""
	}
	if best == nil {
		return ""
	}
	return fmt.Sprintf("Best %s: %d", layout, best.Score)
}
