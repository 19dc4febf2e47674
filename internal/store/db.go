package store

import (
	"time"

	"zona/internal/session"
)

// DB records finished sessions.
type DB interface {
	Close() error
	Migrate() error
	SaveResult(r *Result) error
	ListResults(q ResultsQuery) ([]Result, error)
	BestResult(layout string) (*Result, error)
}

// ResultsQuery filters ListResults. Zero Limit means 20.
type ResultsQuery struct {
	Layout string
	Limit  int
}

// Result is one finished session.
type Result struct {
	ID                string
	SessionID         string
	Layout            string
	Seed              int64
	Score             int
	Captures          int
	Ticks             int
	ClaimedPercentage float64
	Won               bool
	CreatedAt         time.Time
}

// NewResult converts a session summary into a storable result.
func NewResult(sum session.Summary) *Result {
	return &Result{
		SessionID:         sum.SessionID,
		Layout:            sum.Layout,
		Seed:              sum.Seed,
		Score:             sum.Score,
		Captures:          sum.Captures,
		Ticks:             sum.Ticks,
		ClaimedPercentage: sum.ClaimedPercentage,
		Won:               sum.Won,
	}
}
