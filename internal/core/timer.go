package core

import "time"

// maxCatchUp bounds how many steps Advance reports after a stall.
const maxCatchUp = 5

// FixedStep paces game ticks at a steady rate independent of frame timing.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting tps ticks per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance feeds the clock reading now and returns how many ticks are due.
// The first call primes the clock and reports one tick.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	f.accumulator += delta
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	if n > maxCatchUp {
		f.accumulator = 0
		n = maxCatchUp
	}
	return n
}

// Reset forgets accumulated time so the next Advance primes again.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
