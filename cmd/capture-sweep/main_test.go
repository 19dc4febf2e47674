package main

import "testing"

func TestRunRoundIsDeterministic(t *testing.T) {
	a := runRound(job{layout: "tiny", seed: 5}, 2000)
	b := runRound(job{layout: "tiny", seed: 5}, 2000)
	a.summary.SessionID, b.summary.SessionID = "", ""
	if a.summary != b.summary || a.state != b.state || a.lives != b.lives {
		t.Fatalf("rounds differ:\n%+v\n%+v", a, b)
	}
	if a.summary.Layout != "tiny" || a.summary.Seed != 5 {
		t.Fatalf("summary = %+v", a.summary)
	}
	if a.summary.Ticks == 0 {
		t.Fatal("round did not run")
	}
}

func TestClampWorkers(t *testing.T) {
	cases := []struct{ in, want int }{{-3, 1}, {0, 1}, {1, 1}, {8, 8}}
	for _, c := range cases {
		if got := clampWorkers(c.in); got != c.want {
			t.Errorf("clampWorkers(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
