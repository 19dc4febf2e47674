package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.Range(-5, 5), b.Range(-5, 5); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 500; i++ {
		if v := r.Range(9, 3); v < 3 || v > 9 {
			t.Fatalf("Range(9,3) = %d", v)
		}
		if v := r.IntN(4); v < 0 || v >= 4 {
			t.Fatalf("IntN(4) = %d", v)
		}
		if s := r.Sign(); s != 1 && s != -1 {
			t.Fatalf("Sign = %f", s)
		}
	}
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("IntN with non-positive bound must be 0")
	}
}
