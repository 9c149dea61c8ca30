package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.IntN(100) != b.IntN(100) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
	if a.IntN(0) != 0 || a.Chance(0) {
		t.Fatal("degenerate bounds must not draw")
	}
}
