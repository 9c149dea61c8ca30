package core

import (
	"testing"
	"time"
)

func TestFramePacerDeltaAndRemaining(t *testing.T) {
	clock := time.Unix(100, 0)
	p := NewFramePacer(50)
	p.now = func() time.Time { return clock }

	if got := p.Remaining(); got != 0 {
		t.Fatalf("Remaining before first Delta = %v", got)
	}
	if got := p.Delta(); got != 0.02 {
		t.Fatalf("first Delta = %v, want one frame", got)
	}

	clock = clock.Add(5 * time.Millisecond)
	if got := p.Remaining(); got != 15*time.Millisecond {
		t.Fatalf("Remaining = %v, want 15ms", got)
	}

	clock = clock.Add(5 * time.Millisecond)
	if got := p.Delta(); got != 0.01 {
		t.Fatalf("Delta = %v, want 0.01", got)
	}

	clock = clock.Add(5 * time.Second)
	if got := p.Delta(); got != maxDelta.Seconds() {
		t.Fatalf("stalled Delta = %v, want cap %v", got, maxDelta.Seconds())
	}
	clock = clock.Add(time.Second)
	if got := p.Remaining(); got != 0 {
		t.Fatalf("late frame Remaining = %v", got)
	}
}

func TestFramePacerDefaultsFPS(t *testing.T) {
	p := NewFramePacer(0)
	if p.Frame() != time.Second/60 {
		t.Fatalf("Frame = %v", p.Frame())
	}
}
