package game

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"gridcaster/internal/core"
	"gridcaster/internal/raycast"
	"gridcaster/internal/world"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	lvl := world.Arena(16, 16)
	lvl.Name = "arena"
	s, err := New(Options{
		Level:  lvl,
		Params: raycast.DefaultParams(),
		Motion: world.DefaultMotion(),
		FOV:    math.Pi / 4,
		Width:  64,
		Height: 40,
	}, log)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestNewRejectsBadOptions(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if _, err := New(Options{Width: 10, Height: 10}, log); !errors.Is(err, ErrNoLevel) {
		t.Fatalf("err = %v, want ErrNoLevel", err)
	}
	if _, err := New(Options{Level: world.Ring(5), Width: 0, Height: 10}, log); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestStepAndReset(t *testing.T) {
	s := newSession(t)
	start := s.Player().Pos
	if err := s.Step(world.Input{Forward: true}, 0.1); err != nil {
		t.Fatal(err)
	}
	if s.Player().Pos.X <= start.X {
		t.Fatalf("player did not walk east: %v -> %v", start, s.Player().Pos)
	}
	s.Reset()
	if s.Player().Pos != start {
		t.Fatalf("reset position = %v, want %v", s.Player().Pos, start)
	}
}

func TestRenderFillsFrame(t *testing.T) {
	s := newSession(t)
	frame, err := s.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if frame != s.Frame() || frame.W != 64 || frame.H != 40 {
		t.Fatalf("unexpected frame %dx%d", frame.W, frame.H)
	}
	ceil := raycast.DefaultParams().Ceiling
	if frame.At(32, 0, 2) != ceil.B {
		t.Fatalf("top row blue = %d, want ceiling %d", frame.At(32, 0, 2), ceil.B)
	}

	s.Resize(32, 20)
	frame, err = s.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if frame.W != 32 || frame.H != 20 {
		t.Fatalf("resized frame %dx%d", frame.W, frame.H)
	}
}

func TestSetFloatParameter(t *testing.T) {
	s := newSession(t)
	if !s.SetFloatParameter("max_dist", 500) {
		t.Fatal("max_dist should be tunable")
	}
	if got := s.Renderer().Params().MaxDist; got != 128 {
		t.Fatalf("max_dist = %v, want clamped 128", got)
	}
	if !s.SetFloatParameter("fov", math.Pi/2) || s.Player().FOV != math.Pi/2 {
		t.Fatalf("fov = %v", s.Player().FOV)
	}
	s.Reset()
	if s.Player().FOV != math.Pi/2 {
		t.Fatal("fov lost on reset")
	}
	if s.SetFloatParameter("gravity", 1) {
		t.Fatal("unknown key accepted")
	}
	if s.SetFloatParameter("fov", math.NaN()) {
		t.Fatal("NaN accepted")
	}
}

func TestParametersSnapshot(t *testing.T) {
	s := newSession(t)
	var _ core.ParameterControlsProvider = s
	var _ core.FloatParameterSetter = s

	found := map[string]string{}
	for _, g := range s.Parameters().Groups {
		for _, p := range g.Params {
			found[p.Key] = p.Value
		}
	}
	if found["level"] != "arena" || found["x"] != "2.000" || found["width"] != "64" {
		t.Fatalf("snapshot = %v", found)
	}
	for _, c := range s.ParameterControls() {
		if _, ok := found[c.Key]; !ok {
			t.Fatalf("control %q missing from snapshot", c.Key)
		}
	}
}
