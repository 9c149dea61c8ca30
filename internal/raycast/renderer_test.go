package raycast

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"gridcaster/internal/core"
	"gridcaster/internal/world"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func classicPlayer(t *testing.T) *world.Player {
	t.Helper()
	lvl, err := core.BuildLevel("classic", nil)
	if err != nil {
		t.Fatalf("build classic: %v", err)
	}
	return world.NewPlayer(lvl.Grid, lvl.Spawn.X, lvl.Spawn.Y, 0.3, 1.0472)
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	p := classicPlayer(t)
	tex := solidTexture(16, 16, 180, 90, 30)
	for x := 0; x < 16; x++ {
		tex.Set(x, x, 255, 255, 255)
	}

	serialParams := DefaultParams()
	serial := NewRenderer(serialParams, tex, quietLogger())
	parallelParams := DefaultParams()
	parallelParams.Workers = 4
	parallel := NewRenderer(parallelParams, tex, quietLogger())

	a := core.NewRGBImage(160, 100)
	b := core.NewRGBImage(160, 100)
	if err := serial.Render(context.Background(), p, a); err != nil {
		t.Fatalf("serial render: %v", err)
	}
	if err := parallel.Render(context.Background(), p, b); err != nil {
		t.Fatalf("parallel render: %v", err)
	}
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Fatal("parallel frame differs from serial frame")
	}
}

func TestRenderOverwritesPreviousFrame(t *testing.T) {
	p := classicPlayer(t)
	r := NewRenderer(DefaultParams(), solidTexture(4, 4, 10, 20, 30), quietLogger())
	first := core.NewRGBImage(40, 30)
	if err := r.Render(context.Background(), p, first); err != nil {
		t.Fatal(err)
	}
	dirty := core.NewRGBImage(40, 30)
	for i := range dirty.Pix() {
		dirty.Pix()[i] = 0xab
	}
	if err := r.Render(context.Background(), p, dirty); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Pix(), dirty.Pix()) {
		t.Fatal("render left stale pixels behind")
	}
}

func TestRenderCancelled(t *testing.T) {
	p := classicPlayer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		params := DefaultParams()
		params.Workers = workers
		r := NewRenderer(params, nil, quietLogger())
		err := r.Render(ctx, p, core.NewRGBImage(64, 32))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("workers=%d: err = %v, want context.Canceled", workers, err)
		}
	}
}

func TestRenderSetParamsKeepsTexture(t *testing.T) {
	p := classicPlayer(t)
	tex := solidTexture(4, 4, 0, 200, 0)
	r := NewRenderer(DefaultParams(), tex, quietLogger())
	params := r.Params()
	params.Workers = 0
	params.MaxDist = 24
	r.SetParams(params)
	if got := r.Params().Workers; got != 1 {
		t.Fatalf("workers normalized to %d, want 1", got)
	}

	dst := core.NewRGBImage(8, 60)
	if err := r.Render(context.Background(), p, dst); err != nil {
		t.Fatal(err)
	}
	if dst.At(4, 30, 0) != 0 || dst.At(4, 30, 1) == 0 {
		t.Fatalf("centre pixel = %d,%d,%d, want textured green",
			dst.At(4, 30, 0), dst.At(4, 30, 1), dst.At(4, 30, 2))
	}
}

func TestHitsMatchesColumns(t *testing.T) {
	p := classicPlayer(t)
	r := NewRenderer(DefaultParams(), nil, quietLogger())
	hits := r.Hits(p, 32, nil)
	if len(hits) != 32 {
		t.Fatalf("len = %d, want 32", len(hits))
	}
	for x, h := range hits {
		if want := CastColumn(p, x, 32, r.Params().MaxDist); h != want {
			t.Fatalf("column %d: %+v, want %+v", x, h, want)
		}
		if !h.Hit {
			t.Fatalf("column %d escaped the classic board", x)
		}
	}
}
