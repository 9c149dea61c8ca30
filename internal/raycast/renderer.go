package raycast

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"gridcaster/internal/core"
	"gridcaster/internal/world"
)

// Renderer draws whole frames: one ray and one composited strip per column.
type Renderer struct {
	params Params
	comp   *Compositor
	log    logrus.FieldLogger
}

// NewRenderer builds a renderer for the given wall texture.
func NewRenderer(p Params, texture *core.RGBImage, log logrus.FieldLogger) *Renderer {
	r := &Renderer{params: normalize(p), log: log.WithField("component", "raycast")}
	r.SetTexture(texture)
	return r
}

// Params returns the active parameters.
func (r *Renderer) Params() Params { return r.params }

// SetParams replaces the parameters, keeping the current texture.
func (r *Renderer) SetParams(p Params) {
	r.params = normalize(p)
	r.comp = NewCompositor(r.params, r.comp.texture)
}

// SetTexture replaces the wall texture.
func (r *Renderer) SetTexture(texture *core.RGBImage) {
	if texture.Empty() {
		r.log.WithField("fallback", r.params.Fallback).Warn("wall texture is empty, painting walls with fallback colour")
	}
	r.comp = NewCompositor(r.params, texture)
}

func normalize(p Params) Params {
	if p.Workers < 1 {
		p.Workers = 1
	}
	return p
}

// Render clears dst and draws the player's view into it. Columns are split
// into contiguous ranges rendered concurrently; each range owns its columns'
// bytes, so the grid and player are only read.
func (r *Renderer) Render(ctx context.Context, p *world.Player, dst *core.RGBImage) error {
	dst.Clear()
	cols := dst.W
	workers := r.params.Workers
	if workers <= 1 || cols < 2*workers {
		r.renderColumns(p, dst, 0, cols)
		return ctx.Err()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (cols + workers - 1) / workers
	for start := 0; start < cols; start += chunk {
		end := min(start+chunk, cols)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.renderColumns(p, dst, start, end)
			return nil
		})
	}
	return g.Wait()
}

// Hits casts every column of a frame cols wide without drawing.
func (r *Renderer) Hits(p *world.Player, cols int, dst []Hit) []Hit {
	dst = dst[:0]
	for x := 0; x < cols; x++ {
		dst = append(dst, CastColumn(p, x, cols, r.params.MaxDist))
	}
	return dst
}

func (r *Renderer) renderColumns(p *world.Player, dst *core.RGBImage, start, end int) {
	for x := start; x < end; x++ {
		hit := CastColumn(p, x, dst.W, r.params.MaxDist)
		r.comp.Column(dst, x, hit, Displacement(x, dst.W, p.FOV))
	}
}
