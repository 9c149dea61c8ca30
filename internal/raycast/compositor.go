package raycast

import (
	"image/color"
	"math"

	"gridcaster/internal/core"
	"gridcaster/pkg/geom"
)

// MinDistance is the smallest corrected wall distance used for projection.
const MinDistance = 1e-4

// Params configures how columns are shaded and composited.
type Params struct {
	// MaxDist is the ray cutoff; walls fade to black at this distance.
	MaxDist float64
	// SideShade multiplies the colour of Y-facing walls. 1 disables it.
	SideShade float64

	Ceiling  color.RGBA
	Floor    color.RGBA
	Fallback color.RGBA

	// Workers bounds the goroutines rendering columns. 1 renders serially.
	Workers int
}

// DefaultParams returns a blue ceiling, grey floor and a 16-cell view distance.
func DefaultParams() Params {
	return Params{
		MaxDist:   16,
		SideShade: 0.5,
		Ceiling:   color.RGBA{R: 0x55, G: 0x55, B: 0xff, A: 0xff},
		Floor:     color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
		Fallback:  color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
		Workers:   1,
	}
}

// CorrectFisheye projects a ray distance onto the view direction. The result
// is never below MinDistance.
func CorrectFisheye(distance, displacement float64) float64 {
	z := distance * math.Cos(displacement)
	if !(z >= MinDistance) {
		return MinDistance
	}
	return z
}

// WallSpan returns the top and bottom rows of a wall at corrected distance z
// on a column h pixels tall. The span is symmetric around the centre row
// and may extend past the column.
func WallSpan(z float64, h int) (top, bottom float64) {
	if z < MinDistance {
		z = MinDistance
	}
	fh := float64(h)
	top = fh/2 - fh/z
	return top, fh - top
}

// Shade is the linear distance falloff, clamped to [0, 1].
func Shade(z, maxDist float64) float64 {
	if maxDist <= 0 {
		return 0
	}
	s := 1 - z/maxDist
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Compositor turns column hits into vertical pixel strips.
type Compositor struct {
	params  Params
	texture *core.RGBImage
}

// NewCompositor creates a compositor sampling texture. A nil or empty
// texture paints walls with the fallback colour.
func NewCompositor(p Params, texture *core.RGBImage) *Compositor {
	return &Compositor{params: p, texture: texture}
}

// Column writes column x of dst for hit, whose ray was displaced from the
// heading by displacement radians. Rows run top-down: ceiling, wall, floor.
func (c *Compositor) Column(dst *core.RGBImage, x int, hit Hit, displacement float64) {
	if x < 0 || x >= dst.W {
		return
	}
	z := CorrectFisheye(hit.Distance, displacement)
	top, bottom := WallSpan(z, dst.H)
	shade := Shade(z, c.params.MaxDist)
	if hit.Side == SideY {
		shade *= c.params.SideShade
	}
	span := bottom - top

	ceil, floor := c.params.Ceiling, c.params.Floor
	for y := 0; y < dst.H; y++ {
		fy := float64(y)
		switch {
		case fy < top:
			dst.Set(x, y, ceil.R, ceil.G, ceil.B)
		case fy < bottom:
			r, g, b := c.sample(hit.U, (fy-top)/span)
			dst.Set(x, y, scaleByte(r, shade), scaleByte(g, shade), scaleByte(b, shade))
		default:
			dst.Set(x, y, floor.R, floor.G, floor.B)
		}
	}
}

// sample reads the texel at normalized (u, v).
func (c *Compositor) sample(u, v float64) (r, g, b byte) {
	tex := c.texture
	if tex.Empty() {
		fb := c.params.Fallback
		return fb.R, fb.G, fb.B
	}
	tx := clampIndex(int(geom.Fraction(u)*float64(tex.W)), tex.W)
	ty := clampIndex(int(v*float64(tex.H)), tex.H)
	return tex.At(tx, ty, 0), tex.At(tx, ty, 1), tex.At(tx, ty, 2)
}

func scaleByte(b byte, s float64) byte {
	v := float64(b) * s
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
