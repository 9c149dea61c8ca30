//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/internal/core"
)

// FramePainter uploads rendered RGB frames to an ebiten image and draws
// them scaled onto the screen.
type FramePainter struct {
	img *ebiten.Image
	buf []byte
	w   int
	h   int
}

// NewFramePainter allocates a painter for frames of the given size.
func NewFramePainter(w, h int) *FramePainter {
	p := &FramePainter{}
	p.resize(w, h)
	return p
}

func (p *FramePainter) resize(w, h int) {
	p.w, p.h = w, h
	p.img = ebiten.NewImage(w, h)
	p.buf = make([]byte, 4*w*h)
}

// Blit converts frame to RGBA, uploads it and draws it onto screen.
func (p *FramePainter) Blit(screen *ebiten.Image, frame *core.RGBImage, scale int) {
	if frame.Empty() {
		return
	}
	if frame.W != p.w || frame.H != p.h {
		p.resize(frame.W, frame.H)
	}
	FillRGBA(p.buf, frame)
	p.img.WritePixels(p.buf)

	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
