//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcaster/internal/raycast"
	"gridcaster/internal/render"
	"gridcaster/internal/world"
)

// minimapRays is how many of the frame's rays the minimap traces.
const minimapRays = 24

// MinimapSource supplies the player and the renderer whose rays are drawn.
type MinimapSource interface {
	Player() *world.Player
	Renderer() *raycast.Renderer
}

// Overlay draws the minimap in the top-left corner of the view: grid cells,
// the player's cell, a fan of rays to the walls they strike, and the
// heading.
type Overlay struct {
	src      MinimapSource
	cellSize int
	visible  bool

	mapImg *ebiten.Image
	mapBuf []byte
	cells  []uint8
	hits   []raycast.Hit
	pixel  *ebiten.Image
}

// NewOverlay constructs a minimap drawing each grid cell cellSize screen
// pixels wide.
func NewOverlay(src MinimapSource, cellSize int) *Overlay {
	if cellSize <= 0 {
		cellSize = 1
	}
	o := &Overlay{src: src, cellSize: cellSize, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on M.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.visible = !o.visible
	}
}

// Draw renders the minimap onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	p := o.src.Player()
	if p == nil || p.Grid() == nil {
		return
	}
	g := p.Grid()
	size := g.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.mapImg == nil || o.mapImg.Bounds().Dx() != size.W || o.mapImg.Bounds().Dy() != size.H {
		o.mapImg = ebiten.NewImage(size.W, size.H)
		o.mapBuf = make([]byte, 4*total)
	}

	o.cells = render.MinimapCells(g, p.Cell(), o.cells)
	render.FillPaletteRGBA(o.mapBuf, o.cells, render.MinimapPalette)
	o.mapImg.WritePixels(o.mapBuf)

	scale := float64(o.cellSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(minimapMargin, minimapMargin)
	screen.DrawImage(o.mapImg, op)

	px := minimapMargin + p.Pos.X*scale
	py := minimapMargin + p.Pos.Y*scale
	o.hits = o.src.Renderer().Hits(p, minimapRays, o.hits)
	ray := color.RGBA{R: 255, G: 220, B: 90, A: 140}
	for _, h := range o.hits {
		o.drawLine(screen, px, py, minimapMargin+h.Point.X*scale, minimapMargin+h.Point.Y*scale, 1, ray)
	}
	edge := color.RGBA{R: 255, G: 220, B: 90, A: 220}
	reach := 1.5 * scale
	o.drawLine(screen, px, py, px+math.Cos(p.RightEdge())*reach, py+math.Sin(p.RightEdge())*reach, 1, edge)
	o.drawLine(screen, px, py, px+math.Cos(p.Heading)*reach, py+math.Sin(p.Heading)*reach, 1.5,
		color.RGBA{R: 255, G: 64, B: 64, A: 255})
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

const minimapMargin = 6
