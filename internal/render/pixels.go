package render

import (
	"image/color"

	"gridcaster/internal/core"
	"gridcaster/pkg/geom"
)

// Minimap cell values, used as palette indices.
const (
	MinimapFloor uint8 = iota
	MinimapWall
	MinimapPlayer
)

// MinimapPalette colours the minimap cells, indexed by cell value.
var MinimapPalette = []color.RGBA{
	MinimapFloor:  {R: 24, G: 24, B: 28, A: 200},
	MinimapWall:   {R: 200, G: 200, B: 210, A: 220},
	MinimapPlayer: {R: 255, G: 64, B: 64, A: 255},
}

// FillRGBA expands an RGB frame into opaque RGBA pixels in buf, which must
// hold 4*W*H bytes.
func FillRGBA(buf []byte, frame *core.RGBImage) {
	src := frame.Pix()
	n := frame.W * frame.H
	for i := 0; i < n; i++ {
		s, d := i*core.RGBChannels, i*4
		buf[d+0] = src[s+0]
		buf[d+1] = src[s+1]
		buf[d+2] = src[s+2]
		buf[d+3] = 0xff
	}
}

// MinimapCells writes one palette index per grid cell into dst, marking the
// player's cell. dst is reused when large enough.
func MinimapCells(g *core.Grid, player geom.Vec2[int], dst []uint8) []uint8 {
	dst = g.Cells(dst)
	if g.InBounds(player.X, player.Y) {
		dst[g.Index(player.X, player.Y)] = MinimapPlayer
	}
	return dst
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
