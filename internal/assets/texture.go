package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"gridcaster/internal/core"
)

// DecodeTexture reads a PNG, JPEG, GIF or BMP image into an RGB texture. When
// size is positive the image is resampled to size×size.
func DecodeTexture(r io.Reader, size int) (*core.RGBImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode texture: empty %s image", format)
	}

	dst := b.Size()
	if size > 0 {
		dst = image.Pt(size, size)
	}
	rgba := image.NewRGBA(image.Rectangle{Max: dst})
	if dst == b.Size() {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)
	}
	return FromRGBA(rgba), nil
}

// LoadTexture opens and decodes the texture at path.
func LoadTexture(path string, size int) (*core.RGBImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tex, err := DecodeTexture(f, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tex, nil
}

// FromRGBA drops the alpha channel of img.
func FromRGBA(img *image.RGBA) *core.RGBImage {
	b := img.Bounds()
	out := core.NewRGBImage(b.Dx(), b.Dy())
	for y := 0; y < out.H; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < out.W; x++ {
			px := row[x*4 : x*4+3]
			out.Set(x, y, px[0], px[1], px[2])
		}
	}
	return out
}

// Brick paints a procedural brick wall: mortar lines every quarter of the
// height, with alternate courses offset by half a brick.
func Brick(w, h int) *core.RGBImage {
	tex := core.NewRGBImage(w, h)
	if tex.Empty() {
		return tex
	}
	brick := color.RGBA{R: 0xa0, G: 0x40, B: 0x30, A: 0xff}
	dark := color.RGBA{R: 0x80, G: 0x30, B: 0x24, A: 0xff}
	mortar := color.RGBA{R: 0xc8, G: 0xc0, B: 0xb0, A: 0xff}

	course := max(h/4, 1)
	length := max(w/2, 1)
	for y := 0; y < h; y++ {
		row := y / course
		offset := 0
		if row%2 == 1 {
			offset = length / 2
		}
		for x := 0; x < w; x++ {
			c := brick
			if (row+(x+offset)/length)%2 == 1 {
				c = dark
			}
			if y%course == 0 || (x+offset)%length == 0 {
				c = mortar
			}
			tex.Set(x, y, c.R, c.G, c.B)
		}
	}
	return tex
}
