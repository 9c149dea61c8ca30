package assets

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"gridcaster/internal/core"
)

// ToRGBA copies an RGB frame into an opaque image.RGBA.
func ToRGBA(frame *core.RGBImage) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.W, frame.H))
	for y := 0; y < frame.H; y++ {
		for x := 0; x < frame.W; x++ {
			o := img.PixOffset(x, y)
			img.Pix[o+0] = frame.At(x, y, 0)
			img.Pix[o+1] = frame.At(x, y, 1)
			img.Pix[o+2] = frame.At(x, y, 2)
			img.Pix[o+3] = 0xff
		}
	}
	return img
}

// EncodeFrame writes frame as "png" or "bmp".
func EncodeFrame(w io.Writer, frame *core.RGBImage, format string) error {
	img := ToRGBA(frame)
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("unsupported image format %q", format)
}

// FormatFor picks the encoding from a file extension, defaulting to png.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return "bmp"
	}
	return "png"
}
