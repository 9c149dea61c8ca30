package core

// RGBChannels is the number of bytes per pixel in an RGBImage.
const RGBChannels = 3

// RGBImage is a tightly packed, row-major RGB byte buffer. It backs both the
// frame the raycaster draws into and the wall textures it samples.
type RGBImage struct {
	W, H int
	pix  []byte
}

// NewRGBImage allocates a black image. Negative sizes are treated as zero.
func NewRGBImage(w, h int) *RGBImage {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGBImage{W: w, H: h, pix: make([]byte, w*h*RGBChannels)}
}

// Pix exposes the backing slice.
func (m *RGBImage) Pix() []byte { return m.pix }

// Stride is the byte length of one row.
func (m *RGBImage) Stride() int { return m.W * RGBChannels }

// Empty reports whether the image holds no pixels.
func (m *RGBImage) Empty() bool { return m == nil || m.W == 0 || m.H == 0 }

// Offset returns the byte offset of pixel (x, y).
func (m *RGBImage) Offset(x, y int) int { return y*m.Stride() + x*RGBChannels }

// At returns one channel of pixel (x, y). Callers must stay in bounds.
func (m *RGBImage) At(x, y, c int) byte { return m.pix[m.Offset(x, y)+c] }

// Set writes pixel (x, y).
func (m *RGBImage) Set(x, y int, r, g, b byte) {
	o := m.Offset(x, y)
	m.pix[o] = r
	m.pix[o+1] = g
	m.pix[o+2] = b
}

// Clear fills the image with black.
func (m *RGBImage) Clear() {
	for i := range m.pix {
		m.pix[i] = 0
	}
}
