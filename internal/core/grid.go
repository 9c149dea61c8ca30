package core

// Grid is a fixed-size occupancy grid stored in row-major order. Cells
// outside the grid read as solid so rays and movement never leave the map.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Solid reports whether the cell blocks movement and rays.
func (g *Grid) Solid(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.data[g.Index(x, y)]
}

// Set marks a cell solid or empty. Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, solid bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = solid
}

// Border makes every edge cell solid.
func (g *Grid) Border() {
	for x := 0; x < g.W; x++ {
		g.Set(x, 0, true)
		g.Set(x, g.H-1, true)
	}
	for y := 0; y < g.H; y++ {
		g.Set(0, y, true)
		g.Set(g.W-1, y, true)
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Cells encodes the grid as 0/1 bytes for palette-based painters.
func (g *Grid) Cells(dst []uint8) []uint8 {
	if cap(dst) < len(g.data) {
		dst = make([]uint8, len(g.data))
	}
	dst = dst[:len(g.data)]
	for i, solid := range g.data {
		dst[i] = 0
		if solid {
			dst[i] = 1
		}
	}
	return dst
}
