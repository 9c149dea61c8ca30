package raycast

import (
	"math"
	"testing"

	"gridcaster/internal/core"
	"gridcaster/internal/world"
	"gridcaster/pkg/geom"
)

const fov45 = math.Pi / 4

func TestRingEnclosureEveryColumnHits(t *testing.T) {
	lvl := world.Ring(5)
	const cols = 320
	for _, heading := range []float64{0, 0.3, math.Pi / 2, 2, math.Pi, -math.Pi / 4, -2.5} {
		p := world.NewPlayer(lvl.Grid, lvl.Spawn.X, lvl.Spawn.Y, heading, math.Pi/3)
		for x := 0; x < cols; x++ {
			h := CastColumn(p, x, cols, 16)
			if !h.Hit {
				t.Fatalf("heading %v column %d: ray escaped the ring", heading, x)
			}
			if math.IsNaN(h.Distance) || h.Distance <= 0 || h.Distance > 5 {
				t.Fatalf("heading %v column %d: distance %v", heading, x, h.Distance)
			}
			if h.U < 0 || h.U >= 1 {
				t.Fatalf("heading %v column %d: U %v outside [0,1)", heading, x, h.U)
			}
			if !lvl.Grid.Solid(h.Cell.X, h.Cell.Y) {
				t.Fatalf("heading %v column %d: struck empty cell %v", heading, x, h.Cell)
			}
		}
	}
}

func TestArenaCentreColumnFixture(t *testing.T) {
	lvl := world.Arena(16, 16)
	p := world.NewPlayer(lvl.Grid, 2, 2, 0, fov45)
	h := CastColumn(p, 160, 320, 16)
	if !h.Hit || h.Distance != 13 {
		t.Fatalf("centre column distance = %v (hit=%v), want 13", h.Distance, h.Hit)
	}
	if h.Cell != geom.V(15, 2) {
		t.Fatalf("centre column struck %v, want the east border (15,2)", h.Cell)
	}
}

func TestArenaBlockFaceFixture(t *testing.T) {
	lvl := world.Arena(16, 16)
	p := world.NewPlayer(lvl.Grid, 2.5, 4.5, 0, fov45)
	h := CastColumn(p, 160, 320, 16)
	if h.Cell != geom.V(4, 4) || math.Abs(h.Distance-1.5) > 1e-12 {
		t.Fatalf("struck %v at %v, want block (4,4) at 1.5", h.Cell, h.Distance)
	}
	if math.Abs(h.U-0.5) > 1e-9 {
		t.Fatalf("U = %v, want 0.5", h.U)
	}
}

func TestWallCentreGivesHalfU(t *testing.T) {
	lvl := world.Arena(16, 16)
	cases := []struct {
		name    string
		x, y    float64
		heading float64
		face    Face
	}{
		{"east face of block", 8.5, 4.5, math.Pi, FaceEast},
		{"south face of block", 4.5, 9.5, -math.Pi / 2, FaceSouth},
		{"north face of block", 4.5, 1.5, math.Pi / 2, FaceNorth},
		{"east border", 8.5, 8.5, 0, FaceWest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := CastRay(lvl.Grid, geom.V(tc.x, tc.y), tc.heading, 16)
			if !h.Hit {
				t.Fatal("expected a hit")
			}
			if h.Face != tc.face {
				t.Fatalf("face = %v, want %v", h.Face, tc.face)
			}
			if math.Abs(h.U-0.5) > 1e-9 {
				t.Fatalf("U = %v, want 0.5", h.U)
			}
		})
	}
}

func TestTextureContinuityAcrossFace(t *testing.T) {
	// Sweep along the west face of the east border: U must grow smoothly
	// from one column to the next with no seam inside a cell.
	lvl := world.Arena(16, 16)
	p := world.NewPlayer(lvl.Grid, 13.5, 8.5, 0, math.Pi/2)
	const cols = 640
	prev := -1.0
	prevCell := -1
	for x := 0; x < cols; x++ {
		h := CastColumn(p, x, cols, 16)
		if h.Face != FaceWest {
			continue
		}
		if h.Cell.Y == prevCell && h.U < prev {
			t.Fatalf("column %d: U went backwards %v -> %v in cell %d", x, prev, h.U, h.Cell.Y)
		}
		prev, prevCell = h.U, h.Cell.Y
	}
}

func TestMirroringAtCorner(t *testing.T) {
	// Both visible faces of the block read left to right: the west face
	// ends (U→1) at its south corner, where the south face begins (U→0).
	lvl := world.Arena(16, 16)
	west := CastRay(lvl.Grid, geom.V(2.5, 6.5), math.Atan2(4.999-6.5, 4-2.5), 16)
	south := CastRay(lvl.Grid, geom.V(2.5, 6.5), math.Atan2(5-6.5, 4.001-2.5), 16)
	if west.Face != FaceWest || south.Face != FaceSouth {
		t.Fatalf("faces = %v, %v", west.Face, south.Face)
	}
	if west.U < 0.99 || south.U > 0.01 {
		t.Fatalf("corner U values west=%v south=%v", west.U, south.U)
	}
}

func TestAxisAlignedRays(t *testing.T) {
	lvl := world.Arena(16, 16)
	cases := map[float64]float64{0: 6.5, math.Pi / 2: 6.5, math.Pi: 7.5, -math.Pi / 2: 7.5}
	for heading, want := range cases {
		h := CastRay(lvl.Grid, geom.V(8.5, 8.5), heading, 16)
		if !h.Hit || math.Abs(h.Distance-want) > 1e-9 {
			t.Fatalf("heading %v: distance %v hit=%v", heading, h.Distance, h.Hit)
		}
	}
}

func TestRayThroughCornerIsDeterministic(t *testing.T) {
	lvl := world.Arena(16, 16)
	a := CastRay(lvl.Grid, geom.V(2.0, 2.0), math.Pi/4, 16)
	b := CastRay(lvl.Grid, geom.V(2.0, 2.0), math.Pi/4, 16)
	if a != b {
		t.Fatalf("repeated casts differ: %+v vs %+v", a, b)
	}
	if !a.Hit || a.U < 0 || a.U >= 1 {
		t.Fatalf("diagonal cast = %+v", a)
	}
}

func TestCutoffClampsDistance(t *testing.T) {
	g := core.NewGrid(64, 64)
	g.Border()
	h := CastRay(g, geom.V(2.5, 32.5), 0, 8)
	if h.Hit || h.Distance != 8 {
		t.Fatalf("cutoff cast = %+v", h)
	}
}

func TestWallPastCutoffIsNotHit(t *testing.T) {
	g := core.NewGrid(64, 64)
	g.Border()
	g.Set(11, 32, true)
	origin := geom.V(2.5, 32.5)

	h := CastRay(g, origin, 0, 8)
	if h.Hit || h.Distance != 8 {
		t.Fatalf("wall 8.5 away with cutoff 8 = %+v", h)
	}
	if !h.Point.ApproxEqual(geom.V(10.5, 32.5)) {
		t.Fatalf("cutoff point = %v", h.Point)
	}

	h = CastRay(g, origin, 0, 9)
	if !h.Hit || math.Abs(h.Distance-8.5) > 1e-12 || h.Face != FaceWest || math.Abs(h.U-0.5) > 1e-12 {
		t.Fatalf("wall 8.5 away with cutoff 9 = %+v", h)
	}

	h = CastRay(g, origin, 0, 8.5)
	if !h.Hit || math.Abs(h.Distance-8.5) > 1e-12 {
		t.Fatalf("wall exactly at the cutoff = %+v", h)
	}
}

func TestPlayerInsideSolidCell(t *testing.T) {
	g := core.NewGrid(4, 4)
	g.Set(1, 1, true)
	h := CastRay(g, geom.V(1.5, 1.5), 0.7, 16)
	if !h.Hit || h.Distance != 0 {
		t.Fatalf("inside-wall cast = %+v", h)
	}
	if h.U < 0 || h.U >= 1 {
		t.Fatalf("U = %v", h.U)
	}
}

func TestInvalidAngleDoesNotLoop(t *testing.T) {
	lvl := world.Arena(16, 16)
	h := CastRay(lvl.Grid, geom.V(2.5, 2.5), math.NaN(), 16)
	if h.Hit || h.Distance != 16 {
		t.Fatalf("NaN cast = %+v", h)
	}
}

func TestDisplacementSpansFOV(t *testing.T) {
	if got := Displacement(0, 320, fov45); got != -fov45/2 {
		t.Fatalf("first column = %v", got)
	}
	if got := Displacement(160, 320, fov45); got != 0 {
		t.Fatalf("centre column = %v", got)
	}
	if got := Displacement(5, 0, fov45); got != 0 {
		t.Fatalf("zero columns = %v", got)
	}
}
