package raycast

import (
	"math"

	"gridcaster/internal/core"
	"gridcaster/internal/world"
	"gridcaster/pkg/geom"
)

// axisEpsilon is the direction component below which a ray is treated as
// parallel to that grid axis.
const axisEpsilon = 1e-12

// maxU is the largest texture coordinate returned, keeping U inside [0, 1).
var maxU = math.Nextafter(1, 0)

// Side says which grid axis a struck wall face is perpendicular to.
type Side int

const (
	// SideX faces are crossed while stepping along X (west and east faces).
	SideX Side = iota
	// SideY faces are crossed while stepping along Y (north and south faces).
	SideY
)

func (s Side) String() string {
	if s == SideY {
		return "y"
	}
	return "x"
}

// Face names the struck face of a solid cell. North is the -Y side.
type Face int

const (
	FaceWest Face = iota
	FaceEast
	FaceNorth
	FaceSouth
)

// Side returns the axis the face is perpendicular to.
func (f Face) Side() Side {
	if f == FaceNorth || f == FaceSouth {
		return SideY
	}
	return SideX
}

// Hit is the result of casting one column's ray. It is recomputed every
// frame and never retained.
type Hit struct {
	Distance float64
	Side     Side
	Face     Face
	U        float64

	Cell  geom.Vec2[int]
	Point geom.Vec2[float64]
	// Hit is false when the ray ran out of distance before striking a wall.
	Hit bool
}

// Displacement returns the angle of column x relative to the heading, in
// [-fov/2, fov/2).
func Displacement(x, columns int, fov float64) float64 {
	if columns <= 0 {
		return 0
	}
	return -fov/2 + (float64(x)/float64(columns))*fov
}

// CastColumn casts the ray for screen column x of columns from the player.
func CastColumn(p *world.Player, x, columns int, maxDist float64) Hit {
	return CastRay(p.Grid(), p.Pos, p.Heading+Displacement(x, columns, p.FOV), maxDist)
}

// CastRay walks the grid from origin along angle, crossing one grid line at
// a time, until it enters a solid cell or travels maxDist.
func CastRay(g *core.Grid, origin geom.Vec2[float64], angle, maxDist float64) Hit {
	if !finite(angle) || !finite(origin.X) || !finite(origin.Y) {
		return Hit{Distance: maxDist, Point: origin}
	}

	dir := geom.Dir(angle)
	step := geom.DeltaBrick(angle)
	cell := geom.Floor(origin)

	tMaxX, tDeltaX := axisCrossing(origin.X, dir.X, cell.X, step.X)
	tMaxY, tDeltaY := axisCrossing(origin.Y, dir.Y, cell.Y, step.Y)

	side := SideX
	if tMaxY < tMaxX {
		side = SideY
	}
	t := 0.0
	limit := 2*int(math.Ceil(math.Max(maxDist, 0))) + 4
	for i := 0; ; i++ {
		// the cell was entered beyond the cutoff, so its wall is out of sight
		if i > 0 && t > maxDist {
			return strike(origin, dir, cell, step, side, maxDist, false)
		}
		if g.Solid(cell.X, cell.Y) {
			return strike(origin, dir, cell, step, side, t, true)
		}
		if t >= maxDist || i >= limit {
			return strike(origin, dir, cell, step, side, maxDist, false)
		}
		if tMaxX <= tMaxY {
			t = tMaxX
			tMaxX += tDeltaX
			cell.X += step.X
			side = SideX
		} else {
			t = tMaxY
			tMaxY += tDeltaY
			cell.Y += step.Y
			side = SideY
		}
	}
}

// axisCrossing returns the ray parameter of the first grid line crossed on
// one axis and the parameter spacing between successive lines.
func axisCrossing(pos, dir float64, cell, step int) (tMax, tDelta float64) {
	if math.Abs(dir) < axisEpsilon {
		return math.Inf(1), math.Inf(1)
	}
	tDelta = math.Abs(1 / dir)
	if step > 0 {
		return (float64(cell) + 1 - pos) * tDelta, tDelta
	}
	return (pos - float64(cell)) * tDelta, tDelta
}

func strike(origin, dir geom.Vec2[float64], cell, step geom.Vec2[int], side Side, dist float64, hit bool) Hit {
	point := origin.Add(dir.Scale(dist))
	h := Hit{Distance: dist, Cell: cell, Point: point, Hit: hit}
	if !hit {
		h.Face = stepFace(side, step)
		h.Side = side
		return h
	}

	center := geom.Convert[float64](cell).Add(geom.Splat(0.5))
	d := point.Sub(center)
	face, ok := octantFace(geom.Octant(math.Atan2(d.Y, d.X)))
	if !ok {
		face = stepFace(side, step)
	}
	h.Face = face
	h.Side = face.Side()
	h.U = faceU(face, point, cell)
	return h
}

// octantFace maps the direction from a cell's centre to the hit point onto
// the face that was struck.
func octantFace(octant int) (Face, bool) {
	switch octant {
	case 8, 1:
		return FaceEast, true
	case 2, 3:
		return FaceSouth, true
	case 4, 5:
		return FaceWest, true
	case 6, 7:
		return FaceNorth, true
	}
	return 0, false
}

// stepFace is the face entered by the last grid step, used when the hit
// direction cannot be classified.
func stepFace(side Side, step geom.Vec2[int]) Face {
	if side == SideY {
		if step.Y > 0 {
			return FaceNorth
		}
		return FaceSouth
	}
	if step.X > 0 {
		return FaceWest
	}
	return FaceEast
}

// faceU returns the texture coordinate along a face so that the texture
// reads left to right for a viewer standing in front of it.
func faceU(face Face, point geom.Vec2[float64], cell geom.Vec2[int]) float64 {
	u := clamp01(point.X - float64(cell.X))
	v := clamp01(point.Y - float64(cell.Y))
	var tu float64
	switch face {
	case FaceWest:
		tu = v
	case FaceEast:
		tu = 1 - v
	case FaceSouth:
		tu = u
	case FaceNorth:
		tu = 1 - u
	}
	return math.Min(tu, maxU)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
