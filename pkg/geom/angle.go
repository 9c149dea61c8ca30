package geom

import "math"

const (
	twoPi     = 2 * math.Pi
	quarterPi = math.Pi / 4
)

// OctantNone marks an angle that cannot be classified.
const OctantNone = -1

// WrapAngle maps an angle to (-π, π]. Non-finite input yields NaN.
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return math.NaN()
	}
	a = math.Remainder(a, twoPi)
	if a <= -math.Pi {
		a = math.Pi
	}
	return a
}

// Fraction discards the integer part of n, returning a value in [0, 1).
func Fraction(n float64) float64 {
	f := n - math.Floor(n)
	if f >= 1 {
		// tiny negative n rounds up to 1
		return 0
	}
	return f
}

// FractionVec applies Fraction to both coordinates.
func FractionVec(v Vec2[float64]) Vec2[float64] {
	return Vec2[float64]{X: Fraction(v.X), Y: Fraction(v.Y)}
}

// Octant classifies an angle in [-π, π] into one of eight π/4 sectors
// numbered counterclockwise from 1, where sector 1 is (0, π/4] and sector 8
// is (-π/4, 0). -π belongs to sector 5. Zero, NaN and angles outside
// [-π, π] return OctantNone.
func Octant(a float64) int {
	if math.IsNaN(a) || a == 0 || a < -math.Pi || a > math.Pi {
		return OctantNone
	}
	switch {
	case a > 3*quarterPi:
		return 4
	case a > 2*quarterPi:
		return 3
	case a > quarterPi:
		return 2
	case a > 0:
		return 1
	case a > -quarterPi:
		return 8
	case a > -2*quarterPi:
		return 7
	case a > -3*quarterPi:
		return 6
	default:
		return 5
	}
}

// DeltaBrick returns the signed unit cell step for a ray heading at angle a,
// one value per quadrant of a normalized to [0, 2π).
func DeltaBrick(a float64) Vec2[int] {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	switch {
	case a < math.Pi/2:
		return Vec2[int]{X: 1, Y: 1}
	case a < math.Pi:
		return Vec2[int]{X: -1, Y: 1}
	case a < 3*math.Pi/2:
		return Vec2[int]{X: -1, Y: -1}
	default:
		return Vec2[int]{X: 1, Y: -1}
	}
}
