package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the per-coordinate tolerance used by ApproxEqual.
const Epsilon = 1e-8

// Number is the set of element types a Vec2 can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a two-component value. Methods return new values except the
// *Assign forms.
type Vec2[T Number] struct {
	X, Y T
}

// V constructs a Vec2.
func V[T Number](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// Splat returns a vector with both coordinates set to n.
func Splat[T Number](n T) Vec2[T] { return Vec2[T]{X: n, Y: n} }

// Convert changes the element type. Float to integer conversion truncates
// toward zero.
func Convert[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{X: v.X * s, Y: v.Y * s} }
func (v Vec2[T]) Div(s T) Vec2[T]       { return Vec2[T]{X: v.X / s, Y: v.Y / s} }

// Mul multiplies coordinate by coordinate.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y} }

func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product, x1*y2 - y1*x2.
func (v Vec2[T]) Cross(o Vec2[T]) T { return v.X*o.Y - v.Y*o.X }

func (v Vec2[T]) SqrLen() T { return v.X*v.X + v.Y*v.Y }

func (v Vec2[T]) Len() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Sqrt(x*x + y*y)
}

// Normalized returns the unit vector pointing along v. ok is false for the
// zero vector, in which case the returned value must not be used.
func (v Vec2[T]) Normalized() (Vec2[float64], bool) {
	l := v.Len()
	if l == 0 {
		return Vec2[float64]{}, false
	}
	return Vec2[float64]{X: float64(v.X) / l, Y: float64(v.Y) / l}, true
}

// ApproxEqual reports whether both coordinates differ by less than Epsilon.
func (v Vec2[T]) ApproxEqual(o Vec2[T]) bool {
	return math.Abs(float64(v.X)-float64(o.X)) < Epsilon &&
		math.Abs(float64(v.Y)-float64(o.Y)) < Epsilon
}

func (v *Vec2[T]) AddAssign(o Vec2[T]) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vec2[T]) SubAssign(o Vec2[T]) {
	v.X -= o.X
	v.Y -= o.Y
}

// Floor returns the integer cell containing a float position.
func Floor(v Vec2[float64]) Vec2[int] {
	return Vec2[int]{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Dir returns the unit vector for an angle in radians.
func Dir(angle float64) Vec2[float64] {
	return Vec2[float64]{X: math.Cos(angle), Y: math.Sin(angle)}
}
