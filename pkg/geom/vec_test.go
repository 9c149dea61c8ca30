package geom

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3.0, 4.0)
	b := V(1.0, -2.0)

	if got := a.Add(b); got != V(4.0, 2.0) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != V(2.0, 6.0) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V(6.0, 8.0) {
		t.Fatalf("Scale = %v", got)
	}
	if got := a.Div(2); got != V(1.5, 2.0) {
		t.Fatalf("Div = %v", got)
	}
	if got := a.Mul(b); got != V(3.0, -8.0) {
		t.Fatalf("Mul = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Fatalf("Dot = %v", got)
	}
	if got := a.Cross(b); got != 3*-2-4*1 {
		t.Fatalf("Cross = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Fatalf("Len = %v", got)
	}
	if got := a.SqrLen(); got != 25 {
		t.Fatalf("SqrLen = %v", got)
	}
}

func TestVecAssignForms(t *testing.T) {
	v := V(1, 2)
	v.AddAssign(V(3, 4))
	if v != V(4, 6) {
		t.Fatalf("AddAssign = %v", v)
	}
	v.SubAssign(V(1, 1))
	if v != V(3, 5) {
		t.Fatalf("SubAssign = %v", v)
	}
}

func TestNormalized(t *testing.T) {
	n, ok := V(0.0, -2.5).Normalized()
	if !ok || !n.ApproxEqual(V(0.0, -1.0)) {
		t.Fatalf("Normalized = %v, %v", n, ok)
	}
	if _, ok := V(0, 0).Normalized(); ok {
		t.Fatal("zero vector must not normalize")
	}
	n, ok = V(3, 4).Normalized()
	if !ok || math.Abs(n.Len()-1) > 1e-12 {
		t.Fatalf("integer Normalized = %v", n)
	}
}

func TestApproxEqualUsesBothCoordinates(t *testing.T) {
	a := V(1.0, 1.0)
	if !a.ApproxEqual(V(1+1e-9, 1-1e-9)) {
		t.Fatal("values within epsilon must compare equal")
	}
	if a.ApproxEqual(V(1.0, 1+1e-7)) {
		t.Fatal("y outside epsilon must not compare equal")
	}
	if a.ApproxEqual(V(1+1e-7, 1.0)) {
		t.Fatal("x outside epsilon must not compare equal")
	}
}

func TestConvertTruncatesTowardZero(t *testing.T) {
	got := Convert[int](V(2.9, -2.9))
	if got != V(2, -2) {
		t.Fatalf("Convert = %v, want (2,-2)", got)
	}
	back := Convert[float64](got)
	if back != V(2.0, -2.0) {
		t.Fatalf("Convert back = %v", back)
	}
	if f := Floor(V(2.9, -2.1)); f != V(2, -3) {
		t.Fatalf("Floor = %v", f)
	}
}
