package stage

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func TestIdentityApply(t *testing.T) {
	x, y := Identity().Apply(3, 4)
	approx(t, x, 3, "x")
	approx(t, y, 4, "y")
}

func TestLocalToGlobalTranslation(t *testing.T) {
	n := NewContainer("n")
	n.X, n.Y = 5, 5
	x, y := n.LocalToGlobal(0, 0)
	approx(t, x, 5, "x")
	approx(t, y, 5, "y")
}

func TestLocalToGlobalScale(t *testing.T) {
	n := NewContainer("n")
	n.ScaleX, n.ScaleY = 2, 3
	x, y := n.LocalToGlobal(3, 4)
	approx(t, x, 6, "x")
	approx(t, y, 12, "y")
}

func TestLocalToGlobalRotation(t *testing.T) {
	n := NewContainer("n")
	n.Rotation = math.Pi / 2
	x, y := n.LocalToGlobal(1, 0)
	approx(t, x, 0, "x")
	approx(t, y, 1, "y")
}

func TestLocalToGlobalRegistration(t *testing.T) {
	n := NewContainer("n")
	n.X, n.Y = 10, 10
	n.RegX, n.RegY = 2, 3
	x, y := n.LocalToGlobal(0, 0)
	approx(t, x, 8, "x")
	approx(t, y, 7, "y")
}

func TestLocalToGlobalNested(t *testing.T) {
	parent := NewContainer("parent")
	parent.X, parent.Y = 10, 10
	parent.ScaleX, parent.ScaleY = 2, 2
	child := NewContainer("child")
	child.X, child.Y = 5, 5
	parent.AddChild(child)

	x, y := child.LocalToGlobal(0, 0)
	approx(t, x, 20, "x")
	approx(t, y, 20, "y")
}

func TestGlobalToLocalRoundTrip(t *testing.T) {
	parent := NewContainer("parent")
	parent.X, parent.Y = 7, -3
	parent.Rotation = 0.3
	child := NewContainer("child")
	child.X, child.Y = 2, 9
	child.ScaleX, child.ScaleY = 1.5, 0.5
	child.SkewX = 0.1
	parent.AddChild(child)

	gx, gy := child.LocalToGlobal(4, -2)
	lx, ly := child.GlobalToLocal(gx, gy)
	approx(t, lx, 4, "lx")
	approx(t, ly, -2, "ly")
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	m := Matrix{} // determinant 0
	inv := m.Invert()
	if inv != Identity() {
		t.Errorf("Invert(singular) = %+v, want identity", inv)
	}
}

func TestMulComposesInOrder(t *testing.T) {
	// Translate(10, 0) after Scale(2, 2): point (1, 1) -> (12, 2).
	m := translation(10, 0).Mul(scaling(2, 2))
	x, y := m.Apply(1, 1)
	approx(t, x, 12, "x")
	approx(t, y, 2, "y")
}
