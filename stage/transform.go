package stage

import "math"

// Matrix is a 2D affine transform:
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0   1 |
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mul returns m * o: the transform that applies o first, then m.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A:  m.A*o.A + m.C*o.B,
		B:  m.B*o.A + m.D*o.B,
		C:  m.A*o.C + m.C*o.D,
		D:  m.B*o.C + m.D*o.D,
		TX: m.A*o.TX + m.C*o.TY + m.TX,
		TY: m.B*o.TX + m.D*o.TY + m.TY,
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// Invert returns the inverse matrix, or the identity if m is singular.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.C*m.B
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	return Matrix{
		A: a, B: b, C: c, D: d,
		TX: -(a*m.TX + c*m.TY),
		TY: -(b*m.TX + d*m.TY),
	}
}

func translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, TX: tx, TY: ty}
}

func scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

func rotation(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

func skewing(kx, ky float64) Matrix {
	return Matrix{A: 1, B: math.Tan(ky), C: math.Tan(kx), D: 1}
}

// localMatrix composes the node's transform properties:
//
//	Translate(X, Y) * Rotate * Skew * Scale * Translate(-RegX, -RegY)
//
// Computed on demand; there is no dirty-flag caching.
func (n *Node) localMatrix() Matrix {
	m := translation(n.X, n.Y)
	if n.Rotation != 0 {
		m = m.Mul(rotation(n.Rotation))
	}
	if n.SkewX != 0 || n.SkewY != 0 {
		m = m.Mul(skewing(n.SkewX, n.SkewY))
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		m = m.Mul(scaling(n.ScaleX, n.ScaleY))
	}
	if n.RegX != 0 || n.RegY != 0 {
		m = m.Mul(translation(-n.RegX, -n.RegY))
	}
	return m
}

// GlobalMatrix returns the node's local-to-global transform, composed from
// the node's own local matrix and every ancestor's.
func (n *Node) GlobalMatrix() Matrix {
	m := n.localMatrix()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.localMatrix().Mul(m)
	}
	return m
}

// LocalToGlobal converts a point in this node's local space to stage space.
func (n *Node) LocalToGlobal(x, y float64) (gx, gy float64) {
	return n.GlobalMatrix().Apply(x, y)
}

// GlobalToLocal converts a point in stage space to this node's local space.
func (n *Node) GlobalToLocal(x, y float64) (lx, ly float64) {
	return n.GlobalMatrix().Invert().Apply(x, y)
}
