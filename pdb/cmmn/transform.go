package cmmn

import (
	"math"
)

// Mat33 is stored row major, m[row][col].
type Mat33 [3][3]float64

// Identity returns the unit matrix.
func Identity() Mat33 {
	return Mat33{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec multiplies m by a column vector.
func (m Mat33) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns m * n.
func (m Mat33) Mul(n Mat33) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

func (m Mat33) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse uses the adjugate. A singular matrix gives Inf/NaN entries,
// which is what the caller gets for asking.
func (m Mat33) Inverse() Mat33 {
	inv := 1 / m.Det()
	var r Mat33
	r[0][0] = inv * (m[1][1]*m[2][2] - m[2][1]*m[1][2])
	r[0][1] = inv * (m[0][2]*m[2][1] - m[0][1]*m[2][2])
	r[0][2] = inv * (m[0][1]*m[1][2] - m[0][2]*m[1][1])
	r[1][0] = inv * (m[1][2]*m[2][0] - m[1][0]*m[2][2])
	r[1][1] = inv * (m[0][0]*m[2][2] - m[0][2]*m[2][0])
	r[1][2] = inv * (m[1][0]*m[0][2] - m[0][0]*m[1][2])
	r[2][0] = inv * (m[1][0]*m[2][1] - m[2][0]*m[1][1])
	r[2][1] = inv * (m[2][0]*m[0][1] - m[0][0]*m[2][1])
	r[2][2] = inv * (m[0][0]*m[1][1] - m[1][0]*m[0][1])
	return r
}

// Approx compares element by element.
func (m Mat33) Approx(o Mat33, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-o[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// Transform is an affine map, x' = Mat*x + Vec.
type Transform struct {
	Mat Mat33
	Vec Vec3
}

// IdentityTransform leaves everything where it is.
func IdentityTransform() Transform {
	return Transform{Mat: Identity()}
}

func (t Transform) Apply(v Vec3) Vec3 { return t.Mat.MulVec(v).Add(t.Vec) }

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	mi := t.Mat.Inverse()
	return Transform{Mat: mi, Vec: mi.MulVec(t.Vec).Scale(-1)}
}

// Combine returns the transform applying b first, then t.
func (t Transform) Combine(b Transform) Transform {
	return Transform{Mat: t.Mat.Mul(b.Mat), Vec: t.Apply(b.Vec)}
}

// Approx uses separate tolerances for the matrix and the translation.
func (t Transform) Approx(o Transform, matEps, vecEps float64) bool {
	return t.Mat.Approx(o.Mat, matEps) && t.Vec.Approx(o.Vec, vecEps)
}

// IsIdentity is an exact test.
func (t Transform) IsIdentity() bool {
	return t.Mat == Identity() && t.Vec == Vec3{}
}

// FTransform is a transform acting on fractional coordinates, such
// as a crystallographic symmetry operator.
type FTransform struct {
	Transform
}

// Apply maps a fractional coordinate to another fractional coordinate.
func (ft FTransform) Apply(f Fractional) Fractional {
	return Fractional(ft.Transform.Apply(Vec3(f)))
}
