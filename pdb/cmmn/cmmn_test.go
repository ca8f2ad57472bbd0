package cmmn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/andrew-torda/pdbcell/pdb/cmmn"
)

var wraptests = []struct {
	in, out Fractional
}{
	{Fractional{X: 0.25, Y: 0.5, Z: 0.75}, Fractional{X: 0.25, Y: 0.5, Z: 0.75}},
	{Fractional{X: 1.25, Y: -0.25, Z: 2}, Fractional{X: 0.25, Y: 0.75, Z: 0}},
	{Fractional{X: -1, Y: -3.5, Z: 0}, Fractional{X: 0, Y: 0.5, Z: 0}},
}

func TestWrapToUnit(t *testing.T) {
	for _, tt := range wraptests {
		f := tt.in
		got := f.WrapToUnit()
		assert.InDelta(t, tt.out.X, f.X, 1e-12, "in place %v", tt.in)
		assert.InDelta(t, tt.out.Y, f.Y, 1e-12)
		assert.InDelta(t, tt.out.Z, f.Z, 1e-12)
		assert.Equal(t, f, got)
	}
}

func TestMoveTowardZeroByOne(t *testing.T) {
	f := Fractional{X: 0.7, Y: -0.7, Z: 0.5}
	f.MoveTowardZeroByOne()
	assert.InDelta(t, -0.3, f.X, 1e-12)
	assert.InDelta(t, 0.3, f.Y, 1e-12)
	assert.Equal(t, 0.5, f.Z, "0.5 is left alone")
}

func TestInverse(t *testing.T) {
	tr := Transform{
		Mat: Mat33{{2, 1, 0}, {0, 3, 1}, {1, 0, 4}},
		Vec: Vec3{X: 1, Y: -2, Z: 0.5},
	}
	v := Vec3{X: 0.3, Y: -7, Z: 11}
	back := tr.Inverse().Apply(tr.Apply(v))
	assert.True(t, back.Approx(v, 1e-9), "got %v want %v", back, v)
	assert.True(t, tr.Inverse().Inverse().Approx(tr, 1e-9, 1e-9))
	assert.True(t, tr.Combine(tr.Inverse()).Approx(IdentityTransform(), 1e-12, 1e-12))
}

func TestIdentity(t *testing.T) {
	assert.True(t, IdentityTransform().IsIdentity())
	tr := IdentityTransform()
	tr.Vec.Y = 1e-9
	assert.False(t, tr.IsIdentity())
	assert.True(t, tr.Approx(IdentityTransform(), 0, 1e-6))
	assert.False(t, tr.Approx(IdentityTransform(), 0, 1e-10))
}

func TestFTransform(t *testing.T) {
	ft := FTransform{Transform: Transform{Mat: Mat33{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, Vec: Vec3{X: 0, Y: 0.5, Z: 0}}}
	got := ft.Apply(Fractional{X: 0.1, Y: 0.2, Z: 0.3})
	assert.True(t, Vec3(got).Approx(Vec3{X: -0.1, Y: 0.7, Z: -0.3}, 1e-12))
}

func TestPosition(t *testing.T) {
	p := Position{X: 1, Y: 2, Z: 3}
	q := Position{X: 4, Y: 6, Z: 3}
	assert.Equal(t, 25.0, p.DistSq(q))
	assert.Equal(t, 5.0, p.Dist(q))
	assert.Equal(t, 5.0, math.Sqrt(q.Sub(p).LengthSq()))
	c := Vec3{X: 1, Y: 0, Z: 0}.Cross(Vec3{X: 0, Y: 1, Z: 0})
	assert.Equal(t, Vec3{X: 0, Y: 0, Z: 1}, c)
}
