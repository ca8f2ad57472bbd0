package cell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbcell/pdb/cell"
	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

func TestParseTriplet(t *testing.T) {
	op, err := cell.ParseTriplet("-x,y+1/2,-z")
	require.NoError(t, err)
	assert.Equal(t, cmmn.Mat33{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, op.Mat)
	assert.Equal(t, cmmn.Vec3{Y: 0.5}, op.Vec)

	op, err = cell.ParseTriplet(" X-Y, -y , 1/3-z")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, -1, 0}, op.Mat[0])
	assert.InDelta(t, 1./3, op.Vec.Z, 1e-12)
}

func TestTripletRoundTrip(t *testing.T) {
	for _, s := range []string{"x,y,z", "-x,y+1/2,-z", "x-y,-y,-z+2/3", "y+1/2,-x+1/2,z+3/4", "-x+y,-x,z+5/6"} {
		op, err := cell.ParseTriplet(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, cell.Triplet(op))
	}
}

func TestTripletErrors(t *testing.T) {
	for _, s := range []string{"x,y", "x,y,q", "x,y,1/0", "x,,z", "x,y,z-"} {
		_, err := cell.ParseTriplet(s)
		assert.ErrorIs(t, err, cell.ErrTriplet, s)
	}
}

func sameOp(a, b cmmn.FTransform) bool {
	if !a.Mat.Approx(b.Mat, 1e-9) {
		return false
	}
	d := a.Vec.Sub(b.Vec)
	for _, x := range d.Array() {
		if math.Abs(x-math.Round(x)) > 1e-9 {
			return false
		}
	}
	return true
}

// Every table entry must form a group: the product of two operators
// is another operator, modulo a lattice translation.
func TestTableClosed(t *testing.T) {
	for _, hm := range []string{"P 1", "P 21", "C 2", "P 21 21 21", "C 2 2 21", "I 2 2 2",
		"F 2 2 2", "P 41 21 2", "P 43 21 2", "P 31 2 1", "P 32 2 1", "H 3", "H 3 2", "R 3 2",
		"P 61", "P 65", "P 63", "I 2 3", "P 21 3", "I 4 2 2", "P 41 2 2"} {
		ops, ok := cell.SpaceGroupOps(hm)
		require.True(t, ok, hm)
		assert.True(t, ops[0].IsIdentity(), hm)
		for _, a := range ops {
			assert.InDelta(t, 1, a.Mat.Det(), 1e-9, "%s %s", hm, cell.Triplet(a))
			for _, b := range ops {
				c := cmmn.FTransform{Transform: a.Transform.Combine(b.Transform)}
				found := false
				for _, o := range ops {
					if sameOp(c, o) {
						found = true
						break
					}
				}
				assert.True(t, found, "%s: %s * %s", hm, cell.Triplet(a), cell.Triplet(b))
			}
		}
	}
}

func TestUnknownGroup(t *testing.T) {
	_, ok := cell.SpaceGroupOps("P 999")
	assert.False(t, ok)
	ops, ok := cell.SpaceGroupOps("p 1 21 1")
	assert.True(t, ok)
	assert.Len(t, ops, 2)
}
