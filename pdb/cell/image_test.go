package cell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbcell/pdb/cell"
	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

func cubic(t *testing.T, a float64) *cell.UnitCell {
	uc, err := cell.NewWith(a, a, a, 90, 90, 90)
	require.NoError(t, err)
	return uc
}

func TestNoCrystal(t *testing.T) {
	uc := cell.New()
	p := cmmn.Position{X: 1, Y: 2, Z: 3}
	q := cmmn.Position{X: 4, Y: 6, Z: 3}
	assert.Equal(t, 25.0, uc.FindNearestImage(p, q, cell.Unspecified).DistSq)
	assert.True(t, math.IsInf(uc.FindNearestImage(p, p, cell.Unspecified).DistSq, 1))
	assert.True(t, math.IsInf(uc.FindNearestImage(p, q, cell.Different).DistSq, 1))
	assert.True(t, uc.FindNearestImage(p, q, cell.Same).SameImage())
}

func TestLattice(t *testing.T) {
	uc := cubic(t, 10)
	img := uc.FindNearestImage(cmmn.Position{X: 1, Y: 1, Z: 1}, cmmn.Position{X: 9, Y: 1, Z: 1}, cell.Unspecified)
	assert.InDelta(t, 4, img.DistSq, 1e-9)
	assert.InDelta(t, 2, img.Dist(), 1e-9)
	assert.Equal(t, [3]int{1, 0, 0}, img.Box)
	assert.Equal(t, "1_655", img.SymCode(true))

	img = uc.FindNearestImage(cmmn.Position{X: 1, Y: 1, Z: 1}, cmmn.Position{X: 9, Y: 1, Z: 1}, cell.Same)
	assert.InDelta(t, 64, img.DistSq, 1e-9)

	img = uc.FindNearestImage(cmmn.Position{X: 1, Y: 1, Z: 1}, cmmn.Position{X: 1, Y: 1, Z: 1}, cell.Unspecified)
	assert.True(t, math.IsInf(img.DistSq, 1), "same atom")
	img = uc.FindNearestImage(cmmn.Position{X: 1, Y: 1, Z: 1}, cmmn.Position{X: 2, Y: 1, Z: 1}, cell.Different)
	assert.True(t, math.IsInf(img.DistSq, 1), "no images and the identity is excluded")
}

func TestTranslationImage(t *testing.T) {
	uc := cubic(t, 10)
	op, err := cell.ParseTriplet("x+1/2,y,z")
	require.NoError(t, err)
	uc.SetImages([]cmmn.FTransform{op})
	img := uc.FindNearestImage(cmmn.Position{X: 6, Y: 1, Z: 1}, cmmn.Position{X: 1, Y: 1, Z: 1}, cell.Unspecified)
	assert.Equal(t, 1, img.SymID)
	assert.Equal(t, [3]int{}, img.Box)
	assert.InDelta(t, 0, img.DistSq, 1e-9)
	assert.False(t, img.SameImage())
	assert.Equal(t, "2555", img.SymCode(false))
}

func TestSymCode(t *testing.T) {
	n := cell.NearbyImage{Box: [3]int{1, -1, 0}, SymID: 2}
	assert.Equal(t, "3_645", n.SymCode(true))
	assert.Equal(t, "3645", n.SymCode(false))
}

func TestSpecialPosition(t *testing.T) {
	uc, err := cell.NewWith(40, 40, 60, 90, 90, 90)
	require.NoError(t, err)
	ops, ok := cell.SpaceGroupOps("P 4")
	require.True(t, ok)
	uc.SetImages(ops)
	require.Len(t, uc.Images, 3)
	assert.Equal(t, 3, uc.IsSpecialPosition(cmmn.Position{X: 0, Y: 0, Z: 7}, cell.DefaultSpecialDist))
	assert.Equal(t, 3, uc.IsSpecialPosition(cmmn.Position{X: 0.2, Y: 0.1, Z: 5}, cell.DefaultSpecialDist))
	assert.Equal(t, 0, uc.IsSpecialPosition(cmmn.Position{X: 11, Y: 3, Z: 5}, cell.DefaultSpecialDist))
	assert.InDelta(t, 40*40*60/4., uc.VolumePerImage(), 1e-6)
}

func TestSymmetryMate(t *testing.T) {
	uc, err := cell.NewWith(50, 60, 70, 90, 90, 90)
	require.NoError(t, err)
	ops, ok := cell.SpaceGroupOps("P 21 21 21")
	require.True(t, ok)
	uc.SetImages(ops)
	ref := cmmn.Position{X: 5, Y: 6, Z: 7}
	// -x+1/2,-y,z+1/2 applied to ref, then one cell along -x
	f := uc.Fractionalize(ref)
	mate := cmmn.Fractional{X: -f.X + 0.5 - 1, Y: -f.Y, Z: f.Z + 0.5}
	pos := uc.Orthogonalize(mate)
	pos.X += 0.5
	img := uc.FindNearestImage(ref, pos, cell.Different)
	assert.LessOrEqual(t, img.Dist(), 0.5+1e-9)
	assert.NotEqual(t, 0, img.SymID)
}
