package cell_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbcell/pdb/cell"
	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

func TestDefault(t *testing.T) {
	uc := cell.New()
	assert.False(t, uc.IsCrystal())
	assert.Equal(t, 1.0, uc.Volume)
	assert.True(t, uc.Frac.IsIdentity())
	assert.True(t, math.IsNaN(uc.VolumePerImage()))
}

func TestOrthorhombic(t *testing.T) {
	uc, err := cell.NewWith(10, 20, 30, 90, 90, 90)
	require.NoError(t, err)
	assert.True(t, uc.IsCrystal())
	assert.InDelta(t, 6000, uc.Volume, 1e-9)
	assert.InDelta(t, 0.1, uc.Ar, 1e-12)
	assert.InDelta(t, 0.05, uc.Br, 1e-12)
	want := cmmn.Mat33{{0.1, 0, 0}, {0, 0.05, 0}, {0, 0, 1. / 30}}
	assert.True(t, uc.Frac.Mat.Approx(want, 1e-12), "frac %v", uc.Frac.Mat)
	p := uc.Orthogonalize(cmmn.Fractional{X: 0.5, Y: 0.5, Z: 0.5})
	assert.InDelta(t, 15, p.Z, 1e-12)
}

var triclinic = []struct{ a, b, c, al, be, ga float64 }{
	{30, 40, 50, 80, 95, 110},
	{51.2, 51.2, 120.4, 90, 90, 120},
	{77.3, 82.1, 93.4, 101.2, 99.7, 89.3},
}

func TestRoundTrip(t *testing.T) {
	for _, tt := range triclinic {
		uc, err := cell.NewWith(tt.a, tt.b, tt.c, tt.al, tt.be, tt.ga)
		require.NoError(t, err)
		prod := uc.Orth.Mat.Mul(uc.Frac.Mat)
		assert.True(t, prod.Approx(cmmn.Identity(), 1e-12), "orth*frac %v", prod)
		assert.InDelta(t, uc.Volume, uc.Orth.Mat.Det(), 1e-6*uc.Volume)
		f := cmmn.Fractional{X: 0.13, Y: -0.7, Z: 1.9}
		back := uc.Fractionalize(uc.Orthogonalize(f))
		assert.True(t, cmmn.Vec3(back).Approx(cmmn.Vec3(f), 1e-12))
		// a along x, b in the xy plane
		assert.InDelta(t, tt.a, uc.Orth.Mat[0][0], 1e-12)
		assert.Equal(t, 0.0, uc.Orth.Mat[1][0])
	}
}

func TestImpossibleAngle(t *testing.T) {
	uc, err := cell.NewWith(10, 20, 30, 90, 90, 90)
	require.NoError(t, err)
	before := *uc
	for _, angles := range [][3]float64{{0, 90, 90}, {90, 180, 90}, {90, 90, 360}} {
		err = uc.Set(10, 10, 10, angles[0], angles[1], angles[2])
		assert.True(t, errors.Is(err, cell.ErrImpossibleAngle), "angles %v", angles)
		assert.Equal(t, before, *uc, "cell must not change")
	}
}

func TestZeroGammaIgnored(t *testing.T) {
	uc, _ := cell.NewWith(10, 20, 30, 90, 90, 90)
	assert.NoError(t, uc.Set(5, 5, 5, 90, 90, 0))
	assert.Equal(t, 10.0, uc.A)
}

func TestSetMatricesFromFract(t *testing.T) {
	uc := cell.New()
	bad := cmmn.Transform{Mat: cmmn.Mat33{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
	uc.SetMatricesFromFract(bad)
	assert.False(t, uc.ExplicitMatrices, "junk SCALE on placeholder cell")

	good := cmmn.Transform{Mat: cmmn.Mat33{{0.02, 0, 0}, {0, 0.025, 0}, {0, 0, 0.01}}}
	uc.SetMatricesFromFract(good)
	assert.True(t, uc.ExplicitMatrices)
	assert.True(t, uc.Orth.Mat.Approx(cmmn.Mat33{{50, 0, 0}, {0, 40, 0}, {0, 0, 100}}, 1e-9))

	uc, _ = cell.NewWith(10, 20, 30, 90, 90, 90)
	same := uc.Frac
	same.Mat[0][0] += 1e-7
	uc.SetMatricesFromFract(same)
	assert.False(t, uc.ExplicitMatrices, "within tolerance")

	shifted := uc.Frac
	shifted.Vec.X = 0.25
	uc.SetMatricesFromFract(shifted)
	assert.True(t, uc.ExplicitMatrices)
	p := uc.Orthogonalize(cmmn.Fractional{X: 0.25, Y: 0, Z: 0})
	assert.InDelta(t, 0, p.X, 1e-9)

	// parameters change, explicit matrices stay
	require.NoError(t, uc.Set(40, 40, 40, 90, 90, 90))
	assert.InDelta(t, 64000, uc.Volume, 1e-6)
	assert.Equal(t, shifted, uc.Frac)
}

func TestIsCrystalHeuristic(t *testing.T) {
	uc := cell.New()
	uc.SetMatricesFromFract(cmmn.Transform{Mat: cmmn.Mat33{{0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5}}})
	assert.False(t, uc.IsCrystal(), "a is still 1")
}
