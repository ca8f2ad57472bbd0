// Package cell describes a crystallographic unit cell. It converts
// between orthogonal and fractional coordinates and finds the nearest
// symmetry image of one atom with respect to another.
package cell

import (
	"errors"
	"fmt"
	"math"

	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

// ErrImpossibleAngle comes back from Set when an angle has a sine of
// zero.
var ErrImpossibleAngle = errors.New("impossible angle - N*180deg")

// Tolerances when a SCALE matrix is compared with the one we derive
// from the cell parameters.
const (
	scaleMatEps = 5e-6
	scaleVecEps = 1e-6
)

// UnitCell holds the six parameters and the quantities derived from
// them. Images are the non-identity symmetry operators of the space
// group, in fractional space.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64 // degrees

	Orth cmmn.Transform // fractional -> orthogonal
	Frac cmmn.Transform // orthogonal -> fractional

	Volume     float64
	Ar, Br, Cr float64 // reciprocal lengths

	CosAlphar, CosBetar, CosGammar float64

	// ExplicitMatrices is set once Frac came from a SCALE record
	// rather than from the parameters.
	ExplicitMatrices bool

	Images []cmmn.FTransform
}

// New returns the placeholder cell: unit edges, right angles and
// identity matrices. It is not a crystal.
func New() *UnitCell {
	return &UnitCell{
		A: 1, B: 1, C: 1,
		Alpha: 90, Beta: 90, Gamma: 90,
		Orth:   cmmn.IdentityTransform(),
		Frac:   cmmn.IdentityTransform(),
		Volume: 1,
		Ar:     1, Br: 1, Cr: 1,
	}
}

// NewWith builds a cell from its parameters.
func NewWith(a, b, c, alpha, beta, gamma float64) (*UnitCell, error) {
	uc := New()
	if err := uc.Set(a, b, c, alpha, beta, gamma); err != nil {
		return nil, err
	}
	return uc, nil
}

// cosSin snaps the two angles where rounding matters. At exactly 90
// degrees we want cos == 0, at multiples of 180 we want sin == 0 so
// that those cells get rejected.
func cosSin(deg float64) (float64, float64) {
	if deg == 90 {
		return 0, 1
	}
	if math.Mod(deg, 180) == 0 {
		if math.Mod(deg, 360) == 0 {
			return 1, 0
		}
		return -1, 0
	}
	rad := deg * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// Set stores new parameters and recalculates everything derived
// from them. A gamma of zero means the caller has nothing to set, so
// the call is ignored. If an angle is impossible, the cell is left as
// it was.
func (uc *UnitCell) Set(a, b, c, alpha, beta, gamma float64) error {
	if gamma == 0 {
		return nil
	}
	tmp := *uc
	tmp.A, tmp.B, tmp.C = a, b, c
	tmp.Alpha, tmp.Beta, tmp.Gamma = alpha, beta, gamma
	if err := tmp.calculateProperties(); err != nil {
		return err
	}
	*uc = tmp
	return nil
}

func (uc *UnitCell) calculateProperties() error {
	cosA, sinA := cosSin(uc.Alpha)
	cosB, sinB := cosSin(uc.Beta)
	cosG, sinG := cosSin(uc.Gamma)
	for _, x := range []struct{ s, deg float64 }{{sinA, uc.Alpha}, {sinB, uc.Beta}, {sinG, uc.Gamma}} {
		if x.s == 0 {
			return fmt.Errorf("%w (angle %g)", ErrImpossibleAngle, x.deg)
		}
	}
	uc.Volume = uc.A * uc.B * uc.C *
		math.Sqrt(1-cosA*cosA-cosB*cosB-cosG*cosG+2*cosA*cosB*cosG)

	uc.Ar = uc.B * uc.C * sinA / uc.Volume
	uc.Br = uc.A * uc.C * sinB / uc.Volume
	uc.Cr = uc.A * uc.B * sinG / uc.Volume

	cosAlpharSinBeta := (cosB*cosG - cosA) / sinG
	uc.CosAlphar = cosAlpharSinBeta / sinB
	uc.CosBetar = (cosA*cosG - cosB) / (sinA * sinG)
	uc.CosGammar = (cosA*cosB - cosG) / (sinA * sinB)

	if uc.ExplicitMatrices {
		return nil
	}

	sinAlphar := math.Sqrt(1 - uc.CosAlphar*uc.CosAlphar)
	a, b, c := uc.A, uc.B, uc.C
	orth := cmmn.Mat33{
		{a, b * cosG, c * cosB},
		{0, b * sinG, -c * cosAlpharSinBeta},
		{0, 0, c * sinB * sinAlphar},
	}
	o12 := -cosG / (sinG * a)
	o13 := -(cosG*cosAlpharSinBeta + cosB*sinG) / (sinAlphar * sinB * sinG * a)
	o23 := uc.CosAlphar / (sinAlphar * sinG * b)
	frac := cmmn.Mat33{
		{1 / a, o12, o13},
		{0, 1 / orth[1][1], o23},
		{0, 0, 1 / orth[2][2]},
	}
	uc.Orth = cmmn.Transform{Mat: orth}
	uc.Frac = cmmn.Transform{Mat: frac}
	return nil
}

// SetMatricesFromFract takes a fractionalization matrix from a file
// (SCALE records). It is ignored if it agrees with what we already
// have, or if we only have the placeholder cell and the new matrix
// looks like nonsense.
func (uc *UnitCell) SetMatricesFromFract(f cmmn.Transform) {
	if f.Approx(uc.Frac, scaleMatEps, scaleVecEps) {
		return
	}
	if uc.Frac.Mat[0][0] == 1.0 && (f.Mat[0][0] == 0.0 || f.Mat[0][0] > 1.0) {
		return
	}
	uc.Frac = f
	uc.Orth = f.Inverse()
	uc.ExplicitMatrices = true
}

// IsCrystal is false for the placeholder cell. Some files have a
// CRYST1 of 1 1 1 and others only have a SCALE matrix, so both the
// edge and the matrix are checked.
func (uc *UnitCell) IsCrystal() bool {
	return uc.A != 1.0 && uc.Frac.Mat[0][0] != 1.0
}

// Orthogonalize converts fractional to Å.
func (uc *UnitCell) Orthogonalize(f cmmn.Fractional) cmmn.Position {
	return cmmn.Position(uc.Orth.Apply(cmmn.Vec3(f)))
}

// Fractionalize converts Å to fractional.
func (uc *UnitCell) Fractionalize(p cmmn.Position) cmmn.Fractional {
	return cmmn.Fractional(uc.Frac.Apply(cmmn.Vec3(p)))
}

// VolumePerImage is the cell volume shared out over the identity and
// the images. NaN when there is no crystal.
func (uc *UnitCell) VolumePerImage() float64 {
	if !uc.IsCrystal() {
		return math.NaN()
	}
	return uc.Volume / float64(1+len(uc.Images))
}

// SetImages stores the non-identity operators from ops.
func (uc *UnitCell) SetImages(ops []cmmn.FTransform) {
	uc.Images = uc.Images[:0]
	for _, op := range ops {
		if !op.IsIdentity() {
			uc.Images = append(uc.Images, op)
		}
	}
}

// String is for humans.
func (uc *UnitCell) String() string {
	return fmt.Sprintf("%.3f %.3f %.3f %.2f %.2f %.2f",
		uc.A, uc.B, uc.C, uc.Alpha, uc.Beta, uc.Gamma)
}
