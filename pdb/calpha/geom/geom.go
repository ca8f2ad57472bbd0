// Package geom calculates some geometries, lengths and angles.
// Angles are in radians.
package geom

import (
	"math"

	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

const (
	mindist    = 2.6
	mindist2   = mindist * mindist
	maxdist    = 4.1 // max dist for c_alpha to c_alpha
	maxdist2   = maxdist * maxdist
	Brokendist = -99
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrTooBig   = Error("too big")
	ErrTooSmall = Error("too small")
	ErrBadAngle = Error("Broken angle")
	ErrColinear = Error("points on a line")
)

// xyzhelper makes the code below a bit more compact. Returns distance
// squared in one dimension or an error if it is bigger than our limit.
func xyzhelper(r1, r2 float64) (float64, error) {
	r := r1 - r2
	r = r * r
	if r >= maxdist2 {
		return r, ErrTooBig
	}
	return r, nil
}

// CaDist gets the distance between two alpha carbons, but if it is
// bigger than maxdist or smaller than mindist, it returns an error.
// The check is done one axis at a time so most far apart pairs are
// thrown out early.
func CaDist(x1, x2 cmmn.Position) (float64, error) {
	var xd, yd, zd float64
	var err error
	if xd, err = xyzhelper(x1.X, x2.X); err != nil {
		return Brokendist, err
	}
	if yd, err = xyzhelper(x1.Y, x2.Y); err != nil {
		return Brokendist, err
	}
	if zd, err = xyzhelper(x1.Z, x2.Z); err != nil {
		return Brokendist, err
	}
	r := xd + yd + zd
	if r <= mindist2 {
		return Brokendist, ErrTooSmall
	}
	if r >= maxdist2 {
		return Brokendist, ErrTooBig
	}
	return math.Sqrt(r), nil
}

// Dist has no limits.
func Dist(x1, x2 cmmn.Position) float64 { return x1.Dist(x2) }

// xyzDiff gets the difference of two vectors
func xyzDiff(start, end cmmn.Position) cmmn.Vec3 {
	return cmmn.Vec3(end.Sub(start))
}

// Angle takes three points and returns the angle at the middle one.
func Angle(a, b, c cmmn.Position) (float64, error) {
	x1 := xyzDiff(b, a)
	x2 := xyzDiff(b, c)
	cosalpha := x1.Dot(x2) / (x1.Length() * x2.Length())
	if cosalpha > 1 && cosalpha < 1.01 { // numerical noise
		return 0.0, nil
	}
	if cosalpha < -1 && cosalpha > -1.01 {
		return math.Pi, nil
	}
	if cosalpha < -1 || cosalpha > 1 || math.IsNaN(cosalpha) {
		return math.NaN(), ErrBadAngle
	}
	return math.Acos(cosalpha), nil
}

// Dihedral takes four points and returns the dihedral angle in the
// range -pi to pi. It fails if three of the points are on a line.
func Dihedral(ii, jj, kk, ll cmmn.Position) (float64, error) {
	rij := xyzDiff(ii, jj)
	rkj := xyzDiff(kk, jj)
	rkl := xyzDiff(kk, ll)
	lkj := rkj.LengthSq()
	if lkj == 0 {
		return math.NaN(), ErrColinear
	}
	rim := rij.Sub(rkj.Scale(rij.Dot(rkj) / lkj))
	rln := rkj.Scale(rkl.Dot(rkj) / lkj).Sub(rkl)
	den := rim.Length() * rln.Length()
	if den == 0 {
		return math.NaN(), ErrColinear
	}
	var tau float64
	tCos := rim.Dot(rln) / den
	switch {
	case tCos > 1: // Numerical errors can catch us. If so, no need
		tau = 0 // to call acos()
	case tCos < -1:
		tau = math.Pi
	default:
		tau = math.Acos(tCos)
	}
	if rij.Dot(rkj.Cross(rkl)) >= 0 {
		return tau, nil
	}
	return -tau, nil
}
