package cell

import (
	"math"
	"strconv"

	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

// SymImage says which copies of an atom may be considered when
// looking for the nearest one.
type SymImage byte

const (
	Unspecified SymImage = iota // any copy
	Same                        // only the one given, no lattice or symmetry
	Different                   // anything but the one given
)

// DefaultSpecialDist is the usual cut-off for IsSpecialPosition, Å.
const DefaultSpecialDist = 0.8

// NearbyImage is the result of FindNearestImage. SymID 0 is the
// identity, n is Images[n-1]. Box is the lattice translation applied
// after the operator.
type NearbyImage struct {
	DistSq float64
	Box    [3]int
	SymID  int
}

func (n NearbyImage) Dist() float64 { return math.Sqrt(n.DistSq) }

// SameImage is true for the identity with no lattice shift.
func (n NearbyImage) SameImage() bool {
	return n.Box == [3]int{} && n.SymID == 0
}

// SymCode gives the PDB style operator label, like 1_555 or 3655.
func (n NearbyImage) SymCode(underscore bool) string {
	nnn := []byte("555")
	for i := range nnn {
		nnn[i] += byte(n.Box[i])
	}
	s := strconv.Itoa(n.SymID + 1)
	if underscore {
		s += "_"
	}
	return s + string(nnn)
}

// searchPbc shifts diff by the nearest lattice vector and keeps it if
// it beats what img already has.
func (uc *UnitCell) searchPbc(diff cmmn.Fractional, img *NearbyImage) bool {
	box := [3]int{
		int(math.Round(diff.X)),
		int(math.Round(diff.Y)),
		int(math.Round(diff.Z)),
	}
	diff.X -= float64(box[0])
	diff.Y -= float64(box[1])
	diff.Z -= float64(box[2])
	dsq := uc.Orthogonalize(diff).LengthSq()
	if dsq < img.DistSq {
		img.DistSq = dsq
		img.Box = box
		return true
	}
	return false
}

// FindNearestImage returns the copy of pos closest to ref. Without a
// crystal, or with mode Same, only the plain distance is considered.
// A distance of exactly zero to the untouched copy counts as "the
// same atom" and is reported as +Inf so it never wins.
func (uc *UnitCell) FindNearestImage(ref, pos cmmn.Position, mode SymImage) NearbyImage {
	img := NearbyImage{DistSq: ref.DistSq(pos)}
	if mode == Same || !uc.IsCrystal() {
		if mode == Different || img.DistSq == 0 {
			img.DistSq = math.Inf(1)
		}
		return img
	}
	fpos := uc.Fractionalize(pos)
	fref := uc.Fractionalize(ref)
	uc.searchPbc(fpos.Sub(fref), &img)
	if (mode == Different || img.DistSq == 0) && img.Box == [3]int{} {
		img.DistSq = math.Inf(1)
	}
	for n, op := range uc.Images {
		if uc.searchPbc(op.Apply(fpos).Sub(fref), &img) {
			img.SymID = n + 1
		}
	}
	return img
}

// IsSpecialPosition counts the symmetry mates of pos that land within
// maxDist of it. Zero means a general position, 3 could be a 4-fold
// axis. Lattice translations are not considered.
func (uc *UnitCell) IsSpecialPosition(pos cmmn.Position, maxDist float64) int {
	maxSq := maxDist * maxDist
	fpos := uc.Fractionalize(pos)
	n := 0
	for _, op := range uc.Images {
		if uc.Orthogonalize(op.Apply(fpos).Sub(fpos)).LengthSq() < maxSq {
			n++
		}
	}
	return n
}
