// Package calpha gets some statistics about alpha carbons and the
// peptide bonds between them.
package calpha

import (
	"math"

	"github.com/andrew-torda/pdbcell/pdb/calpha/geom"
	"github.com/andrew-torda/pdbcell/pdb/model"
)

const (
	conv = 180 / math.Pi

	// MaxCaDist is the longest CA to CA distance between bonded
	// residues.
	MaxCaDist = 4.1
	maxCNDist = 2.0 // beyond this C and N are not bonded
	CisLimit  = 30  // degrees
)

// Break is a pair of neighbouring residues whose alpha carbons are too
// far apart. Res is the index of the first residue.
type Break struct {
	Res  int
	Dist float64
}

// Breaks lists consecutive CA pairs farther than maxDist. If maxDist
// is not positive, MaxCaDist is used. Residues without a CA are
// skipped, so they do not count as a break on their own.
func Breaks(ch *model.Chain, maxDist float64) []Break {
	if maxDist <= 0 {
		maxDist = MaxCaDist
	}
	var ret []Break
	prev, iPrev := (*model.Atom)(nil), -1
	for i := range ch.Residues {
		ca := ch.Residues[i].FindAtom("CA")
		if ca == nil {
			continue
		}
		if prev != nil {
			if d := geom.Dist(prev.Pos, ca.Pos); d > maxDist {
				ret = append(ret, Break{Res: iPrev, Dist: d})
			}
		}
		prev, iPrev = ca, i
	}
	return ret
}

// Omega is the CA-C-N-CA torsion in degrees for the peptide bond
// after residue Res.
type Omega struct {
	Res   int
	Omega float64
}

// IsCis uses CisLimit.
func (o Omega) IsCis() bool { return math.Abs(o.Omega) < CisLimit }

// Omegas returns the torsions for every pair of neighbours that have
// the four atoms and a plausible C to N bond.
func Omegas(ch *model.Chain) []Omega {
	var ret []Omega
	for i := 0; i+1 < len(ch.Residues); i++ {
		r1, r2 := &ch.Residues[i], &ch.Residues[i+1]
		ca1, c1 := r1.FindAtom("CA"), r1.FindAtom("C")
		n2, ca2 := r2.FindAtom("N"), r2.FindAtom("CA")
		if ca1 == nil || c1 == nil || n2 == nil || ca2 == nil {
			continue
		}
		if geom.Dist(c1.Pos, n2.Pos) > maxCNDist {
			continue
		}
		w, err := geom.Dihedral(ca1.Pos, c1.Pos, n2.Pos, ca2.Pos)
		if err != nil {
			continue
		}
		ret = append(ret, Omega{Res: i, Omega: w * conv})
	}
	return ret
}

// CisMismatch lists residues where the CISPEP flag and the geometry
// disagree. Residues with no omega are not checked.
func CisMismatch(ch *model.Chain) []int {
	var ret []int
	for _, o := range Omegas(ch) {
		if o.IsCis() != ch.Residues[o.Res].IsCis {
			ret = append(ret, o.Res)
		}
	}
	return ret
}

// VirtualBond is the CA(i)-CA(i+1) distance and the CA(i)-CA(i+1)-CA(i+2)
// angle in degrees.
type VirtualBond struct {
	Dist, Angle float64
}

// Virtual walks along the alpha carbons. Triples with a broken
// distance are skipped.
func Virtual(ch *model.Chain) []VirtualBond {
	var cas []*model.Atom
	for i := range ch.Residues {
		if ca := ch.Residues[i].FindAtom("CA"); ca != nil {
			cas = append(cas, ca)
		}
	}
	var ret []VirtualBond
	for i := 0; i+2 < len(cas); i++ {
		xI, xJ, xK := cas[i].Pos, cas[i+1].Pos, cas[i+2].Pos
		r1, err := geom.CaDist(xI, xJ)
		if err != nil {
			continue
		}
		if _, err = geom.CaDist(xJ, xK); err != nil {
			continue
		}
		angle, err := geom.Angle(xI, xJ, xK)
		if err != nil {
			continue
		}
		ret = append(ret, VirtualBond{Dist: r1, Angle: angle * conv})
	}
	return ret
}
