// Package contacts finds close pairs of atoms, taking the unit cell
// and crystal symmetry into account.
package contacts

import (
	"sort"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/pdbcell/pdb/cell"
	"github.com/andrew-torda/pdbcell/pdb/cmmn"
	"github.com/andrew-torda/pdbcell/pdb/model"
)

// AllAtoms as an atom name selects everything.
const AllAtoms = "*"

// Site is one selected atom.
type Site struct {
	Ref   model.ResidueRef
	Label string // like A/CYS 12/SG
	Pos   cmmn.Position
}

// Select takes the atom called atomName from every residue of model
// mi. Where there are alternative conformations, the first one wins.
func Select(st *model.Structure, mi int, atomName string) []Site {
	if mi < 0 || mi >= len(st.Models) {
		return nil
	}
	m := &st.Models[mi]
	var sites []Site
	add := func(ci, ri int, a *model.Atom) {
		res := &m.Chains[ci].Residues[ri]
		sites = append(sites, Site{
			Ref:   model.ResidueRef{Chain: ci, Residue: ri},
			Label: m.Chains[ci].Name + "/" + res.Name + " " + res.SeqID.String() + "/" + a.Name,
			Pos:   a.Pos,
		})
	}
	for ci := range m.Chains {
		for ri := range m.Chains[ci].Residues {
			res := &m.Chains[ci].Residues[ri]
			if atomName != AllAtoms {
				if a := res.FindAtom(atomName); a != nil {
					add(ci, ri, a)
				}
				continue
			}
			for ai := range res.Atoms {
				if a := &res.Atoms[ai]; a.AltLoc == 0 || a.AltLoc == 'A' {
					add(ci, ri, a)
				}
			}
		}
	}
	return sites
}

func mode(i, j int) cell.SymImage {
	if i == j {
		return cell.Different
	}
	return cell.Unspecified
}

// Matrix has the distance from every site to the nearest image of
// every other. The diagonal is the distance to the nearest symmetry
// mate, which is +Inf if there is none.
func Matrix(uc *cell.UnitCell, sites []Site) *matrix.FMatrix2d {
	n := len(sites)
	dm := matrix.NewFMatrix2d(n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			d := float32(uc.FindNearestImage(sites[i].Pos, sites[j].Pos, mode(i, j)).Dist())
			dm.Mat[i][j], dm.Mat[j][i] = d, d
		}
	}
	return dm
}

// Contact is a pair of sites, J seen through the operator SymCode.
type Contact struct {
	I, J    int
	Dist    float64
	SymCode string
}

// Find lists pairs within cutoff, including contacts of a site with
// its own symmetry mates. The result is sorted by distance.
func Find(uc *cell.UnitCell, sites []Site, cutoff float64) []Contact {
	var ret []Contact
	cutSq := cutoff * cutoff
	for i := range sites {
		for j := i; j < len(sites); j++ {
			img := uc.FindNearestImage(sites[i].Pos, sites[j].Pos, mode(i, j))
			if img.DistSq <= cutSq {
				ret = append(ret, Contact{I: i, J: j, Dist: img.Dist(), SymCode: img.SymCode(true)})
			}
		}
	}
	sort.SliceStable(ret, func(a, b int) bool { return ret[a].Dist < ret[b].Dist })
	return ret
}
