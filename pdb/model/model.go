// Package model holds a parsed structure. It is a tree of models,
// chains, residues and atoms kept in slices. Anything that points
// across the tree, like the entity of a chain or the two ends of a
// disulfide, uses indices.
package model

import (
	"strings"

	"github.com/andrew-torda/pdbcell/pdb/cell"
	"github.com/andrew-torda/pdbcell/pdb/cmmn"
	"github.com/andrew-torda/pdbcell/pdb/elem"
)

// Atom groups, taken from the first letter of the record.
const (
	GroupAtom   byte = 'A'
	GroupHetatm byte = 'H'
)

type Atom struct {
	Name    string
	AltLoc  byte // 0 if there is none
	Group   byte // GroupAtom or GroupHetatm
	Element elem.Element
	Charge  int8
	Pos     cmmn.Position
	Occ     float32
	BIso    float32
	// Anisotropic displacement, zero if there was no ANISOU.
	U11, U22, U33, U12, U13, U23 float32
}

// HasAniso says if an ANISOU record was attached.
func (a *Atom) HasAniso() bool { return a.U11 != 0 }

// SeqID is a residue number plus insertion code.
type SeqID struct {
	Num   int
	ICode byte // 0 if there is none
}

func (s SeqID) String() string {
	if s.ICode == 0 {
		return itoa(s.Num)
	}
	return itoa(s.Num) + string(s.ICode)
}

// ResidueID identifies a residue within a chain.
type ResidueID struct {
	SeqID
	Name    string
	Segment string
}

type Residue struct {
	ResidueID
	IsCis bool
	Conn  []string // like "1 disulf2"
	Atoms []Atom
}

// Matches compares number, insertion code and name. The segment is
// not part of the identity.
func (r *Residue) Matches(id ResidueID) bool {
	return r.SeqID == id.SeqID && r.Name == id.Name
}

// FindAtom returns the first atom with the name, preferring no
// altloc or altloc A.
func (r *Residue) FindAtom(name string) *Atom {
	var found *Atom
	for i := range r.Atoms {
		a := &r.Atoms[i]
		if a.Name != name {
			continue
		}
		if a.AltLoc == 0 || a.AltLoc == 'A' {
			return a
		}
		if found == nil {
			found = a
		}
	}
	return found
}

type Chain struct {
	Name     string // may carry a suffix if the chain was reopened
	AuthName string // chain code as written in the file
	Entity   int    // index into Structure.Entities, -1 if not set
	Residues []Residue
}

// FindResidue returns an index or -1. We search from the end, since
// that is where the reader is usually working.
func (c *Chain) FindResidue(id ResidueID) int {
	for i := len(c.Residues) - 1; i >= 0; i-- {
		if c.Residues[i].Matches(id) {
			return i
		}
	}
	return -1
}

func (c *Chain) FindOrAddResidue(id ResidueID) int {
	if i := c.FindResidue(id); i >= 0 {
		return i
	}
	c.Residues = append(c.Residues, Residue{ResidueID: id})
	return len(c.Residues) - 1
}

// ResidueRef points to a residue within one model.
type ResidueRef struct {
	Chain, Residue int
}

// Connection types. Only disulfides come out of the old format.
const (
	ConnDisulf = "disulf"
)

type Connection struct {
	ID   string
	Type string
	Res1 ResidueRef
	Res2 ResidueRef
}

type Model struct {
	Name        string
	Chains      []Chain
	Connections []Connection
}

// FindChain returns an index or -1.
func (m *Model) FindChain(name string) int {
	for i := range m.Chains {
		if m.Chains[i].Name == name {
			return i
		}
	}
	return -1
}

func (m *Model) FindOrAddChain(name string) int {
	if i := m.FindChain(name); i >= 0 {
		return i
	}
	m.Chains = append(m.Chains, Chain{Name: name, AuthName: name, Entity: -1})
	return len(m.Chains) - 1
}

// Residue follows a ResidueRef.
func (m *Model) Residue(r ResidueRef) *Residue {
	return &m.Chains[r.Chain].Residues[r.Residue]
}

// NcsOp is a non-crystallographic symmetry operator from MTRIX.
// Given means the copy is already in the file.
type NcsOp struct {
	ID    string
	Given bool
	Tr    cmmn.Transform
}

// Structure is everything read from one file.
type Structure struct {
	Name       string
	Models     []Model
	Entities   []Entity
	Cell       *cell.UnitCell
	SpaceGroup string // Hermann-Mauguin, as written
	Ncs        []NcsOp
	Origx      cmmn.Transform
	Info       map[string]string // mmCIF style keys
}

// NewStructure has the placeholder cell and identity ORIGX.
func NewStructure(name string) *Structure {
	return &Structure{
		Name:  name,
		Cell:  cell.New(),
		Origx: cmmn.IdentityTransform(),
		Info:  make(map[string]string),
	}
}

// FindModel returns an index or -1.
func (st *Structure) FindModel(name string) int {
	for i := range st.Models {
		if st.Models[i].Name == name {
			return i
		}
	}
	return -1
}

func (st *Structure) FindOrAddModel(name string) int {
	if i := st.FindModel(name); i >= 0 {
		return i
	}
	st.Models = append(st.Models, Model{Name: name})
	return len(st.Models) - 1
}

// ChainEntity returns nil if the chain has no entity.
func (st *Structure) ChainEntity(ch *Chain) *Entity {
	if ch.Entity < 0 || ch.Entity >= len(st.Entities) {
		return nil
	}
	return &st.Entities[ch.Entity]
}

// CountAtoms over all models.
func (st *Structure) CountAtoms() int {
	n := 0
	for _, m := range st.Models {
		for _, ch := range m.Chains {
			for _, r := range ch.Residues {
				n += len(r.Atoms)
			}
		}
	}
	return n
}

func (st *Structure) CountResidues() int {
	n := 0
	for _, m := range st.Models {
		for _, ch := range m.Chains {
			n += len(ch.Residues)
		}
	}
	return n
}

// Title is a shortcut into Info.
func (st *Structure) Title() string { return strings.TrimSpace(st.Info["_struct.title"]) }
