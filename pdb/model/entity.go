package model

import (
	"strconv"
	"strings"
)

type EntityType byte

const (
	EntityUnknown EntityType = iota
	EntityPolymer
)

func (t EntityType) String() string {
	if t == EntityPolymer {
		return "polymer"
	}
	return "unknown"
}

type PolymerType byte

const (
	PolyUnknown PolymerType = iota
	PolyPeptideL
	PolyDna
	PolyRna
)

func (p PolymerType) String() string {
	return [...]string{"unknown", "polypeptide(L)", "polydeoxyribonucleotide", "polyribonucleotide"}[p]
}

// Entity is a distinct molecule. Chains with the same sequence share
// one.
type Entity struct {
	ID       string
	Type     EntityType
	PolyType PolymerType
	Sequence []string // residue names from SEQRES
}

// GuessPolyType looks at the length of the residue names. Amino acids
// have three letters, DNA two (DA, DC, ...), RNA one.
func GuessPolyType(seq []string) PolymerType {
	var n [4]int
	for _, s := range seq {
		switch len(s) {
		case 3:
			n[PolyPeptideL]++
		case 2:
			if s[0] == 'D' {
				n[PolyDna]++
			}
		case 1:
			n[PolyRna]++
		}
	}
	best := PolyUnknown
	for p := PolyPeptideL; p <= PolyRna; p++ {
		if n[p] > n[best] && 2*n[p] > len(seq) {
			best = p
		}
	}
	return best
}

var threeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"MSE": 'M', "SEC": 'U', "PYL": 'O',
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T',
	"A": 'A', "C": 'C', "G": 'G', "U": 'U',
}

// OneLetter writes the sequence in one letter code, X for anything we
// do not know.
func (e *Entity) OneLetter() string {
	var b strings.Builder
	for _, s := range e.Sequence {
		if c, ok := threeToOne[s]; ok {
			b.WriteByte(c)
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}

func itoa(i int) string { return strconv.Itoa(i) }
