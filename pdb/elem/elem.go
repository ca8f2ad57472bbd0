// Package elem is a minimal periodic table. Atoms carry an Element
// rather than a string so we do not store the same two letters a
// million times.
package elem

import (
	"strings"
)

// Element is the atomic number. 0 is unknown.
type Element uint8

const (
	X  Element = 0
	H  Element = 1
	C  Element = 6
	N  Element = 7
	O  Element = 8
	S  Element = 16
	Se Element = 34
)

var symbols = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// bySymbol is upper case symbol to element. D for deuterium counts as H.
var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(symbols)+1)
	for i, s := range symbols {
		m[strings.ToUpper(s)] = Element(i)
	}
	m["D"] = H
	return m
}()

// Symbol like "Fe".
func (e Element) Symbol() string {
	if int(e) >= len(symbols) {
		return symbols[0]
	}
	return symbols[e]
}

func (e Element) String() string   { return e.Symbol() }
func (e Element) AtomicNum() int   { return int(e) }
func (e Element) IsHydrogen() bool { return e == H }

// FromSymbol ignores case and surrounding blanks. Unknown gives X.
func FromSymbol(s string) Element {
	return bySymbol[strings.ToUpper(strings.TrimSpace(s))]
}

// FromPDB takes the two element columns (77-78) and the raw four
// character atom name (columns 13-16). The element columns win if
// they hold anything we recognise.
func FromPDB(elemCols, rawName string) Element {
	if e := FromSymbol(elemCols); e != X {
		return e
	}
	return Guess(rawName)
}

// Guess the element from a four character atom name, using the PDB
// alignment rule. A one letter element starts in the second column,
// so " CA " is carbon and "CA  " is calcium.
func Guess(rawName string) Element {
	if len(rawName) == 0 {
		return X
	}
	t := strings.TrimSpace(rawName)
	if len(t) == 4 && (t[0] == 'H' || t[0] == 'h') {
		return H
	}
	if rawName[0] == ' ' || (rawName[0] >= '0' && rawName[0] <= '9') {
		if len(rawName) > 1 {
			return FromSymbol(rawName[1:2])
		}
		return X
	}
	if len(rawName) > 1 {
		if e := FromSymbol(rawName[:2]); e != X {
			return e
		}
	}
	return FromSymbol(rawName[:1])
}
