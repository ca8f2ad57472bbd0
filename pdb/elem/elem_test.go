package elem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrew-torda/pdbcell/pdb/elem"
)

var guesstests = []struct {
	name string
	want elem.Element
}{
	{" CA ", elem.C},
	{"CA  ", elem.FromSymbol("Ca")},
	{" N  ", elem.N},
	{"1HB ", elem.H},
	{"HB12", elem.H},
	{"FE  ", elem.FromSymbol("fe")},
	{"SE  ", elem.Se},
	{" SD ", elem.S},
	{"", elem.X},
}

func TestGuess(t *testing.T) {
	for _, tt := range guesstests {
		assert.Equal(t, tt.want, elem.Guess(tt.name), "name %q", tt.name)
	}
}

func TestFromPDB(t *testing.T) {
	assert.Equal(t, elem.Se, elem.FromPDB("SE", " SE "), "columns win")
	assert.Equal(t, elem.C, elem.FromPDB("  ", " CB "))
	assert.Equal(t, elem.O, elem.FromPDB(" O", "XXXX"))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "Fe", elem.FromSymbol(" FE").Symbol())
	assert.Equal(t, 26, elem.FromSymbol("Fe").AtomicNum())
	assert.Equal(t, elem.H, elem.FromSymbol("D"))
	assert.Equal(t, "X", elem.Element(200).Symbol())
	assert.Equal(t, "Og", elem.Element(118).String())
}
