package pdb_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/pdbcell/pdb"
	"github.com/andrew-torda/pdbcell/pdb/oldfmt"
	"github.com/andrew-torda/pdbcell/pdb/pdbtest"
)

// TestBrokenFile checks if we get sensible error messages when we open
// something that is not a coordinate file.
func TestBrokenFile(t *testing.T) {
	testfiles := []string{
		t.TempDir(),
		"/does/not/exist",
		pdbtest.WrtTemp(t, "garbage", "hello\nworld\n"),
	}
	for _, s := range testfiles {
		st, err := ReadFile(s, nil)
		assert.Nil(t, st, s)
		assert.Error(t, err, "Did not get expected error on", s)
	}
}

var fnameTypes = []struct {
	fname string
	ftype Format
}{
	{"boo.mmcif", MmcifFmt},
	{"boo.mmcif.gz", MmcifFmt},
	{"boo.cif", MmcifFmt},
	{"a/b/c.ent", OldFmt},
	{"a/b.ent.gz", OldFmt},
	{"a.pdb", OldFmt},
	{"a.PDB.gz", OldFmt},
}

func TestFormatByName(t *testing.T) {
	for _, f := range fnameTypes {
		r, err := FormatOf(f.fname)
		assert.NoError(t, err, f.fname)
		assert.Equal(t, f.ftype, r, f.fname)
	}
}

func TestFormatByContent(t *testing.T) {
	cif := "data_1ABC\n#\n_entry.id 1ABC\n"
	files := []struct {
		path  string
		ftype Format
	}{
		{pdbtest.WrtTemp(t, "peedeebee1", pdbtest.Small), OldFmt},
		{pdbtest.WrtTempGz(t, "peedeebee2", pdbtest.Nmr), OldFmt},
		{pdbtest.WrtTemp(t, "peedeebee3", "\n\n"+pdbtest.Hybrid36), OldFmt},
		{pdbtest.WrtTemp(t, "ememcif1", cif), MmcifFmt},
		{pdbtest.WrtTempGz(t, "ememcif2", cif), MmcifFmt},
	}
	for _, f := range files {
		r, err := FormatOf(f.path)
		assert.NoError(t, err, f.path)
		assert.Equal(t, f.ftype, r, f.path)
	}
	_, err := FormatOf(pdbtest.WrtTemp(t, "nothing", "\n\n"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadFile(t *testing.T) {
	for _, path := range []string{
		pdbtest.WrtTemp(t, "1abc.pdb", pdbtest.Small),
		pdbtest.WrtTempGz(t, "1abc.pdb.gz", pdbtest.Small),
		pdbtest.WrtTempGz(t, "1abc", pdbtest.Small),
	} {
		st, err := ReadFile(path, nil)
		require.NoError(t, err, path)
		assert.Len(t, st.Models[0].Chains, 4, path)
		assert.Equal(t, 18, st.CountAtoms(), path)
		assert.Len(t, st.Cell.Images, 3, path)
	}
}

func TestReadEmpty(t *testing.T) {
	st, err := ReadFile(pdbtest.WrtTemp(t, "empty.pdb", ""), nil)
	require.NoError(t, err)
	assert.Zero(t, st.CountAtoms())
}

func TestReadMmcif(t *testing.T) {
	st, err := ReadFile(pdbtest.WrtTemp(t, "x.cif", "data_x\n"), nil)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, ErrMmcif)
}

func TestReadBad(t *testing.T) {
	st, err := ReadFile(pdbtest.WrtTemp(t, "bad.pdb", pdbtest.Bad["BadCharge"]), nil)
	assert.Nil(t, st)
	var pe *oldfmt.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, oldfmt.ErrCharge)
}
