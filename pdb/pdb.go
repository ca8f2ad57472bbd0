// Package pdb is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format we are going
// to read. Then call the old format reader. There is no mmCIF reader.
package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/pdbcell/pdb/model"
	"github.com/andrew-torda/pdbcell/pdb/oldfmt"
	"github.com/andrew-torda/pdbcell/pdb/zwrap"
	"github.com/andrew-torda/pdbcell/pkg/logging"
)

// Format of a coordinate file.
type Format byte

const (
	OldFmt Format = iota
	MmcifFmt
	UnkFmt
)

func (f Format) String() string {
	switch f {
	case OldFmt:
		return "pdb"
	case MmcifFmt:
		return "mmcif"
	}
	return "unknown"
}

var (
	ErrMmcif         = errors.New("mmCIF files are not read, only the old PDB format")
	ErrUnknownFormat = errors.New("cannot recognise format")
)

// startsWith is true if s begins with w. An empty line never matches.
func startsWith(s, w string) bool {
	return len(s) >= len(w) && strings.EqualFold(s[:len(w)], w)
}

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (Format, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "CRYST1", "HETATM", "ATOM", "MODEL"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	fp, err := os.Open(fname)
	if err != nil {
		return UnkFmt, err
	}
	defer fp.Close()

	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return UnkFmt, errors.New("reading " + fname + " " + err.Error())
	}

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(rdr)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if startsWith(s, w) {
				return MmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if startsWith(s, w) {
				return OldFmt, nil
			}
		}
	}
	return UnkFmt, errors.Join(errors.New(fname), ErrUnknownFormat)
}

// FormatOf decides what format we will use.
// Maybe it uses the file name or maybe it peeks inside.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func FormatOf(fname string) (Format, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent to ent
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return OldFmt, nil
		} else if strings.Contains(s, "cif") {
			return MmcifFmt, nil
		}
	}
	return lookInFile(fname)
}

// ReadFile reads one structure. Compressed files are streamed, plain
// ones are mapped into memory. A nil logger is allowed.
func ReadFile(fname string, log logging.Logger) (*model.Structure, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	typ, err := FormatOf(fname)
	if err != nil {
		return nil, err
	}
	if typ == MmcifFmt {
		return nil, errors.Join(errors.New(fname), ErrMmcif)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var rdr io.Reader
	magic := make([]byte, 2)
	if n, _ := fp.ReadAt(magic, 0); n == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := zwrap.Wrap(fp)
		if err != nil {
			return nil, errors.New("reading " + fname + " " + err.Error())
		}
		rdr = zr
		log.Debug("gzipped", logging.String("file", fname))
	} else if mm, err := mmap.Map(fp, mmap.RDONLY, 0); err == nil {
		defer mm.Unmap()
		rdr = bytes.NewReader(mm)
	} else { // empty files cannot be mapped
		log.Debug("no mmap", logging.String("file", fname), logging.Err(err))
		rdr = fp
	}

	pr := oldfmt.NewPdbReader(rdr)
	pr.SetName(fname)
	pr.SetLogger(log)
	return pr.DoFile()
}
