package pdb

// Go to a pdb website and download coordinates in the old format.
// The main point is to visit the web page and return a reader that
// can be used like the file readers.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andrew-torda/pdbcell/pdb/model"
	"github.com/andrew-torda/pdbcell/pdb/oldfmt"
	"github.com/andrew-torda/pdbcell/pdb/zwrap"
	"github.com/andrew-torda/pdbcell/pkg/logging"
)

// ErrBadCode is returned for anything that is not a four character
// accession code.
var ErrBadCode = errors.New("acq code should be four letters or digits")

// Site says how to build a URL, base + prefix + code + suffix.
type Site struct {
	Name, Base, Prefix, Suffix string
}

// Sites are the places we know. Tests point them elsewhere.
var Sites = []Site{
	{"rcsb", "https://files.rcsb.org/download/", "", ".pdb.gz"},
	{"pdbe", "https://www.ebi.ac.uk/pdbe/entry-files/download/", "pdb", ".ent"},
	{"pdbj", "https://ftp.pdbj.org/pub/pdb/data/structures/all/pdb/", "pdb", ".ent.gz"},
}

func checkCode(acqCode string) (string, error) {
	if len(acqCode) != 4 {
		return "", fmt.Errorf("%w, not %q", ErrBadCode, acqCode)
	}
	for _, c := range acqCode {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return "", fmt.Errorf("%w, not %q", ErrBadCode, acqCode)
		}
	}
	return strings.ToLower(acqCode), nil
}

// SiteURL gives the address for a code. If siteNum is too big, we use
// a modulo to wrap it around, rather than generate an error. This makes
// it easier to cycle through them or pick one at random.
func SiteURL(acqCode string, siteNum int) (string, error) {
	code, err := checkCode(acqCode)
	if err != nil {
		return "", err
	}
	if siteNum < 0 {
		siteNum = -siteNum
	}
	s := Sites[siteNum%len(Sites)]
	return s.Base + s.Prefix + code + s.Suffix, nil
}

// Fetch is given a four letter pdb code. It goes to the protein data
// bank and returns a reader. Some sites send gzipped data, so the body
// is passed through zwrap.
func Fetch(ctx context.Context, acqCode string, siteNum int) (io.ReadCloser, error) {
	url, err := SiteURL(acqCode, siteNum)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.New("Wanted " + acqCode + " using " + url + ", got " + resp.Status)
	}
	zr, err := zwrap.WrapMaybe(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	return zr, nil
}

// ReadHTTP fetches and parses a structure.
func ReadHTTP(ctx context.Context, acqCode string, siteNum int, log logging.Logger) (*model.Structure, error) {
	rdr, err := Fetch(ctx, acqCode, siteNum)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	pr := oldfmt.NewPdbReader(rdr)
	pr.SetName(strings.ToLower(acqCode))
	pr.SetLogger(log)
	return pr.DoFile()
}
