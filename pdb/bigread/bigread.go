// Package bigread reads lots of pdb files, counts what it finds and
// keeps some timings. It is the library side of "pdbcell batch".
package bigread

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/pdbcell/brokenio"
	"github.com/andrew-torda/pdbcell/pdb"
	"github.com/andrew-torda/pdbcell/pdb/calpha"
	"github.com/andrew-torda/pdbcell/pdb/model"
	"github.com/andrew-torda/pdbcell/pdb/oldfmt"
	"github.com/andrew-torda/pdbcell/pdb/zwrap"
	"github.com/andrew-torda/pdbcell/pkg/logging"
)

const (
	nReaderDflt = 3  // Default number of reader threads
	maxErrDflt  = 10 // broken files before we give up
)

// ErrTooMany is returned when more than MaxErr files could not be read.
var ErrTooMany = errors.New("too many broken files")

type Options struct {
	Root        string  // top of the tree
	Workers     int     // reader goroutines, default 3
	MaxFiles    int     // stop after this many, 0 means no limit
	MaxErr      int     // give up after this many broken files, default 10
	MetricsFile string  // if set, metrics go here in text format
	ProbFail    float32 // chance of an artificial read error, for testing
}

// Result has the totals. Elements is atoms per element symbol.
type Result struct {
	RunID    string
	NFile    int
	NErr     int
	NSkip    int
	NByte    int64
	NAtom    int
	Elements map[string]int
	Registry *prometheus.Registry
}

// Pair is one line of the element table.
type Pair struct {
	Name string
	N    int
}

// Pairs gives the element counts, most common first.
func (r *Result) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r.Elements))
	for k, v := range r.Elements {
		pairs = append(pairs, Pair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].N != pairs[j].N {
			return pairs[i].N > pairs[j].N
		}
		return pairs[i].Name < pairs[j].Name
	})
	return pairs
}

// WriteCSV prints the element table.
func (r *Result) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "\"name\",\"n\""); err != nil {
		return err
	}
	for _, p := range r.Pairs() {
		if _, err := fmt.Fprintf(w, "\"%v\",%v\n", p.Name, p.N); err != nil {
			return err
		}
	}
	return nil
}

type metrics struct {
	files   *prometheus.CounterVec
	atoms   prometheus.Counter
	bytes   prometheus.Counter
	seconds prometheus.Histogram
	caDist  prometheus.Histogram
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pdbcell", Subsystem: "batch", Name: "files_total",
			Help: "Files looked at, by result.",
		}, []string{"result"}),
		atoms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pdbcell", Subsystem: "batch", Name: "atoms_total",
			Help: "Atoms read.",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pdbcell", Subsystem: "batch", Name: "bytes_total",
			Help: "Size of files read.",
		}),
		seconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pdbcell", Subsystem: "batch", Name: "read_seconds",
			Help:    "Time to read one file.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		caDist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pdbcell", Subsystem: "batch", Name: "ca_distance_angstroms",
			Help:    "Distance between neighbouring alpha carbons.",
			Buckets: prometheus.LinearBuckets(3.5, 0.1, 7),
		}),
	}
	reg.MustRegister(m.files, m.atoms, m.bytes, m.seconds, m.caDist)
	return m
}

// nummap is atoms per element.
type nummap map[string]int

type reader struct {
	opts Options
	log  logging.Logger
	met  *metrics
	nErr atomic.Int32
}

// nextPfile walks the tree from the root, sending the names down the
// nmChan channel. We stop after maxFile files, but if maxFile <= 0,
// we just read until there are no more.
func (r *reader) nextPfile(ctx context.Context, nmChan chan<- string) error {
	defer close(nmChan)
	ndone := 0
	err := filepath.WalkDir(r.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if r.opts.MaxFiles > 0 && ndone >= r.opts.MaxFiles {
			return fs.SkipAll
		}
		select {
		case nmChan <- path:
			ndone++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	return err
}

// eatPDB reads one file and adds its atoms to nummap.
func (r *reader) eatPDB(fname string, nummap nummap) (*model.Structure, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	var src io.ReadCloser = fp
	if r.opts.ProbFail > 0 {
		b := brokenio.NewReader(fp)
		b.SetProbFail(r.opts.ProbFail)
		src = b
	}
	rdr, err := zwrap.WrapMaybe(src)
	if err != nil {
		fp.Close()
		return nil, err
	}
	defer rdr.Close()
	pr := oldfmt.NewPdbReader(rdr)
	pr.SetName(fname)
	st, err := pr.DoFile()
	if err != nil {
		return nil, err
	}
	for _, m := range st.Models {
		for _, c := range m.Chains {
			for _, res := range c.Residues {
				for _, a := range res.Atoms {
					nummap[a.Element.Symbol()]++
				}
			}
		}
	}
	return st, nil
}

// tally is what one worker collects.
type tally struct {
	nFile, nSkip int
	nByte        int64
	nummap       nummap
}

// pdbStat takes file names from the channel until it is closed.
func (r *reader) pdbStat(ctx context.Context, nmChan <-chan string, t *tally) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var fname string
		var ok bool
		select {
		case fname, ok = <-nmChan:
			if !ok {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
		if typ, err := pdb.FormatOf(fname); err != nil || typ != pdb.OldFmt {
			t.nSkip++
			r.met.files.WithLabelValues("skipped").Inc()
			r.log.Debug("skipping", logging.String("file", fname))
			continue
		}
		start := time.Now()
		st, err := r.eatPDB(fname, t.nummap)
		r.met.seconds.Observe(time.Since(start).Seconds())
		if err != nil {
			r.met.files.WithLabelValues("error").Inc()
			r.log.Warn("broken file", logging.String("file", fname), logging.Err(err))
			if n := int(r.nErr.Add(1)); n >= r.opts.MaxErr {
				return fmt.Errorf("%w: %d", ErrTooMany, n)
			}
			continue
		}
		r.met.files.WithLabelValues("ok").Inc()
		t.nFile++
		if fi, err := os.Stat(fname); err == nil {
			t.nByte += fi.Size()
			r.met.bytes.Add(float64(fi.Size()))
		}
		nAtom := st.CountAtoms()
		r.met.atoms.Add(float64(nAtom))
		for mi := range st.Models {
			for ci := range st.Models[mi].Chains {
				for _, v := range calpha.Virtual(&st.Models[mi].Chains[ci]) {
					r.met.caDist.Observe(v.Dist)
				}
			}
		}
	}
}

// Run reads everything under opts.Root. Files that are not in the old
// PDB format are skipped. Broken files are counted, and only stop the
// run when there are MaxErr of them. The returned Result is filled in
// even if there is an error.
func Run(ctx context.Context, opts Options, log logging.Logger) (*Result, error) {
	if opts.Workers <= 0 {
		opts.Workers = nReaderDflt
	}
	if opts.MaxErr <= 0 {
		opts.MaxErr = maxErrDflt
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	runID := uuid.New().String()
	log = log.With(logging.String("run", runID))
	reg := prometheus.NewRegistry()
	r := &reader{opts: opts, log: log, met: newMetrics(reg)}

	log.Info("batch start", logging.String("root", opts.Root), logging.Int("workers", opts.Workers))
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	nmChan := make(chan string, 200)
	g.Go(func() error { return r.nextPfile(gctx, nmChan) })

	tallies := make([]tally, opts.Workers)
	for i := range tallies {
		tallies[i].nummap = make(nummap)
		t := &tallies[i]
		g.Go(func() error { return r.pdbStat(gctx, nmChan, t) })
	}
	err := g.Wait()

	res := &Result{RunID: runID, Elements: make(map[string]int), NErr: int(r.nErr.Load()), Registry: reg}
	for _, t := range tallies { // merge all maps into one
		res.NFile += t.nFile
		res.NSkip += t.nSkip
		res.NByte += t.nByte
		for k, v := range t.nummap {
			res.Elements[k] += v
			res.NAtom += v
		}
	}

	if opts.MetricsFile != "" {
		if e := prometheus.WriteToTextfile(opts.MetricsFile, reg); e != nil {
			err = errors.Join(err, e)
		}
	}
	log.Info("batch done",
		logging.Int("files", res.NFile), logging.Int("errors", res.NErr),
		logging.Int("skipped", res.NSkip), logging.Int("atoms", res.NAtom),
		logging.Duration("elapsed", time.Since(start)))
	return res, err
}
