package pdbcell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/pdbcell/pdb"
	"github.com/andrew-torda/pdbcell/pdb/bigread"
	"github.com/andrew-torda/pdbcell/pdb/calpha"
	"github.com/andrew-torda/pdbcell/pdb/cell"
	"github.com/andrew-torda/pdbcell/pdb/contacts"
	"github.com/andrew-torda/pdbcell/pdb/model"
	"github.com/andrew-torda/pdbcell/pkg/logging"
)

func (a *app) read(fname string) (*model.Structure, error) {
	st, err := pdb.ReadFile(fname, a.log.Named("read"))
	if err != nil {
		return nil, err
	}
	if len(st.Models) == 0 || len(st.Models[0].Chains) == 0 {
		return nil, fmt.Errorf("%s: no atoms", fname)
	}
	return st, nil
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Summarise structures and their unit cells",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reps infoReports
			for _, f := range args {
				st, err := pdb.ReadFile(f, a.log.Named("read"))
				if err != nil {
					return err
				}
				reps.Info = append(reps.Info, newInfo(st))
			}
			return a.emit(cmd.OutOrStdout(), reps, reps.text)
		},
	}
}

// atomSpec is chain/residue/atom, like A/12/CA or B/27A/N.
type atomSpec struct {
	chain string
	seq   model.SeqID
	name  string
}

func parseAtomSpec(s string) (atomSpec, error) {
	f := strings.Split(s, "/")
	if len(f) != 3 || f[0] == "" || f[1] == "" || f[2] == "" {
		return atomSpec{}, fmt.Errorf("atom %q should look like A/12/CA", s)
	}
	num := f[1]
	var spec atomSpec
	if c := num[len(num)-1]; c < '0' || c > '9' {
		spec.seq.ICode = c
		num = num[:len(num)-1]
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return atomSpec{}, fmt.Errorf("atom %q: bad residue number", s)
	}
	spec.chain, spec.seq.Num, spec.name = f[0], n, f[2]
	return spec, nil
}

func findAtom(m *model.Model, spec atomSpec) (*model.Atom, error) {
	ci := m.FindChain(spec.chain)
	if ci < 0 {
		return nil, fmt.Errorf("no chain %s", spec.chain)
	}
	for ri := range m.Chains[ci].Residues {
		res := &m.Chains[ci].Residues[ri]
		if res.SeqID != spec.seq {
			continue
		}
		if a := res.FindAtom(spec.name); a != nil {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no atom %s in %s %s", spec.name, spec.chain, spec.seq)
}

func (a *app) nearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "near FILE ATOM1 ATOM2",
		Short: "Distance from ATOM1 to the nearest image of ATOM2",
		Long: `Atoms are given as chain/residue/atom, like A/12/CA. The answer is the
distance and the operator, as in 2_565. If both atoms are the same,
the nearest symmetry mate is found.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.read(args[0])
			if err != nil {
				return err
			}
			var at [2]*model.Atom
			for i, s := range args[1:] {
				spec, err := parseAtomSpec(s)
				if err != nil {
					return err
				}
				if at[i], err = findAtom(&st.Models[0], spec); err != nil {
					return err
				}
			}
			mode := cell.Unspecified
			if at[0] == at[1] {
				mode = cell.Different
			}
			img := st.Cell.FindNearestImage(at[0].Pos, at[1].Pos, mode)
			rep := nearReport{From: args[1], To: args[2], Dist: img.Dist(), SymOp: img.SymCode(true)}
			return a.emit(cmd.OutOrStdout(), rep, rep.text)
		},
	}
}

func (a *app) contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts FILE",
		Short: "List pairs of atoms closer than a cutoff, including symmetry mates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.read(args[0])
			if err != nil {
				return err
			}
			sites := contacts.Select(st, 0, a.cfg.Contacts.Atom)
			a.log.Debug("contacts", logging.Int("sites", len(sites)),
				logging.Float64("cutoff", a.cfg.Contacts.Cutoff))
			var rep contactReport
			for _, c := range contacts.Find(st.Cell, sites, a.cfg.Contacts.Cutoff) {
				rep.Contact = append(rep.Contact, contactLine{
					Atom1: sites[c.I].Label, Atom2: sites[c.J].Label,
					Dist: c.Dist, SymOp: c.SymCode,
				})
			}
			return a.emit(cmd.OutOrStdout(), rep, rep.text)
		},
	}
	cmd.Flags().String("atom", "CA", `atom name to use, "*" for all`)
	cmd.Flags().Float64("cutoff", 8, "distance cutoff in Å")
	a.v.BindPFlag("contacts.atom", cmd.Flags().Lookup("atom"))
	a.v.BindPFlag("contacts.cutoff", cmd.Flags().Lookup("cutoff"))
	return cmd
}

func (a *app) specialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "special FILE",
		Short: "Find atoms on or near special positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.read(args[0])
			if err != nil {
				return err
			}
			var rep specialReport
			for _, s := range contacts.Select(st, 0, contacts.AllAtoms) {
				if n := st.Cell.IsSpecialPosition(s.Pos, a.cfg.Cell.SpecialDist); n > 0 {
					rep.Special = append(rep.Special, specialLine{Atom: s.Label, NMates: n})
				}
			}
			return a.emit(cmd.OutOrStdout(), rep, rep.text)
		},
	}
	cmd.Flags().Float64("dist", cell.DefaultSpecialDist, "how close a mate must be, Å")
	a.v.BindPFlag("cell.special_dist", cmd.Flags().Lookup("dist"))
	return cmd
}

func (a *app) seqresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seqres FILE",
		Short: "Print entities and their sequences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.read(args[0])
			if err != nil {
				return err
			}
			rep := newEntities(st)
			return a.emit(cmd.OutOrStdout(), rep, rep.text)
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Look for chain breaks and cis peptides that disagree with CISPEP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.read(args[0])
			if err != nil {
				return err
			}
			var rep checkReport
			m := &st.Models[0]
			for ci := range m.Chains {
				ch := &m.Chains[ci]
				for _, b := range calpha.Breaks(ch, 0) {
					rep.Problem = append(rep.Problem, checkLine{
						Chain: ch.Name, Residue: ch.Residues[b.Res].SeqID.String(),
						What: fmt.Sprintf("break %.2f", b.Dist),
					})
				}
				for _, ri := range calpha.CisMismatch(ch) {
					what := "cis geometry, no CISPEP"
					if ch.Residues[ri].IsCis {
						what = "CISPEP, trans geometry"
					}
					rep.Problem = append(rep.Problem, checkLine{
						Chain: ch.Name, Residue: ch.Residues[ri].SeqID.String(), What: what,
					})
				}
			}
			return a.emit(cmd.OutOrStdout(), rep, rep.text)
		},
	}
}

func (a *app) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Read every PDB file under DIR and count atoms per element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := a.cfg.Batch
			res, err := bigread.Run(cmd.Context(), bigread.Options{
				Root: args[0], Workers: b.Workers, MaxFiles: b.MaxFiles,
				MaxErr: b.MaxErr, MetricsFile: b.MetricsFile,
			}, a.log.Named("batch"))
			if err != nil {
				return err
			}
			return res.WriteCSV(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int("workers", 3, "reader goroutines")
	cmd.Flags().Int("max-files", 0, "stop after this many files, 0 for all")
	cmd.Flags().String("metrics", "", "write prometheus metrics to this file")
	a.v.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	a.v.BindPFlag("batch.max_files", cmd.Flags().Lookup("max-files"))
	a.v.BindPFlag("batch.metrics_file", cmd.Flags().Lookup("metrics"))
	return cmd
}

func (a *app) fetchCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "fetch CODE",
		Short: "Download a structure in PDB format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Fetch.Timeout)
			defer cancel()
			rdr, err := pdb.Fetch(ctx, args[0], a.cfg.Fetch.Site)
			if err != nil {
				return err
			}
			defer rdr.Close()
			w := cmd.OutOrStdout()
			if out != "" {
				fp, err := os.Create(out)
				if err != nil {
					return err
				}
				defer fp.Close()
				w = fp
			}
			n, err := io.Copy(w, rdr)
			a.log.Info("fetched", logging.String("code", args[0]), logging.Int64("bytes", n))
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "file to write, default stdout")
	cmd.Flags().Int("site", 0, "0 rcsb, 1 pdbe, 2 pdbj")
	a.v.BindPFlag("fetch.site", cmd.Flags().Lookup("site"))
	return cmd
}
