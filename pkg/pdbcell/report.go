package pdbcell

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/pdbcell/pdb/model"
)

// The report types are what --toml writes, so the field tags are the
// keys a user sees.

type cellInfo struct {
	A          float64 `toml:"a"`
	B          float64 `toml:"b"`
	C          float64 `toml:"c"`
	Alpha      float64 `toml:"alpha"`
	Beta       float64 `toml:"beta"`
	Gamma      float64 `toml:"gamma"`
	Volume     float64 `toml:"volume"`
	SpaceGroup string  `toml:"space_group"`
	Crystal    bool    `toml:"crystal"`
	Images     int     `toml:"images"`
}

type info struct {
	Name       string   `toml:"name"`
	ID         string   `toml:"id"`
	Title      string   `toml:"title"`
	Method     string   `toml:"method"`
	Resolution string   `toml:"resolution"`
	Models     int      `toml:"models"`
	Chains     []string `toml:"chains"`
	Residues   int      `toml:"residues"`
	Atoms      int      `toml:"atoms"`
	Entities   int      `toml:"entities"`
	Ncs        int      `toml:"ncs"`
	Cell       cellInfo `toml:"cell"`
}

type infoReports struct {
	Info []info `toml:"info"`
}

func newInfo(st *model.Structure) info {
	uc := st.Cell
	r := info{
		Name:       st.Name,
		ID:         st.Info["_entry.id"],
		Title:      st.Title(),
		Method:     strings.TrimSpace(st.Info["_exptl.method"]),
		Resolution: st.Info["_refine.ls_d_res_high"],
		Models:     len(st.Models),
		Residues:   st.CountResidues(),
		Atoms:      st.CountAtoms(),
		Entities:   len(st.Entities),
		Ncs:        len(st.Ncs),
		Cell: cellInfo{
			A: uc.A, B: uc.B, C: uc.C,
			Alpha: uc.Alpha, Beta: uc.Beta, Gamma: uc.Gamma,
			Volume:     uc.Volume,
			SpaceGroup: st.SpaceGroup,
			Crystal:    uc.IsCrystal(),
			Images:     len(uc.Images),
		},
	}
	if len(st.Models) > 0 {
		for _, c := range st.Models[0].Chains {
			r.Chains = append(r.Chains, c.Name)
		}
	}
	return r
}

func (r infoReports) text(w io.Writer) error {
	for _, i := range r.Info {
		_, err := fmt.Fprintf(w, `%s %s
title %s
method %s resolution %s
models %d chains %s residues %d atoms %d entities %d ncs %d
cell %.3f %.3f %.3f %.2f %.2f %.2f volume %.1f
space group %s images %d crystal %v
`, i.Name, i.ID, i.Title, i.Method, i.Resolution,
			i.Models, strings.Join(i.Chains, ","), i.Residues, i.Atoms, i.Entities, i.Ncs,
			i.Cell.A, i.Cell.B, i.Cell.C, i.Cell.Alpha, i.Cell.Beta, i.Cell.Gamma, i.Cell.Volume,
			i.Cell.SpaceGroup, i.Cell.Images, i.Cell.Crystal)
		if err != nil {
			return err
		}
	}
	return nil
}

type nearReport struct {
	From  string  `toml:"from"`
	To    string  `toml:"to"`
	Dist  float64 `toml:"dist"`
	SymOp string  `toml:"symop"`
}

func (r nearReport) text(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s %.3f %s\n", r.From, r.To, r.Dist, r.SymOp)
	return err
}

type contactLine struct {
	Atom1 string  `toml:"atom1"`
	Atom2 string  `toml:"atom2"`
	Dist  float64 `toml:"dist"`
	SymOp string  `toml:"symop"`
}

type contactReport struct {
	Contact []contactLine `toml:"contact"`
}

func (r contactReport) text(w io.Writer) error {
	for _, c := range r.Contact {
		if _, err := fmt.Fprintf(w, "%-16s %-16s %7.3f %s\n", c.Atom1, c.Atom2, c.Dist, c.SymOp); err != nil {
			return err
		}
	}
	return nil
}

type specialLine struct {
	Atom   string `toml:"atom"`
	NMates int    `toml:"n_mates"`
}

type specialReport struct {
	Special []specialLine `toml:"special"`
}

func (r specialReport) text(w io.Writer) error {
	if len(r.Special) == 0 {
		_, err := fmt.Fprintln(w, "no atoms on special positions")
		return err
	}
	for _, s := range r.Special {
		if _, err := fmt.Fprintf(w, "%s %d\n", s.Atom, s.NMates); err != nil {
			return err
		}
	}
	return nil
}

type entityLine struct {
	ID       string   `toml:"id"`
	Type     string   `toml:"type"`
	PolyType string   `toml:"poly_type"`
	Chains   []string `toml:"chains"`
	Sequence string   `toml:"sequence"`
}

type entityReport struct {
	Entity []entityLine `toml:"entity"`
}

func newEntities(st *model.Structure) entityReport {
	var rep entityReport
	for i := range st.Entities {
		e := &st.Entities[i]
		line := entityLine{ID: e.ID, Type: e.Type.String(), PolyType: e.PolyType.String(), Sequence: e.OneLetter()}
		for _, c := range st.Models[0].Chains {
			if c.Entity == i {
				line.Chains = append(line.Chains, c.Name)
			}
		}
		rep.Entity = append(rep.Entity, line)
	}
	return rep
}

func (r entityReport) text(w io.Writer) error {
	for _, e := range r.Entity {
		_, err := fmt.Fprintf(w, "%s %s %s %s %s\n", e.ID, e.Type, e.PolyType, strings.Join(e.Chains, ","), e.Sequence)
		if err != nil {
			return err
		}
	}
	return nil
}

type checkLine struct {
	Chain   string `toml:"chain"`
	Residue string `toml:"residue"`
	What    string `toml:"what"`
}

type checkReport struct {
	Problem []checkLine `toml:"problem"`
}

func (r checkReport) text(w io.Writer) error {
	if len(r.Problem) == 0 {
		_, err := fmt.Fprintln(w, "no problems")
		return err
	}
	for _, p := range r.Problem {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", p.Chain, p.Residue, p.What); err != nil {
			return err
		}
	}
	return nil
}
