// Package oldfmt reads coordinates in the old, fixed column PDB
// format. Make a reader with NewPdbReader and call DoFile.
//
// Records are handled as they come, with a few exceptions. SSBOND and
// CISPEP are kept until the end, since they refer to residues we have
// not seen yet. Entities are only settled after the last line.
package oldfmt

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strconv"

	"github.com/andrew-torda/pdbcell/pdb/cmmn"
	"github.com/andrew-torda/pdbcell/pdb/elem"
	"github.com/andrew-torda/pdbcell/pdb/model"
	"github.com/andrew-torda/pdbcell/pkg/logging"
)

// minAtomLen takes us up to the element column.
const minAtomLen = 77

// PdbReader holds the source and settings. The parsing state lives in
// a state for the duration of DoFile.
type PdbReader struct {
	rdr  io.Reader
	name string
	log  logging.Logger
}

func NewPdbReader(r io.Reader) *PdbReader {
	return &PdbReader{rdr: r, log: logging.NewNopLogger()}
}

// SetName sets the source name. Only the base name is kept.
func (pr *PdbReader) SetName(s string) { pr.name = filepath.Base(s) }

func (pr *PdbReader) SetLogger(l logging.Logger) {
	if l != nil {
		pr.log = l
	}
}

// Read is the short way of reading one stream.
func Read(r io.Reader, name string) (*model.Structure, error) {
	pr := NewPdbReader(r)
	pr.SetName(name)
	return pr.DoFile()
}

type state struct {
	st     *model.Structure
	model  int // -1 between ENDMDL and MODEL
	chain  int // -1 if no chain is open
	resi   int // -1 if no residue is open
	hasTer map[string]bool
	conn   [][]byte
	ents   *entitySetter
	matrix cmmn.Transform // rows from SCALE, MTRIX or ORIGX
	log    logging.Logger
}

// DoFile reads until END or end of file. On error the structure is
// not returned, since it is only half built.
func (pr *PdbReader) DoFile() (*model.Structure, error) {
	st := model.NewStructure(pr.name)
	s := &state{
		st:     st,
		model:  st.FindOrAddModel("1"),
		chain:  -1,
		resi:   -1,
		hasTer: make(map[string]bool),
		ents:   newEntitySetter(),
		matrix: cmmn.IdentityTransform(),
		log:    pr.log,
	}
	lr := newLineReader(pr.rdr)
	for {
		line, err := lr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Line: lr.n + 1, Desc: "reading: " + err.Error(), Err: err}
		}
		done, err := s.record(line)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				pe = &ParseError{Desc: err.Error(), Err: err}
			}
			pe.Line, pe.Text = lr.n, string(line)
			return nil, pe
		}
		if done {
			break
		}
	}
	s.finish()
	pr.log.Debug("read structure",
		logging.String("name", st.Name),
		logging.Int("lines", lr.n),
		logging.Int("models", len(st.Models)),
		logging.Int("atoms", st.CountAtoms()),
		logging.Int("entities", len(st.Entities)))
	return st, nil
}

func (s *state) curModel() *model.Model { return &s.st.Models[s.model] }
func (s *state) curChain() *model.Chain { return &s.curModel().Chains[s.chain] }

// record handles one line. done is set by END.
func (s *state) record(line []byte) (done bool, err error) {
	switch kindOf(line) {
	case recAtom:
		return false, s.atom(line)
	case recAnisou:
		return false, s.anisou(line)
	case recSeqres:
		s.seqres(line)
	case recHeader:
		s.header(line)
	case recTitle:
		s.appendInfo("_struct.title", line)
	case recKeywds:
		s.appendInfo("_struct_keywords.text", line)
	case recExpdta:
		s.appendInfo("_exptl.method", line)
	case recRemark:
		if r := resolution(line); r != "" {
			s.st.Info["_refine.ls_d_res_high"] = r
		}
	case recCryst1:
		return false, s.cryst1(line)
	case recMtrix:
		if s.readMatrix(line) == 3 {
			if !s.matrix.IsIdentity() {
				s.st.Ncs = append(s.st.Ncs, model.NcsOp{
					ID:    readString(cols(line, fNcsID)),
					Given: len(line) > colNcsGiven && line[colNcsGiven] == '1',
					Tr:    s.matrix,
				})
			}
			s.matrix = cmmn.IdentityTransform()
		}
	case recModel:
		return false, s.modelRec(line)
	case recEndmdl:
		s.model, s.chain, s.resi = -1, -1, -1
	case recTer:
		if s.chain >= 0 {
			s.hasTer[s.curModel().Name+"/"+s.curChain().Name] = true
		}
		s.chain = -1
	case recScale:
		if s.readMatrix(line) == 3 {
			s.st.Cell.SetMatricesFromFract(s.matrix)
			s.matrix = cmmn.IdentityTransform()
		}
	case recOrigx:
		if s.readMatrix(line) == 3 {
			s.st.Origx = s.matrix
			s.matrix = cmmn.IdentityTransform()
		}
	case recSsbond:
		if len(line) >= 34 {
			s.conn = append(s.conn, bytes.Clone(line))
		}
	case recCispep:
		if len(line) >= 21 {
			s.conn = append(s.conn, bytes.Clone(line))
		}
	case recEnd:
		return true, nil
	}
	return false, nil
}

// wrong gives a ParseError without the line. DoFile fills that in.
func wrong(desc string, err error) error { return &ParseError{Desc: desc, Err: err} }

func (s *state) atom(line []byte) error {
	if len(line) < minAtomLen {
		return wrong(ErrShortLine.Error(), ErrShortLine)
	}
	chainName := readString(cols(line, fChain))
	if s.chain < 0 || chainName != s.curChain().AuthName {
		if s.model < 0 {
			return wrong(ErrBetweenModels.Error(), ErrBetweenModels)
		}
		m := s.curModel()
		name := chainName
		if s.hasTer[m.Name+"/"+chainName] {
			name += "_H" // rest of a chain after TER, usually ligands and water
		}
		s.chain = m.FindOrAddChain(name)
		m.Chains[s.chain].AuthName = chainName
		s.resi = -1
	}
	ch := s.curChain()
	rid := model.ResidueID{
		SeqID:   readSeqID(cols(line, fSeqID)),
		Name:    readString(cols(line, fResName)),
		Segment: readString(cols(line, fSegment)),
	}
	if s.resi < 0 || !ch.Residues[s.resi].Matches(rid) {
		s.resi = ch.FindOrAddResidue(rid)
	}

	a := model.Atom{
		Name:  readString(cols(line, fAtomName)),
		Group: line[0] &^ 0x20,
		Pos: cmmn.Position{
			X: readFloat(cols(line, fX)),
			Y: readFloat(cols(line, fY)),
			Z: readFloat(cols(line, fZ)),
		},
		Occ:     float32(readFloat(cols(line, fOcc))),
		BIso:    float32(readFloat(cols(line, fBIso))),
		Element: elem.FromPDB(string(cols(line, fElement)), string(cols(line, fAtomName))),
	}
	if c := line[colAltLoc]; c != ' ' {
		a.AltLoc = c
	}
	if len(line) > colCharge {
		d, sg := byteAt(line, colCharge), byteAt(line, colCharge+1)
		c, ok := readCharge(d, sg)
		if !ok {
			return wrong(ErrCharge.Error()+": "+string([]byte{d, sg}), ErrCharge)
		}
		a.Charge = c
	}
	res := &ch.Residues[s.resi]
	res.Atoms = append(res.Atoms, a)
	return nil
}

// anisou belongs to the atom just read.
func (s *state) anisou(line []byte) error {
	if s.model < 0 || s.chain < 0 || s.resi < 0 {
		return wrong(ErrAnisou.Error()+".", ErrAnisou)
	}
	res := &s.curChain().Residues[s.resi]
	if len(res.Atoms) == 0 {
		return wrong(ErrAnisou.Error()+".", ErrAnisou)
	}
	a := &res.Atoms[len(res.Atoms)-1]
	if a.U11 != 0 {
		return wrong("Duplicated ANISOU record or not directly after ATOM/HETATM.", ErrAnisou)
	}
	u := [6]*float32{&a.U11, &a.U22, &a.U33, &a.U12, &a.U13, &a.U23}
	for i, f := range fAniso {
		*u[i] = float32(readInt(cols(line, f))) * 1e-4
	}
	return nil
}

func (s *state) seqres(line []byte) {
	ei := s.ents.forChain(readString(cols(line, fSeqresChain)), model.EntityUnknown)
	ent := &s.ents.ents[ei]
	for i := 19; i < 68; i += 4 {
		if name := readString(cols(line, field{i, 3})); name != "" {
			ent.Sequence = append(ent.Sequence, name)
		}
	}
}

func (s *state) header(line []byte) {
	if len(line) >= 50 {
		s.st.Info["_struct_keywords.pdbx_keywords"] = rtrim(cols(line, fHeaderKw))
	}
	if len(line) >= 59 {
		s.st.Info["_pdbx_database_status.recvd_initial_deposition_date"] = pdbDate(cols(line, fHeaderDate))
	}
	if len(line) >= 66 {
		s.st.Info["_entry.id"] = string(cols(line, fHeaderID))
	}
}

// appendInfo glues continuation lines together. The text starts in
// column 11 and keeps its leading blank.
func (s *state) appendInfo(key string, line []byte) {
	if len(line) >= 10 {
		s.st.Info[key] += rtrim(line[10:])
	}
}

func (s *state) cryst1(line []byte) error {
	if len(line) >= 54 {
		var p [6]float64
		for i, f := range fCell {
			p[i] = readFloat(cols(line, f))
		}
		if err := s.st.Cell.Set(p[0], p[1], p[2], p[3], p[4], p[5]); err != nil {
			return wrong(err.Error(), err)
		}
	}
	if len(line) >= 56 {
		s.st.SpaceGroup = readString(cols(line, fSpaceGroup))
	}
	if len(line) >= 67 {
		if z := readString(cols(line, fZPdb)); z != "" {
			s.st.Info["_cell.Z_PDB"] = z
		}
	}
	return nil
}

// readMatrix puts one row of a SCALEn, MTRIXn or ORIGXn record into
// the accumulator and returns n, or 0 if the line is no good.
func (s *state) readMatrix(line []byte) int {
	if len(line) < 45 {
		return 0
	}
	n := int(line[colMatrixRow]) - '0'
	if n < 1 || n > 3 {
		return 0
	}
	row := n - 1
	for j := 0; j < 3; j++ {
		s.matrix.Mat[row][j] = readFloat(cols(line, fMatrix[j]))
	}
	v := s.matrix.Vec.Array()
	v[row] = readFloat(cols(line, fMatrix[3]))
	s.matrix.Vec = cmmn.VecFromArray(v)
	return n
}

func (s *state) modelRec(line []byte) error {
	if s.model >= 0 && s.chain >= 0 {
		return wrong("MODEL without ENDMDL?", ErrModel)
	}
	name := strconv.Itoa(readInt(cols(line, fModelNum)))
	s.model = s.st.FindOrAddModel(name)
	if len(s.curModel().Chains) > 0 {
		return wrong("duplicate MODEL number: "+name, ErrModel)
	}
	s.chain, s.resi = -1, -1
	return nil
}

// finish settles entities, marks terminated chains as polymers, lets
// the structure tidy itself and then resolves the deferred records.
func (s *state) finish() {
	st := s.st
	s.ents.finalize(st)
	for mi := range st.Models {
		m := &st.Models[mi]
		for ci := range m.Chains {
			ch := &m.Chains[ci]
			if s.hasTer[m.Name+"/"+ch.Name] && ch.Entity >= 0 {
				st.Entities[ch.Entity].Type = model.EntityPolymer
			}
		}
	}
	if !st.Finish() && st.SpaceGroup != "" && st.Cell.IsCrystal() {
		s.log.Warn("space group not in table, no symmetry images",
			logging.String("name", st.Name), logging.String("sg", st.SpaceGroup))
	}
	processConn(st, s.conn, s.log)
}
