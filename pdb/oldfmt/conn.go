package oldfmt

import (
	"strconv"

	"github.com/andrew-torda/pdbcell/pdb/model"
	"github.com/andrew-torda/pdbcell/pkg/logging"
)

// processConn runs after everything is read, since SSBOND and CISPEP
// come before the atoms they mention. Records that name residues we
// do not have are dropped.
func processConn(st *model.Structure, recs [][]byte, log logging.Logger) {
	nDisulf := 0
	for _, r := range recs {
		rid := model.ResidueID{SeqID: readSeqID(cols(r, fConnSeq1)), Name: readString(cols(r, fConnRes1))}
		chName := readString(cols(r, fConnChain1))
		switch kindOf(r) {
		case recSsbond:
			rid2 := model.ResidueID{SeqID: readSeqID(cols(r, fConnSeq2)), Name: readString(cols(r, fConnRes2))}
			chName2 := readString(cols(r, fConnChain2))
			for mi := range st.Models {
				m := &st.Models[mi]
				c1, c2 := m.FindChain(chName), m.FindChain(chName2)
				if c1 < 0 || c2 < 0 {
					continue
				}
				r1 := m.Chains[c1].FindResidue(rid)
				r2 := m.Chains[c2].FindResidue(rid2)
				if r1 < 0 || r2 < 0 {
					log.Debug("SSBOND residue missing",
						logging.String("model", m.Name), logging.String("res1", chName+"/"+rid.SeqID.String()),
						logging.String("res2", chName2+"/"+rid2.SeqID.String()))
					continue
				}
				nDisulf++
				c := model.Connection{
					ID:   model.ConnDisulf + strconv.Itoa(nDisulf),
					Type: model.ConnDisulf,
					Res1: model.ResidueRef{Chain: c1, Residue: r1},
					Res2: model.ResidueRef{Chain: c2, Residue: r2},
				}
				m.Residue(c.Res1).Conn = append(m.Residue(c.Res1).Conn, "1 "+c.ID)
				m.Residue(c.Res2).Conn = append(m.Residue(c.Res2).Conn, "2 "+c.ID)
				m.Connections = append(m.Connections, c)
			}
		case recCispep:
			for mi := range st.Models {
				m := &st.Models[mi]
				if ci := m.FindChain(chName); ci >= 0 {
					if ri := m.Chains[ci].FindResidue(rid); ri >= 0 {
						m.Chains[ci].Residues[ri].IsCis = true
					}
				}
			}
		}
	}
}
