package model

import (
	"github.com/andrew-torda/pdbcell/pdb/cell"
)

// Finish tidies up after reading. The reader always opens model "1"
// before it has seen anything, so if that is empty and there are
// other models, it goes. If we have a real cell and know the space
// group, the symmetry images are set up. The return value says if the
// space group was found in our table.
func (st *Structure) Finish() bool {
	if len(st.Models) > 1 && len(st.Models[0].Chains) == 0 {
		st.Models = st.Models[1:]
	}
	if st.SpaceGroup == "" || !st.Cell.IsCrystal() {
		return false
	}
	ops, ok := cell.SpaceGroupOps(st.SpaceGroup)
	if !ok {
		return false
	}
	st.Cell.SetImages(ops)
	return true
}
