package cell

import (
	"strings"

	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

// A spaceGroup is the list of general positions without centering,
// plus the centering vectors.
type spaceGroup struct {
	ops    []string
	center []cmmn.Vec3
}

var (
	centerP = []cmmn.Vec3{{}}
	centerC = []cmmn.Vec3{{}, {X: 0.5, Y: 0.5}}
	centerI = []cmmn.Vec3{{}, {X: 0.5, Y: 0.5, Z: 0.5}}
	centerF = []cmmn.Vec3{{}, {Y: 0.5, Z: 0.5}, {X: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5}}
	centerH = []cmmn.Vec3{{}, {X: 2. / 3, Y: 1. / 3, Z: 1. / 3}, {X: 1. / 3, Y: 2. / 3, Z: 2. / 3}}
)

var (
	opsP1      = []string{"x,y,z"}
	opsP2      = []string{"x,y,z", "-x,y,-z"}
	opsP21     = []string{"x,y,z", "-x,y+1/2,-z"}
	opsP222    = []string{"x,y,z", "-x,-y,z", "-x,y,-z", "x,-y,-z"}
	opsP2221   = []string{"x,y,z", "-x,-y,z+1/2", "-x,y,-z+1/2", "x,-y,-z"}
	opsP21212  = []string{"x,y,z", "-x,-y,z", "-x+1/2,y+1/2,-z", "x+1/2,-y+1/2,-z"}
	opsP212121 = []string{"x,y,z", "-x+1/2,-y,z+1/2", "-x,y+1/2,-z+1/2", "x+1/2,-y+1/2,-z"}
	opsP4      = []string{"x,y,z", "-x,-y,z", "-y,x,z", "y,-x,z"}
	opsP41     = []string{"x,y,z", "-x,-y,z+1/2", "-y,x,z+1/4", "y,-x,z+3/4"}
	opsP42     = []string{"x,y,z", "-x,-y,z", "-y,x,z+1/2", "y,-x,z+1/2"}
	opsP43     = []string{"x,y,z", "-x,-y,z+1/2", "-y,x,z+3/4", "y,-x,z+1/4"}
	opsP422    = []string{"x,y,z", "-x,-y,z", "-y,x,z", "y,-x,z", "-x,y,-z", "x,-y,-z", "y,x,-z", "-y,-x,-z"}
	opsP4212   = []string{"x,y,z", "-x,-y,z", "-y+1/2,x+1/2,z", "y+1/2,-x+1/2,z", "-x+1/2,y+1/2,-z", "x+1/2,-y+1/2,-z", "y,x,-z", "-y,-x,-z"}
	opsP4122   = []string{"x,y,z", "-x,-y,z+1/2", "-y,x,z+1/4", "y,-x,z+3/4", "-x,y,-z", "x,-y,-z+1/2", "y,x,-z+3/4", "-y,-x,-z+1/4"}
	opsP4322   = []string{"x,y,z", "-x,-y,z+1/2", "-y,x,z+3/4", "y,-x,z+1/4", "-x,y,-z", "x,-y,-z+1/2", "y,x,-z+1/4", "-y,-x,-z+3/4"}
	opsP41212  = []string{"x,y,z", "-x,-y,z+1/2", "-y+1/2,x+1/2,z+1/4", "y+1/2,-x+1/2,z+3/4", "-x+1/2,y+1/2,-z+1/4", "x+1/2,-y+1/2,-z+3/4", "y,x,-z", "-y,-x,-z+1/2"}
	opsP43212  = []string{"x,y,z", "-x,-y,z+1/2", "-y+1/2,x+1/2,z+3/4", "y+1/2,-x+1/2,z+1/4", "-x+1/2,y+1/2,-z+3/4", "x+1/2,-y+1/2,-z+1/4", "y,x,-z", "-y,-x,-z+1/2"}
	opsP3      = []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z"}
	opsP31     = []string{"x,y,z", "-y,x-y,z+1/3", "-x+y,-x,z+2/3"}
	opsP32     = []string{"x,y,z", "-y,x-y,z+2/3", "-x+y,-x,z+1/3"}
	opsP321    = []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z", "y,x,-z", "x-y,-y,-z", "-x,-x+y,-z"}
	opsP3121   = []string{"x,y,z", "-y,x-y,z+1/3", "-x+y,-x,z+2/3", "y,x,-z", "x-y,-y,-z+2/3", "-x,-x+y,-z+1/3"}
	opsP3221   = []string{"x,y,z", "-y,x-y,z+2/3", "-x+y,-x,z+1/3", "y,x,-z", "x-y,-y,-z+1/3", "-x,-x+y,-z+2/3"}
	opsR3      = []string{"x,y,z", "z,x,y", "y,z,x"}
	opsR32     = []string{"x,y,z", "z,x,y", "y,z,x", "-y,-x,-z", "-x,-z,-y", "-z,-y,-x"}
	opsP6      = []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z", "-x,-y,z", "y,-x+y,z", "x-y,x,z"}
	opsP61     = []string{"x,y,z", "-y,x-y,z+1/3", "-x+y,-x,z+2/3", "-x,-y,z+1/2", "y,-x+y,z+5/6", "x-y,x,z+1/6"}
	opsP65     = []string{"x,y,z", "-y,x-y,z+2/3", "-x+y,-x,z+1/3", "-x,-y,z+1/2", "y,-x+y,z+1/6", "x-y,x,z+5/6"}
	opsP63     = []string{"x,y,z", "-y,x-y,z", "-x+y,-x,z", "-x,-y,z+1/2", "y,-x+y,z+1/2", "x-y,x,z+1/2"}
	opsP23     = []string{"x,y,z", "-x,-y,z", "-x,y,-z", "x,-y,-z", "z,x,y", "z,-x,-y", "-z,-x,y", "-z,x,-y", "y,z,x", "-y,z,-x", "y,-z,-x", "-y,-z,x"}
	opsP213    = []string{"x,y,z", "-x+1/2,-y,z+1/2", "-x,y+1/2,-z+1/2", "x+1/2,-y+1/2,-z", "z,x,y", "z+1/2,-x+1/2,-y", "-z+1/2,-x,y+1/2", "-z,x+1/2,-y+1/2", "y,z,x", "-y,z+1/2,-x+1/2", "y+1/2,-z+1/2,-x", "-y+1/2,-z,x+1/2"}
)

// spaceGroups is keyed by the Hermann-Mauguin symbol with the spaces
// removed. Only the groups that make up nearly all of the PDB are here.
var spaceGroups = map[string]spaceGroup{
	"P1":      {opsP1, centerP},
	"P121":    {opsP2, centerP},
	"P1211":   {opsP21, centerP},
	"C121":    {opsP2, centerC},
	"I121":    {opsP2, centerI},
	"P222":    {opsP222, centerP},
	"P2221":   {opsP2221, centerP},
	"P21212":  {opsP21212, centerP},
	"P212121": {opsP212121, centerP},
	"C222":    {opsP222, centerC},
	"C2221":   {opsP2221, centerC},
	"I222":    {opsP222, centerI},
	"I212121": {opsP212121, centerI},
	"F222":    {opsP222, centerF},
	"P4":      {opsP4, centerP},
	"P41":     {opsP41, centerP},
	"P42":     {opsP42, centerP},
	"P43":     {opsP43, centerP},
	"I4":      {opsP4, centerI},
	"P422":    {opsP422, centerP},
	"P4212":   {opsP4212, centerP},
	"P4122":   {opsP4122, centerP},
	"P4322":   {opsP4322, centerP},
	"P41212":  {opsP41212, centerP},
	"P43212":  {opsP43212, centerP},
	"I422":    {opsP422, centerI},
	"P3":      {opsP3, centerP},
	"P31":     {opsP31, centerP},
	"P32":     {opsP32, centerP},
	"P321":    {opsP321, centerP},
	"P3121":   {opsP3121, centerP},
	"P3221":   {opsP3221, centerP},
	"H3":      {opsP3, centerH},
	"H32":     {opsP321, centerH},
	"R3":      {opsR3, centerP},
	"R32":     {opsR32, centerP},
	"P6":      {opsP6, centerP},
	"P61":     {opsP61, centerP},
	"P65":     {opsP65, centerP},
	"P63":     {opsP63, centerP},
	"P23":     {opsP23, centerP},
	"I23":     {opsP23, centerI},
	"P213":    {opsP213, centerP},
}

// Short forms seen in CRYST1 records.
var sgAlias = map[string]string{
	"P2":  "P121",
	"P21": "P1211",
	"C2":  "C121",
	"I2":  "I121",
}

func sgKey(hm string) string {
	k := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(hm), " ", ""))
	if a, ok := sgAlias[k]; ok {
		return a
	}
	return k
}

// SpaceGroupOps returns every operator of the space group, identity
// first, with centering expanded. ok is false if the symbol is not in
// our table.
func SpaceGroupOps(hm string) (ops []cmmn.FTransform, ok bool) {
	sg, ok := spaceGroups[sgKey(hm)]
	if !ok {
		return nil, false
	}
	for _, c := range sg.center {
		for _, s := range sg.ops {
			op, err := ParseTriplet(s)
			if err != nil {
				continue // TestTableClosed keeps this from happening
			}
			op.Vec = wrapVec(op.Vec.Add(c))
			ops = append(ops, op)
		}
	}
	return ops, true
}

func wrapVec(v cmmn.Vec3) cmmn.Vec3 {
	f := cmmn.Fractional(v)
	f.WrapToUnit()
	return cmmn.Vec3(f)
}
