package oldfmt

type recKind byte

const (
	recOther recKind = iota
	recAtom          // ATOM and HETATM
	recAnisou
	recRemark
	recConect
	recSeqres
	recHeader
	recTitle
	recKeywds
	recExpdta
	recCryst1
	recMtrix
	recModel
	recEndmdl
	recTer
	recScale
	recOrigx
	recSsbond
	recCispep
	recEnd
)

// recKey packs the first four bytes, upper cased. Masking out 0x20
// also turns a blank into NUL, and a short line is padded with NUL,
// so "TER", "TER " and "ter" all give the same key.
func recKey(b []byte) uint32 {
	var k uint32
	for i := 0; i < 4; i++ {
		var c byte
		if i < len(b) {
			c = b[i]
		}
		k = k<<8 | uint32(c&^0x20)
	}
	return k
}

var recKinds = map[uint32]recKind{}

func init() {
	for name, k := range map[string]recKind{
		"ATOM": recAtom, "HETATM": recAtom, "ANISOU": recAnisou,
		"REMARK": recRemark, "CONECT": recConect, "SEQRES": recSeqres,
		"HEADER": recHeader, "TITLE": recTitle, "KEYWDS": recKeywds,
		"EXPDTA": recExpdta, "CRYST1": recCryst1, "MTRIXn": recMtrix,
		"MODEL": recModel, "ENDMDL": recEndmdl, "TER": recTer,
		"SCALEn": recScale, "ORIGXn": recOrigx, "SSBOND": recSsbond,
		"CISPEP": recCispep, "END": recEnd,
	} {
		recKinds[recKey([]byte(name))] = k
	}
}

func kindOf(line []byte) recKind {
	return recKinds[recKey(line)]
}
