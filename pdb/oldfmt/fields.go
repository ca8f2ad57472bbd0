package oldfmt

import (
	"github.com/andrew-torda/pdbcell/pdb/model"
)

// field is a zero based column range. Everything in the old format
// lives at a fixed place on the line.
type field struct{ off, width int }

// Where things are. Offsets are zero based, so the PDB documentation
// column 13 is offset 12.
var (
	fAtomName = field{12, 4}
	fResName  = field{17, 3}
	fChain    = field{20, 2}
	fSeqID    = field{22, 5}
	fX        = field{30, 8}
	fY        = field{38, 8}
	fZ        = field{46, 8}
	fOcc      = field{54, 6}
	fBIso     = field{60, 6}
	fSegment  = field{72, 4}
	fElement  = field{76, 2}
	fAniso    = [6]field{{28, 7}, {35, 7}, {42, 7}, {49, 7}, {56, 7}, {63, 7}}

	fSeqresChain = field{10, 2}
	fCell        = [6]field{{6, 9}, {15, 9}, {24, 9}, {33, 7}, {40, 7}, {47, 7}}
	fSpaceGroup  = field{55, 11}
	fZPdb        = field{66, 4}
	fMatrix      = [4]field{{10, 10}, {20, 10}, {30, 10}, {45, 10}}
	fNcsID       = field{7, 3}
	fModelNum    = field{10, 4}
	fHeaderKw    = field{10, 40}
	fHeaderDate  = field{50, 9}
	fHeaderID    = field{62, 4}
	fRemarkNum   = field{6, 4}

	// SSBOND and CISPEP share the layout of the first residue.
	fConnRes1   = field{11, 3}
	fConnChain1 = field{14, 2}
	fConnSeq1   = field{17, 5}
	fConnRes2   = field{25, 3}
	fConnChain2 = field{28, 2}
	fConnSeq2   = field{31, 5}
)

const (
	colAltLoc    = 16
	colCharge    = 78
	colNcsGiven  = 59
	colMatrixRow = 5
)

// cols returns the part of the line covered by f. If the line is
// short, the slice is short or empty.
func cols(line []byte, f field) []byte {
	if f.off >= len(line) {
		return nil
	}
	end := f.off + f.width
	if end > len(line) {
		end = len(line)
	}
	return line[f.off:end]
}

// byteAt gives a blank past the end of the line.
func byteAt(line []byte, i int) byte {
	if i < len(line) {
		return line[i]
	}
	return ' '
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// readInt skips leading blanks, takes an optional sign and then as
// many digits as there are. Anything else ends the number, so junk
// reads as zero rather than an error.
func readInt(b []byte) int {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	sign := 1
	if i < len(b) {
		if b[i] == '-' {
			sign = -1
			i++
		} else if b[i] == '+' {
			i++
		}
	}
	n := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		n = n*10 + int(b[i]-'0')
	}
	return sign * n
}

// readFloat is readInt with an optional fraction. No exponents, they
// do not occur in fixed columns.
func readFloat(b []byte) float64 {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	sign := 1.0
	if i < len(b) {
		if b[i] == '-' {
			sign = -1
			i++
		} else if b[i] == '+' {
			i++
		}
	}
	d := 0.0
	for ; i < len(b) && isDigit(b[i]); i++ {
		d = d*10 + float64(b[i]-'0')
	}
	if i < len(b) && b[i] == '.' {
		mult := 0.1
		for i++; i < len(b) && isDigit(b[i]); i++ {
			d += mult * float64(b[i]-'0')
			mult *= 0.1
		}
	}
	return sign * d
}

// readString trims both ends and stops at an end of line or NUL.
func readString(b []byte) string {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	for i, c := range b {
		if c == '\n' || c == '\r' || c == 0 {
			b = b[:i]
			break
		}
	}
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return string(b)
}

// rtrim keeps leading blanks. Continuation lines of TITLE depend on
// them.
func rtrim(b []byte) string {
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return string(b)
}

// readBase36 stops at the first character that is not a base 36
// digit.
func readBase36(b []byte) int {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	n := 0
	for ; i < len(b); i++ {
		c := b[i]
		var d int
		switch {
		case isDigit(c):
			d = int(c - '0')
		case c >= 'A' && c <= 'Z':
			d = int(c-'A') + 10
		case c >= 'a' && c <= 'z':
			d = int(c-'a') + 10
		default:
			return n
		}
		n = n*36 + d
	}
	return n
}

// hybrid36Offset maps "A000" to 10000.
const hybrid36Offset = 10*36*36*36 - 10000

// readSeqID takes the four column residue number and the insertion
// code after it. Numbers that start with a letter are hybrid-36.
func readSeqID(b []byte) model.SeqID {
	var id model.SeqID
	num := b
	if len(num) > 4 {
		num = num[:4]
	}
	if len(num) > 0 && num[0] >= 'A' {
		id.Num = readBase36(num) - hybrid36Offset
	} else {
		id.Num = readInt(num)
	}
	if len(b) > 4 && b[4] != ' ' && b[4] != 0 {
		id.ICode = b[4]
	}
	return id
}

// readCharge takes columns 79 and 80. "2+" is standard, "+2" turns
// up too.
func readCharge(digit, sign byte) (int8, bool) {
	if digit == ' ' && sign == ' ' {
		return 0, true
	}
	if isDigit(sign) {
		digit, sign = sign, digit
	}
	if isDigit(digit) {
		if sign != '+' && sign != '-' && sign != 0 && !isSpace(sign) {
			return 0, false
		}
		c := int8(digit - '0')
		if sign == '-' {
			c = -c
		}
		return c, true
	}
	return 0, true
}
