package cell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbcell/pdb/cmmn"
)

var ErrTriplet = errors.New("bad symmetry operator")

// ParseTriplet reads an operator written the usual way, like
// "-x,y+1/2,-z" or "x-y,-y,-z+2/3".
func ParseTriplet(s string) (cmmn.FTransform, error) {
	var op cmmn.FTransform
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return op, fmt.Errorf("%w: %q needs three parts", ErrTriplet, s)
	}
	var vec [3]float64
	for row, p := range parts {
		r, t, err := parseRow(p)
		if err != nil {
			return op, fmt.Errorf("%w: %q: %v", ErrTriplet, s, err)
		}
		op.Mat[row] = r
		vec[row] = t
	}
	op.Vec = cmmn.VecFromArray(vec)
	return op, nil
}

// parseRow handles one of the three parts. It returns the matrix row
// and the translation.
func parseRow(s string) (row [3]float64, trans float64, err error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return row, 0, errors.New("empty part")
	}
	for len(s) > 0 {
		sign := 1.0
		switch s[0] {
		case '-':
			sign = -1
			s = s[1:]
		case '+':
			s = s[1:]
		}
		if s == "" {
			return row, 0, errors.New("dangling sign")
		}
		if i := strings.IndexByte("xyz", s[0]); i >= 0 {
			row[i] += sign
			s = s[1:]
			continue
		}
		n := strings.IndexAny(s, "+-xyz")
		if n < 0 {
			n = len(s)
		}
		num := s[:n]
		s = s[n:]
		v, err := parseNumber(num)
		if err != nil {
			return row, 0, err
		}
		if s != "" && strings.IndexByte("xyz", s[0]) >= 0 { // like 2x
			row[strings.IndexByte("xyz", s[0])] += sign * v
			s = s[1:]
			continue
		}
		trans += sign * v
	}
	return row, trans, nil
}

func parseNumber(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, fmt.Errorf("bad fraction %q", s)
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

// fracString writes translations as small fractions when it can.
func fracString(v float64) string {
	for _, den := range []int{2, 3, 4, 6, 8, 12} {
		n := v * float64(den)
		if r := float64(int(n + 0.5*sgn(n))); abs(n-r) < 1e-6 {
			return strconv.Itoa(int(r)) + "/" + strconv.Itoa(den)
		}
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func sgn(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func abs(x float64) float64 { return x * sgn(x) }

// Triplet writes op back in the form ParseTriplet reads.
func Triplet(op cmmn.FTransform) string {
	parts := make([]string, 3)
	vec := op.Vec.Array()
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for i, name := range "xyz" {
			m := op.Mat[row][i]
			switch {
			case m == 0:
				continue
			case m == 1:
				if b.Len() > 0 {
					b.WriteByte('+')
				}
			case m == -1:
				b.WriteByte('-')
			default:
				if m > 0 && b.Len() > 0 {
					b.WriteByte('+')
				}
				b.WriteString(strconv.FormatFloat(m, 'g', 6, 64))
			}
			b.WriteRune(name)
		}
		if t := vec[row]; t != 0 {
			if t > 0 && b.Len() > 0 {
				b.WriteByte('+')
			}
			b.WriteString(fracString(t))
		}
		if b.Len() == 0 {
			b.WriteByte('0')
		}
		parts[row] = b.String()
	}
	return strings.Join(parts, ",")
}
