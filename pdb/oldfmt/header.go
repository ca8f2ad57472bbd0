package oldfmt

import (
	"strconv"
	"strings"
)

var months = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04", "MAY": "05", "JUN": "06",
	"JUL": "07", "AUG": "08", "SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

// pdbDate turns 28-MAR-07 into 2007-03-28. Two digit years above 6x
// are taken as 19xx. An unknown month comes out as ??.
func pdbDate(d []byte) string {
	if len(d) < 9 {
		return ""
	}
	century := "20"
	if d[7] > '6' {
		century = "19"
	}
	m, ok := months[strings.ToUpper(string(d[3:6]))]
	if !ok {
		m = "??"
	}
	return century + string(d[7:9]) + "-" + m + "-" + string(d[0:2])
}

// resolution digs the number out of REMARK 2. Anything that does not
// parse, like NOT APPLICABLE, gives "".
func resolution(line []byte) string {
	if len(line) < 11 || readInt(cols(line, fRemarkNum)) != 2 {
		return ""
	}
	rest := strings.TrimSpace(string(line[10:]))
	const key = "RESOLUTION."
	if !strings.HasPrefix(strings.ToUpper(rest), key) {
		return ""
	}
	words := strings.Fields(rest[len(key):])
	if len(words) == 0 {
		return ""
	}
	if _, err := strconv.ParseFloat(words[0], 64); err != nil {
		return ""
	}
	return words[0]
}
