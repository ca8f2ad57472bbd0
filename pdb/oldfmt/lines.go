package oldfmt

import (
	"bufio"
	"io"
)

// MaxLineLen is the most of a line we keep. A proper record is 80
// characters, the rest is thrown away.
const MaxLineLen = 82

const bufSize = 64 * 1024

// lineReader hands out lines without their terminator. Each line is
// only good until the next call.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
	n   int // line number of the last line returned
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r:   bufio.NewReaderSize(r, bufSize),
		buf: make([]byte, 0, MaxLineLen+2),
	}
}

func (lr *lineReader) next() ([]byte, error) {
	line := lr.buf[:0]
	got := false
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if len(chunk) > 0 {
			got = true
		}
		if room := cap(line) - len(line); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			line = append(line, chunk...)
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && got {
			break
		}
		if err != nil {
			return nil, err
		}
		break
	}
	lr.n++
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	if len(line) > MaxLineLen {
		line = line[:MaxLineLen]
	}
	return line, nil
}
