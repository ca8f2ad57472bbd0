// Package brokenio wraps an io.ReadCloser so that it goes wrong on
// demand. Tests use it to check that readers pass on I/O errors
// rather than returning half a structure.
//
// Typical use:
//
//	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(s)))
//	rdr.SetFailAfter(100)
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what the reader returns when it decides to fail.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdrClsr counts what passes through. failAfter < 0 means never
// fail on byte count. probFail is the chance that any one Read fails.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser
	failAfter int
	probFail  float32
	rng       *rand.Rand
	nCalled   int
	nByte     int
}

// NewReader returns a reader that behaves like rIn until told
// otherwise.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, failAfter: -1, rng: rand.New(rand.NewSource(1))}
}

// SetFailAfter makes the reader hand out n bytes and then fail.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetProbFail sets the chance, 0 to 1, of a Read failing.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetSeed makes random failures repeatable.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rng = rand.New(rand.NewSource(seed)) }

func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rng.Float32() < r.probFail {
		return 0, fmt.Errorf("%w after %d bytes", ErrBroken, r.nByte)
	}
	n, err := r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// NByte says how much has been read so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
