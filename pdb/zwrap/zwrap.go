// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// WrapMaybe peeks at the first two bytes, so it is happy with streams
// that cannot seek, like an http body.
package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader // what we read from if not compressed
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.rdr.Read(p)
}

// Gzipped says if we are decompressing.
func (fc *FpGzip) Gzipped() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer or http stream and insists
// that it is gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: fp, zrdr: zrdr}, nil
}

// WrapMaybe decides if the underlying stream is compressed and wraps
// it if necessary. An empty stream is fine and reads as empty.
func WrapMaybe(fpIn io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fpIn)
	magic, err := br.Peek(len(gzMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	fc := &FpGzip{fp: fpIn, rdr: br}
	if bytes.Equal(magic, gzMagic) {
		if fc.zrdr, err = gzip.NewReader(br); err != nil {
			return nil, err
		}
	}
	return fc, nil
}
