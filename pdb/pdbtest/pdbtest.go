// Package pdbtest has small PDB files and helpers for tests in the
// other packages. None of it is used outside tests.
package pdbtest

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

// WrtTemp writes s to a file called name in a fresh temporary
// directory and returns the full path. The directory goes away with
// the test.
func WrtTemp(t testing.TB, name, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		t.Fatal("writing temp file", err)
	}
	return path
}

// WrtTempGz is WrtTemp, but the contents are gzipped.
func WrtTempGz(t testing.TB, name, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fp, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fp)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fp.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// Gzip returns s compressed, for feeding to http test servers.
func Gzip(t testing.TB, s string) []byte {
	t.Helper()
	path := WrtTempGz(t, "x.gz", s)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
