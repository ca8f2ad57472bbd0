// Test Zwrap
package zwrap_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbcell/brokenio"
	"github.com/andrew-torda/pdbcell/pdb/zwrap"
)

// both of these are "andrewsays", but the first is compressed. Write them to a file
// and check that the file opener does the right thing.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

// writeToTmp writes a byte slice to a temporary file and returns
// a file pointer.
func writeToTmp(t *testing.T, data []byte) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "del_me_testing")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	fp, err := os.Open(path)
	require.NoError(t, err)
	return fp
}

func TestWrap(t *testing.T) {
	for _, x := range gztests {
		tmpr, err := zwrap.Wrap(writeToTmp(t, x.data))
		if !x.gzipped {
			assert.Error(t, err, "Fail on not compressed file")
			continue
		}
		require.NoError(t, err, "Fail on correctly gzipped file")
		b, err := io.ReadAll(tmpr)
		assert.NoError(t, err)
		assert.Equal(t, "andrewsays", string(b[:10]))
		assert.True(t, tmpr.Gzipped())
		assert.NoError(t, tmpr.Close())
	}
}

// Calling WrapMaybe should not fail since it guesses if the file
// is compressed or not.
func TestWrapMaybe(t *testing.T) {
	for _, x := range gztests {
		tmpr, err := zwrap.WrapMaybe(writeToTmp(t, x.data))
		require.NoError(t, err, "compressed was %v", x.gzipped)
		b, err := io.ReadAll(tmpr)
		assert.NoError(t, err)
		assert.Equal(t, "andrewsayshello", strings.TrimSpace(string(b)))
		assert.Equal(t, x.gzipped, tmpr.Gzipped())
		assert.NoError(t, tmpr.Close())
	}
}

// TestNoSeek uses a stream that cannot seek.
func TestNoSeek(t *testing.T) {
	for _, x := range gztests {
		tmpr, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader(x.data)))
		require.NoError(t, err)
		b, err := io.ReadAll(tmpr)
		assert.NoError(t, err)
		assert.Equal(t, "andrewsayshello", strings.TrimSpace(string(b)))
	}
}

func TestShort(t *testing.T) {
	for _, s := range []string{"", "a"} {
		tmpr, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewBufferString(s)))
		require.NoError(t, err)
		b, err := io.ReadAll(tmpr)
		assert.NoError(t, err)
		assert.Equal(t, s, string(b))
	}
}

func TestBroken(t *testing.T) {
	r := brokenio.NewReader(io.NopCloser(bytes.NewReader(gztests[0].data)))
	r.SetFailAfter(0)
	_, err := zwrap.WrapMaybe(r)
	assert.True(t, errors.Is(err, brokenio.ErrBroken))
}
