package ftdiflash

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseHexDump inverts writeHexDump's format: "0x00000010: DE AD BE EF".
func parseHexDump(t *testing.T, s string) []byte {
	t.Helper()
	var out []byte
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}
		_, rest, ok := strings.Cut(line, ": ")
		require.True(t, ok, "malformed line %q", line)
		for _, col := range strings.Fields(rest) {
			b, err := strconv.ParseUint(col, 16, 8)
			require.NoError(t, err)
			out = append(out, byte(b))
		}
	}
	return out
}

func readerWithData(t *testing.T, size int) *FlashReader {
	t.Helper()
	r := New(newMockTransport(size), nil)
	require.NoError(t, r.ReadRange(0, uint32(size)-1, 16))
	return r
}

func TestSaveBinaryRoundTrip(t *testing.T) {
	r := readerWithData(t, 300)
	path := filepath.Join(t.TempDir(), "dump.bin")

	require.NoError(t, r.Save(path, ModeBinary))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.Data(), got)
}

func TestSaveTextRoundTrip(t *testing.T) {
	r := readerWithData(t, 43) // not a multiple of the line width
	path := filepath.Join(t.TempDir(), "dump.txt")

	require.NoError(t, r.Save(path, ModeText))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.Data(), parseHexDump(t, string(got)))
}

func TestSaveInvalidMode(t *testing.T) {
	r := readerWithData(t, 16)
	path := filepath.Join(t.TempDir(), "dump.xml")

	err := r.Save(path, "xml")
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file must be created on invalid mode")
}

func TestShow(t *testing.T) {
	m := newMockTransport(0)
	m.flash = []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := New(m, nil)
	require.NoError(t, r.ReadRange(0, 4, 5))

	var b bytes.Buffer
	require.NoError(t, r.Show(&b, 2))

	want := "0x00000000: 01 02\n" +
		"0x00000002: 03 04\n" +
		"0x00000004: 05\n"
	assert.Equal(t, want, b.String())
}

func TestShowDefaultsWidth(t *testing.T) {
	r := readerWithData(t, 32)

	var b bytes.Buffer
	require.NoError(t, r.Show(&b, 0))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	assert.Len(t, lines, 2) // 32 bytes at the default 16 per line
	assert.Equal(t, r.Data(), parseHexDump(t, b.String()))
}

func TestShowEmptyBuffer(t *testing.T) {
	r := New(newMockTransport(0), nil)

	var b bytes.Buffer
	require.NoError(t, r.Show(&b, 16))
	assert.Zero(t, b.Len())
}
