package ftdiflash

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Save modes.
const (
	ModeBinary = "binary"
	ModeText   = "text"
)

const hexDumpWidth = 16

// Save writes the buffered data to path. ModeBinary writes the raw bytes;
// ModeText writes a hex dump with hexDumpWidth bytes per line. Any other
// mode fails with ErrInvalidMode before the file is created.
func (r *FlashReader) Save(path, mode string) error {
	switch mode {
	case ModeBinary:
		r.log.WithFields(logrus.Fields{"path": path, "bytes": len(r.buf)}).Info("writing binary dump")
		return os.WriteFile(path, r.buf, 0644)
	case ModeText:
		var b bytes.Buffer
		if err := writeHexDump(&b, r.buf, hexDumpWidth); err != nil {
			return err
		}
		r.log.WithFields(logrus.Fields{"path": path, "bytes": len(r.buf)}).Info("writing hex dump")
		return os.WriteFile(path, b.Bytes(), 0644)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// Show writes the buffered data to w as a hex dump with chunkSize bytes per
// line. A non-positive chunkSize falls back to hexDumpWidth.
func (r *FlashReader) Show(w io.Writer, chunkSize int) error {
	if len(r.buf) == 0 {
		r.log.Warn("no data to display")
		return nil
	}
	return writeHexDump(w, r.buf, chunkSize)
}

// writeHexDump emits lines like "0x00000010: DE AD BE EF".
func writeHexDump(w io.Writer, data []byte, width int) error {
	if width <= 0 {
		width = hexDumpWidth
	}
	for off := 0; off < len(data); off += width {
		line := data[off:min(off+width, len(data))]
		cols := make([]string, len(line))
		for i, b := range line {
			cols[i] = fmt.Sprintf("%02X", b)
		}
		if _, err := fmt.Fprintf(w, "0x%08X: %s\n", off, strings.Join(cols, " ")); err != nil {
			return err
		}
	}
	return nil
}
