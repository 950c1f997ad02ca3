package ftdiflash

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Flash commands:
//   - [W25Q128|8.1.2 Instruction Set Table 1]
//   - [N25Q32|Table 16: Command Set]
const (
	cmdRead               = 0x03
	cmdReadStatusRegister = 0x05
	cmdReadUniqueID       = 0x4B
	cmdReadMfrDeviceID    = 0x90
	cmdReadJEDECID        = 0x9F
	cmdReleasePowerDown   = 0xAB
	cmdPowerDown          = 0xB9
)

const maxAddress = 1<<24 - 1 // 24-bit addressing

// FlashReader owns a SPI transport and buffers the bytes of the last
// ReadRange call. It is not safe for concurrent use; exactly one reader is
// expected per process.
type FlashReader struct {
	tr  Transport
	log logrus.FieldLogger

	buf    []byte
	closed bool
}

// New returns a FlashReader driving tr. A nil log discards all output.
func New(tr Transport, log logrus.FieldLogger) *FlashReader {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &FlashReader{tr: tr, log: log}
}

// exchange issues one command frame and enforces the response length.
func (r *FlashReader) exchange(op string, cmd []byte, n int) ([]byte, error) {
	resp, err := r.tr.Exchange(cmd, n)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if len(resp) != n {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("%w: got %d bytes, want %d", ErrShortRead, len(resp), n)}
	}
	return resp, nil
}

// JEDECID reads the 3-byte JEDEC identifier from the chip.
func (r *FlashReader) JEDECID() (JEDECID, error) {
	resp, err := r.exchange("read JEDEC ID", []byte{cmdReadJEDECID}, 3)
	if err != nil {
		return JEDECID{}, err
	}
	id := JEDECID(resp)
	r.log.WithField("id", id.String()).Debug("read JEDEC ID")
	return id, nil
}

// ReadManufacturerDeviceID reads the legacy 0x90 identifier pair.
func (r *FlashReader) ReadManufacturerDeviceID() (mfr, dev byte, err error) {
	resp, err := r.exchange("read manufacturer/device ID", []byte{cmdReadMfrDeviceID, 0, 0, 0}, 2)
	if err != nil {
		return 0, 0, err
	}
	return resp[0], resp[1], nil
}

// ReadUniqueID reads the factory-programmed 64-bit serial number.
// [W25Q128|8.2.28 Read Unique ID Number]
func (r *FlashReader) ReadUniqueID() ([8]byte, error) {
	resp, err := r.exchange("read unique ID", []byte{cmdReadUniqueID, 0, 0, 0, 0}, 8)
	if err != nil {
		return [8]byte{}, err
	}
	return [8]byte(resp), nil
}

// ReadRange reads the inclusive address range [start, end] in chunkSize
// steps and replaces the buffered data with the result. On any transport
// failure the partial data is discarded and the buffer is left empty, so a
// non-empty buffer always holds a complete dump.
func (r *FlashReader) ReadRange(start, end uint32, chunkSize int) error {
	if start > end {
		return fmt.Errorf("%w: start 0x%06X > end 0x%06X", ErrAddressRange, start, end)
	}
	if end > maxAddress {
		return fmt.Errorf("%w: end 0x%X out of 24-bit range", ErrAddressRange, end)
	}
	if chunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrAddressRange, chunkSize)
	}

	r.log.WithFields(logrus.Fields{
		"start": fmt.Sprintf("0x%06X", start),
		"end":   fmt.Sprintf("0x%06X", end),
		"chunk": chunkSize,
	}).Info("reading flash")

	r.buf = make([]byte, 0, int(end-start)+1)
	for addr := start; addr <= end; addr += uint32(chunkSize) {
		n := chunkSize
		if left := int(end-addr) + 1; n > left {
			n = left
		}

		cmd := []byte{cmdRead, byte(addr >> 16), byte(addr >> 8), byte(addr)}
		chunk, err := r.exchange("read data", cmd, n)
		if err != nil {
			r.buf = nil // discard partial data
			return err
		}
		r.buf = append(r.buf, chunk...)
		r.log.WithFields(logrus.Fields{
			"addr": fmt.Sprintf("0x%06X", addr),
			"n":    n,
		}).Debug("read chunk")
	}
	return nil
}

// PowerUp releases the chip from deep power-down.
func (r *FlashReader) PowerUp() error {
	if _, err := r.exchange("release power down", []byte{cmdReleasePowerDown}, 0); err != nil {
		return err
	}
	time.Sleep(3 * time.Microsecond) // [W25Q128|9.6 AC Electrical Characteristics: tRES1]
	return nil
}

// PowerDown puts the chip into deep power-down.
func (r *FlashReader) PowerDown() error {
	if _, err := r.exchange("power down", []byte{cmdPowerDown}, 0); err != nil {
		return err
	}
	time.Sleep(3 * time.Microsecond) // [W25Q128|9.6 AC Electrical Characteristics: tDP]
	return nil
}

// Len returns the number of buffered bytes.
func (r *FlashReader) Len() int { return len(r.buf) }

// Data returns the buffered bytes of the last successful ReadRange.
func (r *FlashReader) Data() []byte { return r.buf }

// Close releases the underlying transport. Safe to call more than once.
func (r *FlashReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.log.Debug("closing SPI transport")
	return r.tr.Close()
}
