package ftdiflash

import (
	"errors"
	"fmt"
)

var (
	// ErrAddressRange reports an empty or inverted read range, an address
	// beyond the chip's 24-bit space, or a non-positive chunk size.
	ErrAddressRange = errors.New("invalid address range")

	// ErrInvalidMode reports an unknown Save mode.
	ErrInvalidMode = errors.New("invalid save mode")

	// ErrShortRead reports a transport that returned fewer bytes than requested.
	ErrShortRead = errors.New("short read")
)

// TransportError wraps a failure of the underlying SPI bridge. Op names the
// flash operation that was in flight.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("spi %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
