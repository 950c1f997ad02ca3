package ftdiflash

import (
	"errors"
	"fmt"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

// Transport is the SPI boundary the flash reader drives. Implementations
// hold chip select asserted for the whole transaction: the write bytes are
// clocked out first, then readLen response bytes are clocked in.
type Transport interface {
	Exchange(write []byte, readLen int) ([]byte, error)

	// Close releases the bus. Closing twice must not fail.
	Close() error
}

// Bridge is a Transport backed by an FTDI FT232H USB-to-SPI bridge.
type Bridge struct {
	FT *ftdi.FT232H

	port   spi.PortCloser
	conn   spi.Conn
	cs     gpio.PinIO // ADBUS3 Chip Select [C232HM-DS]
	closed bool
}

var hostInitialized atomic.Bool

// OpenBridge finds an FT232H device and opens an MPSSE/SPI connection with
// the given clock frequency and SPI mode.
func OpenBridge(freq physic.Frequency, mode spi.Mode) (*Bridge, error) {
	if hostInitialized.CompareAndSwap(false, true) {
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("host initialization failed: %w", err)
		}
	}

	b := &Bridge{}
	if err := b.findFT232H(); err != nil {
		return nil, err
	}

	// [C232HM-DS]
	// ADBUS0 | CLK
	// ADBUS1 | MOSI
	// ADBUS2 | MISO
	// ADBUS3 | CS
	b.cs = b.FT.D3

	port, err := b.FT.SPI()
	if err != nil {
		return nil, fmt.Errorf("failed to get SPI port: %w", err)
	}
	b.port = port

	// [FTDI AN_114|1.2] > FTDI device can only support mode 0 and mode 2 due to the limitation of MPSSE engine
	b.conn, err = port.Connect(freq, mode, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("SPI connect failed: %w", err)
	}

	return b, nil
}

func (b *Bridge) findFT232H() error {
	const (
		vendorID  = 0x0403 // FTDI
		productID = 0x6014 // FT232H
	)

	info := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&info)
		if info.VenID != vendorID || info.DevID != productID {
			continue
		}
		if ft, ok := dev.(*ftdi.FT232H); ok {
			b.FT = ft
			return nil
		}
	}

	return errors.New("FT232H device not found")
}

// Exchange performs one SPI transaction with CS assertion.
func (b *Bridge) Exchange(write []byte, readLen int) (out []byte, err error) {
	if b.closed {
		return nil, errors.New("bridge is closed")
	}

	buf := make([]byte, len(write)+readLen)
	copy(buf, write)

	if err = b.cs.Out(gpio.Low); err != nil {
		return nil, err
	}
	defer func() {
		if csErr := b.cs.Out(gpio.High); csErr != nil && err == nil {
			out, err = nil, csErr
		}
	}()
	if err = b.conn.Tx(buf, buf); err != nil {
		return nil, err
	}
	return buf[len(write):], nil
}

// Close releases the SPI port. Idempotent.
func (b *Bridge) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.port.Close()
}
