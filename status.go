package ftdiflash

import (
	"fmt"
	"strings"
)

// StatusRegister is the chip's first status register.
//
//	Bits| [W25Q128|7.1 Status Registers]
//	----+-------------------------------
//	7   | SRP: Status Register Protect
//	6   | SEC: Sector protect
//	5   | TB: Top/Bottom protect
//	4:2 | BP2-0: Block Protect bit 2-0
//	1   | WEL: Write Enable Latch
//	0   | BUSY: Erase/Write in progress
type StatusRegister byte

func (sr StatusRegister) StatusRegisterProtect() bool { return sr&(1<<7) != 0 }
func (sr StatusRegister) SectorProtect() bool         { return sr&(1<<6) != 0 }
func (sr StatusRegister) TopBottom() bool             { return sr&(1<<5) != 0 }
func (sr StatusRegister) BlockProtect() byte          { return byte(sr>>2) & 0b111 }
func (sr StatusRegister) WriteEnabled() bool          { return sr&(1<<1) != 0 }
func (sr StatusRegister) Busy() bool                  { return sr&(1<<0) != 0 }

var statusFlagNames = []struct {
	bit  byte
	name string
}{
	{7, "SRP"},
	{6, "SEC"},
	{5, "TB"},
	{4, "BP2"},
	{3, "BP1"},
	{2, "BP0"},
	{1, "WEL"},
	{0, "BUSY"},
}

func (sr StatusRegister) String() string {
	b := fmt.Sprintf("%08b", byte(sr))
	var s []string
	for _, f := range statusFlagNames {
		if sr&(1<<f.bit) != 0 {
			s = append(s, f.name)
		}
	}
	if len(s) == 0 {
		return b
	}
	return b + " " + strings.Join(s, ",")
}

// ReadStatusRegister reads and decodes status register 1.
func (r *FlashReader) ReadStatusRegister() (StatusRegister, error) {
	resp, err := r.exchange("read status register", []byte{cmdReadStatusRegister}, 1)
	if err != nil {
		return 0, err
	}
	return StatusRegister(resp[0]), nil
}
