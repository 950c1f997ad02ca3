package ftdiflash

import "fmt"

// JEDECID is the standardized 3-byte identifier (manufacturer + device)
// returned by the 0x9F command.
type JEDECID [3]byte

func (id JEDECID) String() string {
	return fmt.Sprintf("%02X%02X%02X", id[0], id[1], id[2])
}

// Manufacturer returns the JEDEC manufacturer byte.
func (id JEDECID) Manufacturer() byte { return id[0] }

// Name returns the chip name for known IDs, or "" for unknown chips.
func (id JEDECID) Name() string { return knownFlashIDs[id] }

var knownFlashIDs = map[JEDECID]string{
	{0x20, 0xBA, 0x16}: "Micron N25Q032",
	{0xC2, 0x20, 0x17}: "Macronix MX25L6406E",
	{0xC2, 0x20, 0x18}: "Macronix MX25L12805D",
	{0xEF, 0x40, 0x16}: "Winbond W25Q32FV",
	{0xEF, 0x40, 0x17}: "Winbond W25Q64FV",
	{0xEF, 0x40, 0x18}: "Winbond W25Q128FV",
	{0xEF, 0x70, 0x18}: "Winbond W25Q128JVIM",
}
