package ftdiflash

import "github.com/snksoft/crc"

var crcTable = crc.NewTable(crc.CRC32)

// Checksum returns the CRC-32 of the buffered data, for comparing dumps
// across runs without diffing the files.
func (r *FlashReader) Checksum() uint32 {
	h := crc.NewHashWithTable(crcTable)
	h.Update(r.buf)
	return h.CRC32()
}
