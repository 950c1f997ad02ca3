package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmechlin/ftdiflash"
)

var (
	readAddr   uint32
	readSize   uint32
	readChunk  int
	readOut    string
	readFormat string
	readCRC    bool
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Dump a byte range from the flash chip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if readSize == 0 {
			return fmt.Errorf("size must be positive")
		}

		r, err := openReader()
		if err != nil {
			return err
		}
		defer r.Close()

		if err := r.PowerUp(); err != nil {
			return fmt.Errorf("flash power up failed: %w", err)
		}
		defer r.PowerDown()

		id, err := r.JEDECID()
		if err != nil {
			return fmt.Errorf("read JEDEC ID failed: %w", err)
		}
		if id.Name() == "" {
			fmt.Fprintf(os.Stderr, "unknown flash ID (%s)\n", id)
		}

		end := readAddr + readSize - 1
		if err := r.ReadRange(readAddr, end, readChunk); err != nil {
			return fmt.Errorf("read flash failed: %w", err)
		}
		if readCRC {
			fmt.Printf("crc32 %08X\n", r.Checksum())
		}

		if readOut == "" {
			return r.Show(os.Stdout, 16)
		}
		if err := r.Save(readOut, readFormat); err != nil {
			return fmt.Errorf("save failed: %w", err)
		}
		return nil
	},
}

func init() {
	fs := readCmd.Flags()
	fs.Uint32Var(&readAddr, "addr", 0, "start address")
	fs.Uint32Var(&readSize, "size", 0x100000, "number of bytes to read")
	fs.IntVar(&readChunk, "chunk", 256, "bytes per SPI transaction")
	fs.StringVarP(&readOut, "out", "o", "", "output file (default: hex dump to stdout)")
	fs.StringVar(&readFormat, "format", ftdiflash.ModeBinary, `output file format: "binary" or "text"`)
	fs.BoolVar(&readCRC, "crc", false, "print CRC-32 of the dump")
	rootCmd.AddCommand(readCmd)
}
