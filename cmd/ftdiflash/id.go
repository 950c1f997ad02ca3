package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var idUnique bool

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Print the identifiers of the attached flash chip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		fmt.Printf("JEDEC ID: %s\t%s\n", id, id.Name())

		mfr, dev, err := r.ReadManufacturerDeviceID()
		if err != nil {
			return fmt.Errorf("read manufacturer/device ID failed: %w", err)
		}
		fmt.Printf("Manufacturer: 0x%02X  Device: 0x%02X\n", mfr, dev)

		if idUnique {
			uid, err := r.ReadUniqueID()
			if err != nil {
				return fmt.Errorf("read unique ID failed: %w", err)
			}
			fmt.Printf("Unique ID: %X\n", uid)
		}
		if id.Name() == "" {
			fmt.Fprintf(os.Stderr, "unknown flash ID (%s)\n", id)
		}
		return nil
	},
}

func init() {
	idCmd.Flags().BoolVar(&idUnique, "uid", false, "also read the 64-bit unique serial number")
	rootCmd.AddCommand(idCmd)
}
