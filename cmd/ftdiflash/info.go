package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/ftdi"

	"github.com/cmechlin/ftdiflash"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print FT232H device and EEPROM information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := ftdiflash.OpenBridge(physic.Frequency(freqHz)*physic.Hertz, spi.Mode(spiMode))
		if err != nil {
			return fmt.Errorf("failed to open FT232H bridge: %w", err)
		}
		defer bridge.Close()
		ft := bridge.FT

		// Reference: https://github.com/periph/cmd/tree/main/ftdi-list
		i := ftdi.Info{}
		ft.Info(&i)
		fmt.Printf("Type:            %s\n", i.Type)
		fmt.Printf("Vendor ID:       %#04x\n", i.VenID)
		fmt.Printf("Device ID:       %#04x\n", i.DevID)

		ee := ftdi.EEPROM{}
		if err := ft.EEPROM(&ee); err != nil {
			return fmt.Errorf("failed to read EEPROM: %w", err)
		}

		fmt.Printf("Manufacturer:    %s\n", ee.Manufacturer)
		fmt.Printf("ManufacturerID:  %s\n", ee.ManufacturerID)
		fmt.Printf("Desc:            %s\n", ee.Desc)
		fmt.Printf("Serial:          %s\n", ee.Serial)

		h := ee.AsHeader()
		fmt.Printf("MaxPower:        %dmA\n", h.MaxPower)
		fmt.Printf("SelfPowered:     %x\n", h.SelfPowered)
		fmt.Printf("RemoteWakeup:    %x\n", h.RemoteWakeup)
		fmt.Printf("PullDownEnable:  %x\n", h.PullDownEnable)

		for _, p := range ft.Header() {
			fmt.Printf("%s: %s\n", p, p.Function())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
