package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/cmechlin/ftdiflash"
)

var (
	freqHz  uint
	spiMode int
	verbose bool
	logFile string

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:          "ftdiflash",
	Short:        "Read SPI flash chips through an FTDI FT232H USB-to-SPI bridge",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.InfoLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			logger.SetOutput(io.MultiWriter(os.Stderr, f))
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.UintVar(&freqHz, "freq", 1_000_000, "SPI clock frequency in Hz")
	pf.IntVar(&spiMode, "mode", 0, "SPI mode (0-3)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "also append logs to this file")
}

// openReader opens the FT232H bridge and wraps it in a FlashReader.
// The caller owns the returned reader and must Close it.
func openReader() (*ftdiflash.FlashReader, error) {
	if spiMode < 0 || spiMode > 3 {
		return nil, fmt.Errorf("invalid SPI mode %d", spiMode)
	}
	bridge, err := ftdiflash.OpenBridge(physic.Frequency(freqHz)*physic.Hertz, spi.Mode(spiMode))
	if err != nil {
		return nil, fmt.Errorf("failed to open FT232H bridge: %w", err)
	}
	return ftdiflash.New(bridge, logger), nil
}
