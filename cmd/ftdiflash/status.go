package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the decoded status register of the flash chip",
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

		sr, err := r.ReadStatusRegister()
		if err != nil {
			return fmt.Errorf("read status register failed: %w", err)
		}
		fmt.Println(sr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
