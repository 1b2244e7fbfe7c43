// cmd/thermo/root.go
package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "thermo",
	Short: "Drive a 4-digit seven-segment thermometer display.",
	Long: `thermo converts a raw sensor reading and a status bitfield into a ` +
		`seven-segment display pattern. "run" polls Modbus devices on a timer; ` +
		`"once" evaluates a single cycle offline.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
