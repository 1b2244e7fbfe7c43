// cmd/thermo/once.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/tamzrod/modbus-thermo/internal/ports"
	"github.com/tamzrod/modbus-thermo/internal/thermo"
)

var (
	onceSensor int32
	onceStatus int32
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single update cycle against given port values.",
	Long: "`once --sensor N --status N` latches the ports, runs one cycle and " +
		"prints the display pattern. The exit code is the cycle status.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		atexit.Exit(runOnce(os.Stdout, onceSensor, onceStatus))
	},
}

func init() {
	rootCmd.AddCommand(onceCmd)
	onceCmd.Flags().Int32Var(&onceSensor, "sensor", 0, "SENSOR port value (raw ADC units)")
	onceCmd.Flags().Int32Var(&onceStatus, "status", 0, "STATUS port bitfield (bit 2 fault, bit 5 Fahrenheit)")
}

// runOnce latches the ports, runs one cycle, reports it to w and returns
// the cycle status code.
func runOnce(w io.Writer, sensor, st int32) int {
	var bank ports.Bank
	bank.Latch(sensor, st)

	temp, err := thermo.UpdateReading(&bank, &bank)
	bits := bank.DisplayValue()

	fmt.Fprintf(w, "temperature: %s\n", temp)
	fmt.Fprintf(w, "display:     0b%032b (0x%08X)\n", bits, bits)
	if err != nil {
		fmt.Fprintf(w, "error:       %v\n", err)
	}

	return thermo.StatusCode(err)
}
