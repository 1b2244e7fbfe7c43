// cmd/thermo/run.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/tamzrod/modbus-thermo/internal/config"
	"github.com/tamzrod/modbus-thermo/internal/poller"
	"github.com/tamzrod/modbus-thermo/internal/runner"
	"github.com/tamzrod/modbus-thermo/internal/writer"
)

var runCmd = &cobra.Command{
	Use:   "run <config.yaml>",
	Short: "Poll every configured unit and drive its displays.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDaemon(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDaemon(cfgPath string) {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		atexit.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		atexit.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Build per-unit pipelines
	// --------------------

	for _, unit := range cfg.Thermo.Units {

		// ---- poller ----
		p, closePoller, err := poller.Build(unit)
		if err != nil {
			atexit.Fatalf("poller build failed (unit=%s): %v", unit.ID, err)
		}
		atexit.Register(func() { _ = closePoller() })

		// ---- writer plan ----
		plan, err := writer.BuildPlan(unit)
		if err != nil {
			atexit.Fatalf("writer plan failed (unit=%s): %v", unit.ID, err)
		}

		// ---- writer clients (DISPLAY + STATUS) ----
		clients, closeWriters, err := writer.BuildEndpointClients(unit)
		if err != nil {
			atexit.Fatalf("writer clients failed (unit=%s): %v", unit.ID, err)
		}
		atexit.Register(func() { _ = closeWriters() })

		displayWriter := writer.New(plan, clients)

		// Status writer (optional per unit)
		statusWriter, statusEnabled := writer.NewDeviceStatusWriter(plan, clients)
		if statusEnabled {
			log.Printf("status block enabled (unit=%s slot=%d)", unit.ID, plan.Status.BaseSlot)
		}

		// ---- channel between poller and runner ----
		out := make(chan poller.PollResult)

		r := runner.New(unit.ID, displayWriter, statusWriter)

		go r.Run(ctx, out)
		go p.Run(ctx, out)

		log.Printf("unit started (unit=%s)", unit.ID)
	}

	<-ctx.Done()
	log.Printf("shutting down")
}
