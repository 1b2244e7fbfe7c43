// internal/runner/runner.go
package runner

import (
	"context"
	"log"
	"time"

	"github.com/tamzrod/modbus-thermo/internal/poller"
	"github.com/tamzrod/modbus-thermo/internal/ports"
	"github.com/tamzrod/modbus-thermo/internal/status"
	"github.com/tamzrod/modbus-thermo/internal/thermo"
	"github.com/tamzrod/modbus-thermo/internal/writer"
)

// CodeTransport is the status-block error code for a failed port read.
// Codes 1 and 2 come from thermo.
const CodeTransport uint16 = 3

// Runner owns one unit's state: the port bank, the status snapshot and the
// writers. Not safe for concurrent use; Run drives it from one goroutine.
type Runner struct {
	unitID  string
	bank    ports.Bank
	display writer.Writer
	status  writer.StatusWriter // nil when disabled

	snap status.Snapshot
}

// New builds a runner. sw may be nil.
func New(unitID string, display writer.Writer, sw writer.StatusWriter) *Runner {
	return &Runner{
		unitID:  unitID,
		display: display,
		status:  sw,
		snap:    status.Snapshot{Health: status.HealthUnknown},
	}
}

// Snapshot returns the current status snapshot.
func (r *Runner) Snapshot() status.Snapshot { return r.snap }

// Start re-asserts the full status block (identity) if enabled.
func (r *Runner) Start() {
	r.writeStatus("on start")
}

// Handle runs one update cycle for a poll result and returns the cycle's
// status code (0 = display shows the reading, 1 = display shows ERR).
func (r *Runner) Handle(res poller.PollResult) int {
	var (
		temp thermo.Temperature
		err  error
	)

	if res.Err != nil {
		// Ports unreadable: the display must not keep a stale reading.
		log.Printf("poll failed (unit=%s): %v", r.unitID, res.Err)
		r.bank.SetDisplay(thermo.ErrorBits)
		temp = thermo.Temperature{Unit: thermo.UnitError}
		err = res.Err
	} else {
		r.bank.Latch(res.Sensor, res.Status)
		temp, err = thermo.UpdateReading(&r.bank, &r.bank)
		if err != nil {
			log.Printf("update failed (unit=%s): %v", r.unitID, err)
		}
	}

	// --- display delivery ---
	bits := r.bank.DisplayValue()
	if werr := r.display.WriteDisplay(bits); werr != nil {
		log.Printf("display write failed (unit=%s): %v", r.unitID, werr)
	}

	// --- status update (device-level truth) ---
	next := r.snap
	next.Display = bits
	next.Tenths = int16(temp.Tenths)
	next.Unit = uint16(temp.Unit)

	switch {
	case err == nil:
		next.Health = status.HealthOK
		next.LastErrorCode = 0
		next.SecondsInError = 0
	case res.Err != nil:
		next.Health = status.HealthError
		next.LastErrorCode = CodeTransport
	default:
		next.Health = status.HealthError
		next.LastErrorCode = thermo.FaultCode(err)
	}
	// NOTE: seconds_in_error increments on the 1Hz ticker only.

	if next != r.snap {
		r.snap = next
		r.writeStatus("")
	}

	return thermo.StatusCode(err)
}

// Tick advances seconds_in_error while the unit is not OK.
func (r *Runner) Tick() {
	if r.snap.Health == status.HealthOK {
		return
	}
	if r.snap.SecondsInError >= status.MaxSecondsInError {
		return
	}
	r.snap.SecondsInError++
	r.writeStatus("seconds tick")
}

// Run consumes poll results until ctx is done.
func (r *Runner) Run(ctx context.Context, in <-chan poller.PollResult) {
	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	r.Start()

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-in:
			r.Handle(res)

		case <-secTicker.C:
			r.Tick()
		}
	}
}

func (r *Runner) writeStatus(what string) {
	if r.status == nil {
		return
	}
	if err := r.status.WriteStatus(r.snap); err != nil {
		if what != "" {
			log.Printf("status write failed %s (unit=%s): %v", what, r.unitID, err)
			return
		}
		log.Printf("status write failed (unit=%s): %v", r.unitID, err)
	}
}
