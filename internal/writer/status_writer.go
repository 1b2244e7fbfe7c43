// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/modbus-thermo/internal/status"
)

// StatusWriter is the delivery-only contract for device status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// deviceStatusWriter writes one unit's status block into one target's
// status memory.
type deviceStatusWriter struct {
	endpoint string
	unitID   uint8
	baseSlot uint16
	cli      EndpointClient

	needFull bool
	last     status.Snapshot
	nameRegs []uint16
}

// fanoutStatusWriter delivers the same snapshot to every status memory.
type fanoutStatusWriter []*deviceStatusWriter

// NewDeviceStatusWriter builds a status writer if status is enabled for the unit.
// If plan.Status is nil or no target declares status memory, status is disabled.
func NewDeviceStatusWriter(plan Plan, clients map[string]EndpointClient) (StatusWriter, bool) {
	if plan.Status == nil {
		return nil, false
	}

	sp := plan.Status
	nameRegs := status.EncodeDeviceName(sp.DeviceName)

	var out fanoutStatusWriter
	for _, t := range plan.Targets {
		if t.StatusUnitID == nil {
			continue
		}
		out = append(out, &deviceStatusWriter{
			endpoint: t.Endpoint,
			unitID:   *t.StatusUnitID,
			baseSlot: sp.BaseSlot,
			cli:      clients[t.Endpoint],
			needFull: true, // full re-assert on first successful write
			last:     status.Snapshot{Health: status.HealthUnknown},
			nameRegs: nameRegs,
		})
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func (f fanoutStatusWriter) WriteStatus(s status.Snapshot) error {
	var errs []error
	for _, sw := range f {
		if err := sw.WriteStatus(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WriteStatus delivers a device status snapshot into status memory.
// On any write failure, the next successful call will re-assert the full block.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for endpoint %s", sw.endpoint)
	}

	baseAddr, err := sw.baseAddr()
	if err != nil {
		return err
	}

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if err := sw.cli.WriteStatusRegisters(
			sw.unitID,
			baseAddr,
			status.Encode(s, sw.nameRegs),
		); err != nil {
			return fmt.Errorf("status writer: ep=%s full block write failed: %w", sw.endpoint, err)
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: only slots whose value changed
	// ------------------------------------------------------------
	var errs []string

	prev := status.Fields(sw.last)
	for i, f := range status.Fields(s) {
		if prev[i].Value == f.Value {
			continue
		}
		if err := sw.cli.WriteStatusRegisters(
			sw.unitID,
			baseAddr+f.Slot,
			[]uint16{f.Value},
		); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d write failed: %v", f.Slot, err))
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt — re-assert on next success.
		sw.needFull = true
		return fmt.Errorf("status writer: ep=%s %s", sw.endpoint, strings.Join(errs, " | "))
	}

	sw.last = s
	return nil
}

// baseAddr is the first register of this device's block.
// Each device owns a fixed SlotsPerDevice block; a block that would run past
// register 0xFFFF is refused rather than wrapped onto low registers.
func (sw *deviceStatusWriter) baseAddr() (uint16, error) {
	base := uint32(sw.baseSlot) * status.SlotsPerDevice
	if base+status.SlotsPerDevice-1 > 0xFFFF {
		return 0, fmt.Errorf("status writer: ep=%s slot %d out of register range", sw.endpoint, sw.baseSlot)
	}
	return uint16(base), nil
}
