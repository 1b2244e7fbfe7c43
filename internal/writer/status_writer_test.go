// internal/writer/status_writer_test.go
package writer

import (
	"strings"
	"testing"

	"github.com/tamzrod/modbus-thermo/internal/status"
)

func statusPlan(baseSlot uint16) Plan {
	sid := uint8(10)
	return Plan{
		UnitID: "u1",
		Targets: []DisplayTarget{
			{TargetID: 1, Endpoint: "status-endpoint", UnitID: 1, StatusUnitID: &sid},
		},
		Status: &StatusPlan{
			BaseSlot:   baseSlot,
			DeviceName: "DEV-01",
		},
	}
}

func TestStatusWriter_DisabledWithoutPlan(t *testing.T) {
	plan := statusPlan(0)
	plan.Status = nil

	if _, enabled := NewDeviceStatusWriter(plan, nil); enabled {
		t.Fatalf("status writer should be disabled")
	}
}

func TestDeviceNameWrittenOnFullAssertOnly(t *testing.T) {
	cli := &fakeEndpointClient{}
	plan := statusPlan(1)

	sw, enabled := NewDeviceStatusWriter(plan, map[string]EndpointClient{
		"status-endpoint": cli,
	})
	if !enabled {
		t.Fatalf("status writer should be enabled")
	}

	// ---- first write: FULL ASSERT ----
	first := status.Snapshot{Health: status.HealthOK, Display: 0x1000007B, Unit: 1}

	if err := sw.WriteStatus(first); err != nil {
		t.Fatalf("initial full assert failed: %v", err)
	}

	if len(cli.lastRegs) != status.SlotsPerDevice {
		t.Fatalf("expected full block write (%d regs), got %d", status.SlotsPerDevice, len(cli.lastRegs))
	}
	if cli.lastRegsAddr != status.SlotsPerDevice {
		t.Fatalf("expected base addr %d, got %d", status.SlotsPerDevice, cli.lastRegsAddr)
	}
	if cli.writes[0].unitID != 10 {
		t.Fatalf("expected status unit id 10, got %d", cli.writes[0].unitID)
	}

	expectedNameRegs := status.EncodeDeviceName(plan.Status.DeviceName)
	for i := 0; i < status.SlotDeviceNameSlots; i++ {
		slot := status.SlotDeviceNameStart + i
		if cli.lastRegs[slot] != expectedNameRegs[i] {
			t.Fatalf("device name slot %d mismatch: got=%d want=%d", slot, cli.lastRegs[slot], expectedNameRegs[i])
		}
	}

	// ---- second write: INCREMENTAL ONLY ----
	second := first
	second.Health = status.HealthError
	second.LastErrorCode = 1

	if err := sw.WriteStatus(second); err != nil {
		t.Fatalf("incremental write failed: %v", err)
	}

	// full + health + last_error
	if len(cli.writes) != 3 {
		t.Fatalf("expected 3 writes total, got %d", len(cli.writes))
	}
	for _, wc := range cli.writes[1:] {
		if len(wc.regs) != 1 {
			t.Fatalf("incremental write rewrote %d regs", len(wc.regs))
		}
	}
}

func TestSecondsInErrorResetOnRecovery(t *testing.T) {
	cli := &fakeEndpointClient{}
	plan := statusPlan(0)

	sw, _ := NewDeviceStatusWriter(plan, map[string]EndpointClient{
		"status-endpoint": cli,
	})

	errSnap := status.Snapshot{Health: status.HealthError, LastErrorCode: 1, SecondsInError: 3}
	if err := sw.WriteStatus(errSnap); err != nil {
		t.Fatalf("error snapshot write failed: %v", err)
	}

	okSnap := status.Snapshot{Health: status.HealthOK}
	if err := sw.WriteStatus(okSnap); err != nil {
		t.Fatalf("recovery snapshot write failed: %v", err)
	}

	expectedAddr := plan.Status.BaseSlot*status.SlotsPerDevice + status.SlotSecondsInError

	if cli.lastRegsAddr != expectedAddr {
		t.Fatalf("unexpected write addr: got=%d want=%d", cli.lastRegsAddr, expectedAddr)
	}
	if len(cli.lastRegs) != 1 || cli.lastRegs[0] != 0 {
		t.Fatalf("seconds_in_error not reset: %v", cli.lastRegs)
	}
}

func TestFullReassertAfterFailure(t *testing.T) {
	cli := &fakeEndpointClient{}
	plan := statusPlan(0)

	sw, _ := NewDeviceStatusWriter(plan, map[string]EndpointClient{
		"status-endpoint": cli,
	})

	if err := sw.WriteStatus(status.Snapshot{Health: status.HealthOK}); err != nil {
		t.Fatalf("first write failed: %v", err)
	}

	cli.fail = true
	if err := sw.WriteStatus(status.Snapshot{Health: status.HealthError}); err == nil {
		t.Fatalf("expected failure")
	}

	cli.fail = false
	if err := sw.WriteStatus(status.Snapshot{Health: status.HealthError}); err != nil {
		t.Fatalf("write after recovery failed: %v", err)
	}
	if len(cli.lastRegs) != status.SlotsPerDevice {
		t.Fatalf("expected full re-assert, got %d regs", len(cli.lastRegs))
	}
}

func TestStatusWriter_SlotPastRegisterSpaceRefused(t *testing.T) {
	cli := &fakeEndpointClient{}

	// 3276*20 = 65520; the block would end at 65539.
	sw, _ := NewDeviceStatusWriter(statusPlan(3276), map[string]EndpointClient{
		"status-endpoint": cli,
	})

	err := sw.WriteStatus(status.Snapshot{Health: status.HealthOK})
	if err == nil || !strings.Contains(err.Error(), "out of register range") {
		t.Fatalf("expected range error, got %v", err)
	}
	if len(cli.writes) != 0 {
		t.Fatalf("wrapped block written: %+v", cli.writes)
	}
}

func TestStatusWriter_LastSlotEndsAtTopRegister(t *testing.T) {
	cli := &fakeEndpointClient{}

	sw, _ := NewDeviceStatusWriter(statusPlan(3275), map[string]EndpointClient{
		"status-endpoint": cli,
	})

	if err := sw.WriteStatus(status.Snapshot{Health: status.HealthOK}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if cli.lastRegsAddr != 65500 {
		t.Fatalf("unexpected base addr %d", cli.lastRegsAddr)
	}
}
