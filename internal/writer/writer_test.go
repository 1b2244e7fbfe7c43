// internal/writer/writer_test.go
package writer

import (
	"errors"
	"testing"

	"github.com/tamzrod/modbus-thermo/internal/thermo"
)

// ---- fake endpoint client ----

type fakeEndpointClient struct {
	displays []displayCall
	writes   []writeCall
	fail     bool

	// last status write, for status block assertions
	lastRegs     []uint16
	lastRegsAddr uint16
}

type displayCall struct {
	unitID uint8
	addr   uint16
	bits   uint32
}

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

func (f *fakeEndpointClient) WriteDisplay(unitID uint8, addr uint16, bits uint32) error {
	if f.fail {
		return errors.New("boom")
	}
	f.displays = append(f.displays, displayCall{unitID: unitID, addr: addr, bits: bits})
	return nil
}

func (f *fakeEndpointClient) WriteStatusRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("boom")
	}
	f.writes = append(f.writes, writeCall{
		unitID: unitID,
		addr:   addr,
		regs:   append([]uint16(nil), regs...),
	})
	f.lastRegs = regs
	f.lastRegsAddr = addr
	return nil
}

// ---- tests ----

func TestWriter_DisplayPatternPerTarget(t *testing.T) {
	fake := &fakeEndpointClient{}

	plan := Plan{
		UnitID: "unit-1",
		Targets: []DisplayTarget{
			{TargetID: 1, Endpoint: "ep1", UnitID: 4, Address: 100},
		},
	}

	w := New(plan, map[string]EndpointClient{"ep1": fake})

	if err := w.WriteDisplay(thermo.ErrorBits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.displays) != 1 {
		t.Fatalf("expected 1 write, got %d", len(fake.displays))
	}
	dc := fake.displays[0]
	if dc.addr != 100 || dc.unitID != 4 {
		t.Fatalf("unexpected write target: %+v", dc)
	}
	if dc.bits != thermo.ErrorBits {
		t.Fatalf("unexpected bits: %#08x", dc.bits)
	}
	if len(fake.writes) != 0 {
		t.Fatalf("display write touched status registers: %+v", fake.writes)
	}
}

func TestWriter_AllTargetsAttemptedOnFailure(t *testing.T) {
	bad := &fakeEndpointClient{fail: true}
	good := &fakeEndpointClient{}

	plan := Plan{
		UnitID: "unit-1",
		Targets: []DisplayTarget{
			{TargetID: 1, Endpoint: "bad", UnitID: 1},
			{TargetID: 2, Endpoint: "missing", UnitID: 1},
			{TargetID: 3, Endpoint: "good", UnitID: 1, Address: 8},
		},
	}

	w := New(plan, map[string]EndpointClient{"bad": bad, "good": good})

	if err := w.WriteDisplay(0x10000000); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(good.displays) != 1 || good.displays[0].addr != 8 {
		t.Fatalf("good target not written: %+v", good.displays)
	}
}
