// internal/poller/modbus/client_test.go
package modbus

import "testing"

func TestUnpackRegisters(t *testing.T) {
	regs, err := unpackRegisters([]byte{0x00, 0x00, 0x70, 0x80}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if regs[0] != 0 || regs[1] != 28800 {
		t.Fatalf("got %v", regs)
	}
}

func TestUnpackRegisters_LengthMismatch(t *testing.T) {
	if _, err := unpackRegisters([]byte{0x00, 0x01, 0x02}, 2); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestNew_RequiresEndpoint(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
