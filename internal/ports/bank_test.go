// internal/ports/bank_test.go
package ports

import (
	"sync"
	"testing"

	"github.com/tamzrod/modbus-thermo/internal/thermo"
)

var (
	_ thermo.Inputs  = (*Bank)(nil)
	_ thermo.Display = (*Bank)(nil)
)

func TestBank_CycleWriteCounts(t *testing.T) {
	var b Bank

	b.Latch(14400, 0)
	if err := thermo.Update(&b, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Writes() != 1 {
		t.Fatalf("success path: expected 1 write, got %d", b.Writes())
	}

	b.Latch(28801, 0)
	if err := thermo.Update(&b, &b); err == nil {
		t.Fatalf("expected failure")
	}
	if b.Writes() != 3 {
		t.Fatalf("failure path: expected 2 more writes, got %d total", b.Writes())
	}
	if b.DisplayValue() != thermo.ErrorBits {
		t.Fatalf("display=%032b want error pattern", b.DisplayValue())
	}
}

func TestBank_ConcurrentLatch(t *testing.T) {
	var b Bank
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int32(0); i < 1000; i++ {
			b.Latch(i, 0)
		}
	}()

	for i := 0; i < 1000; i++ {
		_ = thermo.Update(&b, &b)
	}
	wg.Wait()

	if v := b.SensorValue(); v != 999 {
		t.Fatalf("last latch lost: got %d", v)
	}
}
