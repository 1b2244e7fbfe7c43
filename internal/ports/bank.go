// internal/ports/bank.go
package ports

import "sync/atomic"

// Bank is an in-process register file standing in for the three
// memory-mapped ports: SENSOR and STATUS (inputs), DISPLAY (output).
//
// Loads and stores are atomic so a poller may latch inputs from another
// goroutine. Bank does not make a cycle atomic: latch between cycles.
type Bank struct {
	sensor  atomic.Int32
	status  atomic.Int32
	display atomic.Uint32
	writes  atomic.Uint64
}

// Latch stores a fresh pair of input values.
func (b *Bank) Latch(sensor, status int32) {
	b.sensor.Store(sensor)
	b.status.Store(status)
}

// ---- thermo.Inputs ----

func (b *Bank) SensorValue() int32 { return b.sensor.Load() }
func (b *Bank) StatusBits() int32  { return b.status.Load() }

// ---- thermo.Display ----

func (b *Bank) SetDisplay(bits uint32) {
	b.display.Store(bits)
	b.writes.Add(1)
}

// DisplayValue returns the last value written to the display port.
func (b *Bank) DisplayValue() uint32 { return b.display.Load() }

// Writes returns how many times the display port has been written.
func (b *Bank) Writes() uint64 { return b.writes.Load() }
