// internal/poller/types.go
package poller

import "time"

// Register locates one port on the source device.
// Geometry only: no semantics.
type Register struct {
	FC      uint8 // 3 = holding, 4 = input
	Address uint16
}

// PollResult is a snapshot of both input ports produced by one poll cycle.
type PollResult struct {
	UnitID string
	At     time.Time

	Sensor int32 // SENSOR port, signed 32-bit
	Status int32 // STATUS port bitfield

	Err error // non-nil means the poll cycle failed; Sensor/Status are zero
}
