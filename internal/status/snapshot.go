// internal/status/snapshot.go
package status

// Snapshot represents exactly what the status writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16

	Display uint32 // last value sent to the display port
	Tenths  int16  // last temperature, 0 when Unit is error
	Unit    uint16
}
