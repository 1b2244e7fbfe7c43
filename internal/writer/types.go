// internal/writer/types.go
package writer

// DisplayTarget is one DISPLAY port destination.
type DisplayTarget struct {
	TargetID uint32
	Endpoint string
	UnitID   uint8  // display memory
	Address  uint16 // high word; low word at Address+1

	// StatusUnitID is the status memory on the same endpoint; nil disables
	// the status block for this target.
	StatusUnitID *uint8
}

// StatusPlan locates the device status block inside status memory.
type StatusPlan struct {
	BaseSlot   uint16
	DeviceName string
}

// Plan is the fully-built write plan for one unit.
type Plan struct {
	UnitID  string
	Targets []DisplayTarget
	Status  *StatusPlan // nil when the unit did not opt in
}

// Writer delivers display patterns to every target of a unit.
type Writer interface {
	WriteDisplay(bits uint32) error
}

// EndpointClient is the exact contract the writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type EndpointClient interface {
	// WriteDisplay writes one display pattern into unitID's memory at addr.
	WriteDisplay(unitID uint8, addr uint16, bits uint32) error

	// WriteStatusRegisters writes status block registers into unitID's
	// memory starting at addr.
	WriteStatusRegisters(unitID uint8, addr uint16, regs []uint16) error
}
