// internal/config/config.go
package config

import "github.com/tamzrod/modbus-thermo/internal/status"

type Config struct {
	Thermo ThermoConfig `yaml:"thermo"`
}

type ThermoConfig struct {
	Units []UnitConfig `yaml:"units"`
}

// ---- UNIT ----

// UnitConfig binds one thermometer's ports to Modbus registers.
type UnitConfig struct {
	ID      string         `yaml:"id"`
	Source  SourceConfig   `yaml:"source"`
	Ports   PortsConfig    `yaml:"ports"`
	Targets []TargetConfig `yaml:"targets"`
	Poll    PollConfig     `yaml:"poll"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Device status block (optional, opt-in)
	StatusSlot *uint16 `yaml:"status_slot"`
	DeviceName string  `yaml:"device_name"`
}

// ---- INPUT PORTS ----

// PortsConfig locates the SENSOR and STATUS ports on the source device.
type PortsConfig struct {
	Sensor RegisterConfig `yaml:"sensor"` // 2 registers, signed 32-bit, high word first
	Status RegisterConfig `yaml:"status"` // 1 register
}

// RegisterConfig is one register location. FC is 3 (holding) or 4 (input).
type RegisterConfig struct {
	FC      uint8  `yaml:"fc"`
	Address uint16 `yaml:"address"`
}

// ---- TARGET ----

// TargetConfig is one DISPLAY port destination.
type TargetConfig struct {
	ID             uint32 `yaml:"id"`
	Endpoint       string `yaml:"endpoint"`
	Protocol       string `yaml:"protocol"`        // "modbus" (default) or "ingest"
	UnitID         uint8  `yaml:"unit_id"`         // display memory
	DisplayAddress uint16 `yaml:"display_address"` // 2 holding registers, high word first
	StatusUnitID   *uint8 `yaml:"status_unit_id"`  // per-target status memory (optional)
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

const (
	ProtocolModbus = "modbus"
	ProtocolIngest = "ingest"
)

// Register counts for each port.
const (
	SensorRegisters  = 2
	StatusRegisters  = 1
	DisplayRegisters = 2
)

// MaxStatusSlot is the highest status_slot whose block still fits below
// register 0xFFFF.
const MaxStatusSlot = 0x10000/status.SlotsPerDevice - 1
