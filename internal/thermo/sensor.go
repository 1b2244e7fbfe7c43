// internal/thermo/sensor.go
package thermo

// Inputs abstracts the two input ports the sensor stage reads.
// Each method is called exactly once per cycle.
type Inputs interface {
	SensorValue() int32
	StatusBits() int32
}

// ---- STATUS PORT BITS ----

const (
	StatusFaultBit      = 2
	StatusFahrenheitBit = 5
)

// ---- RAW SENSOR ENCODING ----

const (
	// MaxTrustedRaw is the raw value for +45.0 C.
	MaxTrustedRaw = 28800

	rawShift      = 5 // 32 raw units per tenth of a degree
	rawRoundHalf  = 16
	rawZeroOffset = 450 // raw 0 is -45.0 C
)

// ReadTemperature reads both input ports once and converts the raw sensor
// value into tenths of a degree. Integer arithmetic only.
//
// On fault it returns Temperature{0, UnitError} and an error wrapping
// ErrSensorFault.
func ReadTemperature(in Inputs) (Temperature, error) {
	raw := in.SensorValue()
	status := in.StatusBits()

	if raw < 0 || raw > MaxTrustedRaw || status&(1<<StatusFaultBit) != 0 {
		return Temperature{Tenths: 0, Unit: UnitError}, sensorFault(raw, status)
	}

	tenths := raw>>rawShift - rawZeroOffset
	if raw%(1<<rawShift) >= rawRoundHalf {
		tenths++
	}

	if status&(1<<StatusFahrenheitBit) != 0 {
		return Temperature{Tenths: tenths*9/5 + 320, Unit: UnitFahrenheit}, nil
	}
	return Temperature{Tenths: tenths, Unit: UnitCelsius}, nil
}
