// internal/thermo/cycle.go
package thermo

import "errors"

// Update runs one display cycle: read ports, encode, write the display.
//
// Both stages always run once. On failure the display receives ErrorBits
// (once per failing stage) and the returned error joins every stage error.
// On success the encoded pattern is written exactly once and nil is returned.
func Update(in Inputs, out Display) error {
	_, err := UpdateReading(in, out)
	return err
}

// UpdateReading is Update that also returns the temperature the sensor
// stage produced, so callers can publish it without reading the ports again.
func UpdateReading(in Inputs, out Display) (Temperature, error) {
	var errs []error

	t, err := ReadTemperature(in)
	if err != nil {
		out.SetDisplay(ErrorBits)
		errs = append(errs, err)
	}

	p, err := Encode(t)
	if err != nil {
		out.SetDisplay(ErrorBits)
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return t, errors.Join(errs...)
	}

	out.SetDisplay(p.Bits())
	return t, nil
}

// StatusCode maps a cycle result to the entry point's status:
// 0 means the display shows the current temperature, 1 means it shows ERR.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// FaultCode extracts the first fault code carried by err.
// Returns 0 for nil and 1 for errors without a code.
func FaultCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return 1
}
