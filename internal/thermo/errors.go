// internal/thermo/errors.go
package thermo

import (
	"errors"
	"fmt"
)

var (
	// ErrSensorFault is returned when the raw reading is outside the trusted
	// range or the hardware fault flag is raised.
	ErrSensorFault = errors.New("thermo: sensor fault")

	// ErrNotDisplayable is returned when a temperature cannot be rendered:
	// out of range for its unit, or an error/unknown unit tag.
	ErrNotDisplayable = errors.New("thermo: temperature not displayable")
)

// Fault codes exposed through Code(). 0 is reserved for "no error".
const (
	CodeSensorFault    uint16 = 1
	CodeNotDisplayable uint16 = 2
)

// fault wraps one of the sentinels with the offending values.
type fault struct {
	kind   error
	code   uint16
	detail string
}

func (f *fault) Error() string { return fmt.Sprintf("%v: %s", f.kind, f.detail) }
func (f *fault) Unwrap() error { return f.kind }
func (f *fault) Code() uint16  { return f.code }

func sensorFault(raw, status int32) error {
	return &fault{
		kind:   ErrSensorFault,
		code:   CodeSensorFault,
		detail: fmt.Sprintf("raw=%d status=%#x", raw, status),
	}
}

func notDisplayable(t Temperature) error {
	return &fault{
		kind:   ErrNotDisplayable,
		code:   CodeNotDisplayable,
		detail: fmt.Sprintf("tenths=%d unit=%s", t.Tenths, t.Unit),
	}
}
