// internal/thermo/temperature.go
package thermo

import "fmt"

// Unit tags how a Temperature magnitude is to be read.
// Values are fixed: they match the mode codes published in the status block.
type Unit uint8

const (
	UnitCelsius    Unit = 1
	UnitFahrenheit Unit = 2
	UnitError      Unit = 3
)

func (u Unit) String() string {
	switch u {
	case UnitCelsius:
		return "C"
	case UnitFahrenheit:
		return "F"
	case UnitError:
		return "ERR"
	default:
		return fmt.Sprintf("unit(%d)", uint8(u))
	}
}

// Temperature is one cycle's reading in tenths of a degree.
// When Unit is UnitError, Tenths is 0 and carries no meaning.
type Temperature struct {
	Tenths int32
	Unit   Unit
}

// ---- DISPLAYABLE RANGES (tenths of a degree, inclusive) ----

const (
	MinCelsiusTenths = -450
	MaxCelsiusTenths = 450

	MinFahrenheitTenths = -490
	MaxFahrenheitTenths = 1130
)

// Displayable reports whether t can be rendered on the 4-digit display.
// Error and unknown units are never displayable.
func (t Temperature) Displayable() bool {
	switch t.Unit {
	case UnitCelsius:
		return t.Tenths >= MinCelsiusTenths && t.Tenths <= MaxCelsiusTenths
	case UnitFahrenheit:
		return t.Tenths >= MinFahrenheitTenths && t.Tenths <= MaxFahrenheitTenths
	default:
		return false
	}
}

func (t Temperature) String() string {
	if t.Unit == UnitError {
		return "ERR"
	}
	sign := ""
	v := t.Tenths
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d%s", sign, v/10, v%10, t.Unit)
}
