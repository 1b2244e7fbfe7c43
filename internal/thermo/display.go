// internal/thermo/display.go
package thermo

// Display abstracts the output port driving the 4-digit display.
type Display interface {
	SetDisplay(bits uint32)
}

// ------------------------------------------------------------
// Display register layout (LOCKED)
//
// 0–6    tenths glyph
// 7–13   ones glyph
// 14–20  tens glyph
// 21–27  hundreds glyph
// 28     Celsius indicator
// 29     Fahrenheit indicator
// 30–31  unused, always 0
// ------------------------------------------------------------

const (
	shiftTenths   = 0
	shiftOnes     = 7
	shiftTens     = 14
	shiftHundreds = 21

	bitCelsius    = 28
	bitFahrenheit = 29
)

// ErrorBits is written to the display whenever a cycle fails ("ERR").
const ErrorBits uint32 = 0b00000110111101111110111110000000

// ErrorPattern is ErrorBits as fields.
var ErrorPattern = Pattern{
	Hundreds: GlyphE,
	Tens:     GlyphR,
	Ones:     GlyphR,
	Tenths:   GlyphBlank,
}

// Pattern is the display register as fields.
type Pattern struct {
	Hundreds Glyph
	Tens     Glyph
	Ones     Glyph
	Tenths   Glyph

	Celsius    bool
	Fahrenheit bool
}

// Bits packs the pattern into the display register layout.
func (p Pattern) Bits() uint32 {
	v := uint32(p.Hundreds&glyphMask)<<shiftHundreds |
		uint32(p.Tens&glyphMask)<<shiftTens |
		uint32(p.Ones&glyphMask)<<shiftOnes |
		uint32(p.Tenths&glyphMask)<<shiftTenths

	if p.Celsius {
		v |= 1 << bitCelsius
	}
	if p.Fahrenheit {
		v |= 1 << bitFahrenheit
	}
	return v
}

// PatternFromBits unpacks a display register value.
func PatternFromBits(v uint32) Pattern {
	return Pattern{
		Hundreds:   Glyph(v>>shiftHundreds) & glyphMask,
		Tens:       Glyph(v>>shiftTens) & glyphMask,
		Ones:       Glyph(v>>shiftOnes) & glyphMask,
		Tenths:     Glyph(v>>shiftTenths) & glyphMask,
		Celsius:    v&(1<<bitCelsius) != 0,
		Fahrenheit: v&(1<<bitFahrenheit) != 0,
	}
}

// Encode renders t for the display.
// If t is not displayable it returns ErrorPattern and an error wrapping
// ErrNotDisplayable. Integer arithmetic only.
func Encode(t Temperature) (Pattern, error) {
	if !t.Displayable() {
		return ErrorPattern, notDisplayable(t)
	}

	negative := t.Tenths < 0
	mag := t.Tenths
	if negative {
		mag = -mag
	}
	d := splitDigits(mag)

	return Pattern{
		Hundreds:   hundredsGlyph(d, negative),
		Tens:       tensGlyph(d, negative),
		Ones:       onesGlyph(d, negative),
		Tenths:     tenthsGlyph(d, negative),
		Celsius:    t.Unit == UnitCelsius,
		Fahrenheit: t.Unit == UnitFahrenheit,
	}, nil
}
