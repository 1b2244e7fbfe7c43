// internal/thermo/glyph.go
package thermo

// Glyph is a 7-bit seven-segment pattern for one display position.
type Glyph uint8

const glyphMask = 0x7F

const (
	GlyphBlank Glyph = 0b0000000
	GlyphMinus Glyph = 0b0000100

	// Letters used only by the error pattern.
	GlyphE Glyph = 0b0110111
	GlyphR Glyph = 0b1011111
)

var digitGlyphs = [10]Glyph{
	0b1111011, // 0
	0b1001000, // 1
	0b0111101, // 2
	0b1101101, // 3
	0b1001110, // 4
	0b1100111, // 5
	0b1110111, // 6
	0b1001001, // 7
	0b1111111, // 8
	0b1101111, // 9
}

// DigitGlyph returns the glyph for a decimal digit.
// Out-of-range digits render blank.
func DigitGlyph(d int32) Glyph {
	if d < 0 || d > 9 {
		return GlyphBlank
	}
	return digitGlyphs[d]
}

// digits holds the four decimal places of a magnitude in tenths.
type digits struct {
	hundreds int32
	tens     int32
	ones     int32
	tenths   int32
}

func splitDigits(mag int32) digits {
	return digits{
		tenths:   mag % 10,
		ones:     mag / 10 % 10,
		tens:     mag / 100 % 10,
		hundreds: mag / 1000 % 10,
	}
}

// ------------------------------------------------------------
// Placement, one pure function per position.
//
// Leading positions blank instead of zero-filling, the minus sign sits
// immediately left of the first populated digit, and a zero is drawn when a
// populated higher digit sits above it.
// ------------------------------------------------------------

func hundredsGlyph(d digits, negative bool) Glyph {
	switch {
	case d.hundreds != 0:
		return DigitGlyph(d.hundreds)
	case negative && d.tens != 0:
		return GlyphMinus
	default:
		return GlyphBlank
	}
}

func tensGlyph(d digits, negative bool) Glyph {
	switch {
	case d.tens == 0 && d.hundreds != 0:
		return DigitGlyph(0)
	case negative && d.tens == 0 && d.hundreds == 0 && d.ones != 0:
		return GlyphMinus
	case d.tens != 0:
		return DigitGlyph(d.tens)
	default:
		return GlyphBlank
	}
}

// onesGlyph draws the minus sign for any sub-degree value (all higher places
// zero, tenths non-zero) whether or not the value is negative. Hardware
// behaves this way today and it is kept as is.
func onesGlyph(d digits, _ bool) Glyph {
	switch {
	case d.ones != 0:
		return DigitGlyph(d.ones)
	case d.hundreds == 0 && d.tens == 0 && d.tenths != 0:
		return GlyphMinus
	case d.hundreds == 0 && d.tens == 0:
		return GlyphBlank
	default:
		return DigitGlyph(0)
	}
}

func tenthsGlyph(d digits, _ bool) Glyph {
	return DigitGlyph(d.tenths)
}
