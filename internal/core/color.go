package core

import "math/rand"

// Color represents a foreground color for a screen cell.
// Values below rgbFlag are palette entries (ANSI codes chosen by the renderer);
// values with rgbFlag set carry a 24-bit true color.
type Color uint32

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

const rgbFlag Color = 1 << 24

// RGB builds a true color from its components.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Hex builds a true color from a 0xRRGGBB literal.
func Hex(v uint32) Color {
	return rgbFlag | Color(v&0xffffff)
}

// IsRGB reports whether c is a true color rather than a palette entry.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// Components returns the red, green and blue channels of a true color.
// Palette colors return zeros.
func (c Color) Components() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RandomColor returns a random true color whose channels are all at least base.
func RandomColor(rng *rand.Rand, base int) Color {
	base = Clamp(base, 0, 254)
	channel := func() uint8 {
		return uint8(rng.Intn(255-base) + base)
	}
	r := channel()
	g := channel()
	b := channel()
	return RGB(r, g, b)
}
