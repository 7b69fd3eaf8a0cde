package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors.
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

// Ramp is an ordered sequence of colours from cool to hot, used to colour
// values that grow geometrically (tile values, for one).
var Ramp = []Color{
	ColorWhite,
	ColorBrightWhite,
	ColorYellow,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
	ColorBrightMagenta,
	ColorMagenta,
	ColorBrightBlue,
	ColorBlue,
	ColorBrightCyan,
	ColorCyan,
	ColorBrightGreen,
	ColorGreen,
}

// RampColor returns the ramp colour at step, saturating at the hot end.
func RampColor(step int) Color {
	if step < 0 {
		return ColorDefault
	}
	if step >= len(Ramp) {
		return Ramp[len(Ramp)-1]
	}
	return Ramp[step]
}
