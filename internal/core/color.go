package core

// Color is a cell foreground color. The terminal host maps each value to an
// ANSI 256-color style.
type Color uint8

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
	ColorPink  // mermaid, octopus
	ColorTeal  // untouched platforms
	ColorFoam  // bubbles
	ColorCoral // hud accents
)
