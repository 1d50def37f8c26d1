package core

// Color represents a foreground colour for a screen cell.
type Color uint8

// Colours available to the court renderer. ColorDefault leaves the
// terminal's own foreground untouched.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
)

// ANSI returns the 256-colour palette code of c, or "" for ColorDefault.
func (c Color) ANSI() string {
	switch c {
	case ColorGray:
		return "245"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightCyan:
		return "14"
	default:
		return ""
	}
}
