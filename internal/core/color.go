package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the arcade. The region game's tints follow the
// classic web palette names it was designed with.
const (
	ColorDefault Color = iota
	ColorMaroon        // Red territory
	ColorGray          // Blue territory
	ColorPurple        // Red player
	ColorOlive         // Blue player
	ColorSilver        // Arena walls
	ColorNavy          // Score text
	ColorWhite         // Control labels
	ColorYellow        // Highlights
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorMaroon:
		return "maroon"
	case ColorGray:
		return "gray"
	case ColorPurple:
		return "purple"
	case ColorOlive:
		return "olive"
	case ColorSilver:
		return "silver"
	case ColorNavy:
		return "navy"
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	default:
		return "default"
	}
}
