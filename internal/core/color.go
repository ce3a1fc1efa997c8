package core

// Color is a terminal colour understood by the platform renderer.
// It holds either an ANSI 256 index ("208") or a hex triplet ("#FF8000").
// The empty Color means "terminal default".
type Color string

// Predefined colors for HUD and chrome.
const (
	ColorDefault     Color = ""
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorBlue        Color = "4"
	ColorMagenta     Color = "5"
	ColorCyan        Color = "6"
	ColorWhite       Color = "7"
	ColorBrightRed   Color = "9"
	ColorBrightWhite Color = "15"
	ColorOrange      Color = "208"
	ColorGray        Color = "245"
	ColorBlack       Color = "#000000"
)
