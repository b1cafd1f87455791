package core

// Color is a foreground color for a screen cell, drawn from a fixed
// ANSI 256-color palette.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown

	colorCount
)

// ansiCodes holds the 256-color code of each palette entry.
// ColorDefault has none: it keeps the terminal's own foreground.
var ansiCodes = [colorCount]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightBlue:   "12",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorGray:         "245",
	ColorBrown:        "130",
}

// ANSI returns the color's 256-color code, or "" for the default color
// and values outside the palette.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Palette returns every color in the palette, default first.
func Palette() []Color {
	colors := make([]Color, colorCount)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}
