package core

// Color is a logical foreground color. Each frontend maps it to its own
// palette: ANSI codes in the terminal, RGBA in the window.
type Color uint8

const (
	ColorDefault     Color = iota // Terminal default, white in the window
	ColorRed                      // Player
	ColorGreen                    // Apples
	ColorYellow                   // Banners
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorGray // Help text
)
