package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorRed
	ColorCyan
	ColorWhite
	ColorGray
)

// Semantic aliases for arena elements.
const (
	ColorBamboo   = ColorGreen
	ColorShoot    = ColorBrightGreen
	ColorPaddle   = ColorBrightYellow
	ColorBall     = ColorWhite
	ColorParticle = ColorYellow
	ColorBorder   = ColorGray
	ColorWin      = ColorBrightGreen
	ColorLose     = ColorRed
	ColorHUD      = ColorCyan
)
