package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal colors.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault Color = iota
	ColorDirt
	ColorGrass
	ColorStone
	ColorPlayer
	ColorShard
	ColorEffect
	ColorHUD
	ColorDim
	ColorAlert
)
