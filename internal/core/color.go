package core

// Color is a palette slot for a screen cell. The platform layer maps each
// slot to a terminal color; the engine only picks slots.
type Color uint8

// Palette used by the runner. The names follow what is drawn with them.
const (
	ColorDefault Color = iota
	ColorGround        // track line
	ColorGlow          // player outline, HUD accents
	ColorCat           // player body
	ColorHat           // HAT obstacle
	ColorBook          // BOOK obstacle
	ColorElixir        // ELIXIR obstacle and collision burst
	ColorRitual        // decorative circle, borders
	ColorDanger        // game over title
	ColorMuted         // secondary text
)
