package constants

// MaxDisplayedMoves caps the move list shown for a Pokémon.
const MaxDisplayedMoves = 20

// SpriteScale is the integer upscale applied to 96px sprites in the window.
const SpriteScale = 3
