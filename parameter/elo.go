package parameter

// Elo tournament defaults.
const (
	EloInitialRating = 1200.0
	EloK             = 32.0
	EloDenominator   = 400.0
)
