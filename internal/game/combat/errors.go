package combat

import "errors"

// Validation errors. Callers that produced the bad value are expected to re-prompt.
var (
	ErrInvalidMode        = errors.New("invalid mode")
	ErrInvalidLevel       = errors.New("invalid level")
	ErrInvalidFightResult = errors.New("invalid fight result")
	ErrEmptyName          = errors.New("name must not be empty")
	ErrWhitespaceInName   = errors.New("name must not contain whitespace")
)

// ErrQuit is returned by a MoveSelector when the player chooses to leave the game.
var ErrQuit = errors.New("player quit")

// ErrBattleOver is returned when an exchange is requested after the player was eliminated.
var ErrBattleOver = errors.New("battle is over")
