package domain

import "errors"

var (
	// ErrIllegalMove means the caller asked to move a token outside the legal set.
	ErrIllegalMove = errors.New("illegal move")
	// ErrRollOutOfRange means the die produced a value outside 1..6.
	ErrRollOutOfRange = errors.New("die roll out of range")
	// ErrGameOver means a winner was already declared.
	ErrGameOver = errors.New("game is over")
	// ErrUnknownPlayer means the player index does not address a seat.
	ErrUnknownPlayer = errors.New("player not found")
	// ErrNotYourTurn means a seat other than the current one tried to act.
	ErrNotYourTurn = errors.New("not this player's turn")
)
