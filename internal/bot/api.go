package bot

import (
	"errors"

	"ludo/internal/app"
	"ludo/internal/ports"
)

// ErrNoLegalToken is returned when a brain is asked to choose from an empty set.
var ErrNoLegalToken = errors.New("no legal token to choose")

// Move represents the decision made by the AI.
type Move struct {
	Token int
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(view ports.ChoiceView) (Move, error)
	OnEvent(event app.Event)
}
