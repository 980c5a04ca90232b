package ports

import (
	"context"

	"ludo/internal/domain"
)

// ChoiceView is everything a chooser may look at when picking a token.
type ChoiceView struct {
	Snapshot domain.Snapshot
	Player   int   // index of the acting player
	Roll     int   // die value being spent
	Legal    []int // token indices that may move, ascending
}

// Chooser picks which token to move for a roll.
type Chooser interface {
	// Choose returns one element of view.Legal.
	// A value outside the legal set is rejected by the caller as an illegal move.
	Choose(ctx context.Context, view ChoiceView) (int, error)
}

// ChooserFunc adapts a plain function to Chooser.
type ChooserFunc func(ctx context.Context, view ChoiceView) (int, error)

// Choose calls f.
func (f ChooserFunc) Choose(ctx context.Context, view ChoiceView) (int, error) {
	return f(ctx, view)
}
