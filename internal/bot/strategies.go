package bot

import (
	"math/rand"

	"ludo/internal/app"
	"ludo/internal/ports"
)

// StandardBot always moves the lowest-numbered legal token.
type StandardBot struct{}

func (b *StandardBot) CalculateMove(view ports.ChoiceView) (Move, error) {
	if len(view.Legal) == 0 {
		return Move{}, ErrNoLegalToken
	}
	return Move{Token: view.Legal[0]}, nil
}

func (b *StandardBot) OnEvent(app.Event) {}

// RandomBot picks uniformly among legal tokens.
type RandomBot struct {
	rng *rand.Rand
}

func (b *RandomBot) CalculateMove(view ports.ChoiceView) (Move, error) {
	if len(view.Legal) == 0 {
		return Move{}, ErrNoLegalToken
	}
	return Move{Token: view.Legal[b.rng.Intn(len(view.Legal))]}, nil
}

func (b *RandomBot) OnEvent(app.Event) {}
