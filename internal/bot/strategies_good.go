package bot

import (
	"ludo/internal/app"
	"ludo/internal/bot/internal"
	"ludo/internal/ports"
)

// GoodBot is greedy: finish a token, else capture, else leave the yard, else
// push the token that has travelled furthest.
type GoodBot struct{}

func (b *GoodBot) CalculateMove(view ports.ChoiceView) (Move, error) {
	if len(view.Legal) == 0 {
		return Move{}, ErrNoLegalToken
	}

	outcomes := internal.Evaluate(view)
	best := outcomes[0]
	for _, o := range outcomes[1:] {
		if greedyRank(o) > greedyRank(best) {
			best = o
		}
	}
	return Move{Token: best.Token}, nil
}

func (b *GoodBot) OnEvent(app.Event) {}

// greedyRank orders outcomes; ties keep the lowest token index.
func greedyRank(o internal.Outcome) int {
	switch {
	case o.Finishes:
		return 300
	case o.Captures:
		return 200
	case o.LeavesYard:
		return 100
	default:
		return o.From
	}
}
