package bot

import (
	"sort"

	"ludo/internal/app"
	"ludo/internal/bot/brain"
	"ludo/internal/bot/internal"
	"ludo/internal/ports"
)

// SmartBot scores every legal move with phase weights and weighs danger by
// how aggressive each opponent has been so far. Captures against players who
// already brought tokens home score higher.
type SmartBot struct {
	Memory *brain.GameMemory
	Tuning internal.BotTuning
}

// NewSmartBot returns a SmartBot using DefaultTuning.
func NewSmartBot(self string) *SmartBot {
	return &SmartBot{Memory: brain.NewMemory(self), Tuning: DefaultTuning}
}

func (b *SmartBot) CalculateMove(view ports.ChoiceView) (Move, error) {
	if len(view.Legal) == 0 {
		return Move{}, ErrNoLegalToken
	}

	phase := internal.DetectPhase(view.Snapshot, view.Player)
	weights := b.Tuning.ForPhase(phase)
	scored := internal.BuildScoredMoves(internal.Evaluate(view), weights, b.threatWeight(view))
	b.targetLeaders(view, weights, scored)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return Move{Token: scored[0].Outcome.Token}, nil
}

// threatWeight rates an opponent 1 plus four times its capture rate.
func (b *SmartBot) threatWeight(view ports.ChoiceView) internal.ThreatWeight {
	if b.Memory == nil {
		return nil
	}
	return func(player int) float64 {
		return 1 + 4*b.Memory.Aggression(view.Snapshot.Players[player].Name)
	}
}

// targetLeaders adds a quarter of the capture bonus per token the victim has
// finished.
func (b *SmartBot) targetLeaders(view ports.ChoiceView, w internal.PhaseWeights, scored []internal.ScoredMove) {
	if b.Memory == nil {
		return
	}
	for i := range scored {
		o := scored[i].Outcome
		if !o.Captures {
			continue
		}
		victim := view.Snapshot.Players[o.Victim].Name
		scored[i].Score += w.CaptureBonus * 0.25 * float64(b.Memory.Finished(victim))
	}
}

func (b *SmartBot) OnEvent(event app.Event) {
	if b.Memory != nil {
		b.Memory.Observe(event)
	}
}
