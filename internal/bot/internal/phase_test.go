package internal

import (
	"testing"

	"ludo/internal/domain"
)

func newGame(t *testing.T, players int) *domain.Game {
	t.Helper()
	seats := make([]domain.Seat, players)
	for i := range seats {
		seats[i] = domain.Seat{Name: string(rune('a' + i))}
	}
	return domain.NewGame(seats)
}

func TestDetectPhase_Opening(t *testing.T) {
	g := newGame(t, 2)
	if got := DetectPhase(g.Snapshot(), 0); got != PhaseOpening {
		t.Fatalf("DetectPhase = %v, want %v", got, PhaseOpening)
	}
}

func TestDetectPhase_Mid(t *testing.T) {
	g := newGame(t, 2)
	g.Players[0].Tokens[0].Step = 10
	g.Players[0].Tokens[1].Step = 3

	if got := DetectPhase(g.Snapshot(), 0); got != PhaseMid {
		t.Fatalf("DetectPhase = %v, want %v", got, PhaseMid)
	}
}

func TestDetectPhase_End(t *testing.T) {
	t.Run("own tokens home", func(t *testing.T) {
		g := newGame(t, 2)
		g.Players[0].Tokens[0].Step = 53
		g.Players[0].Tokens[1].Step = domain.StepFinished
		if got := DetectPhase(g.Snapshot(), 0); got != PhaseEnd {
			t.Fatalf("DetectPhase = %v, want %v", got, PhaseEnd)
		}
	})
	t.Run("opponent close to winning", func(t *testing.T) {
		g := newGame(t, 2)
		for i := 0; i < 3; i++ {
			g.Players[1].Tokens[i].Step = domain.StepFinished
		}
		if got := DetectPhase(g.Snapshot(), 0); got != PhaseEnd {
			t.Fatalf("DetectPhase = %v, want %v", got, PhaseEnd)
		}
	})
}

func TestBotTuningForPhase(t *testing.T) {
	tuning := BotTuning{
		Opening: PhaseWeights{ProgressWeight: 1},
		Mid:     PhaseWeights{ProgressWeight: 2},
		End:     PhaseWeights{ProgressWeight: 3},
	}
	for phase, want := range map[GamePhase]float64{PhaseOpening: 1, PhaseMid: 2, PhaseEnd: 3} {
		if got := tuning.ForPhase(phase).ProgressWeight; got != want {
			t.Fatalf("ForPhase(%v) = %v, want %v", phase, got, want)
		}
	}
}
