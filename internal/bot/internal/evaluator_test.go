package internal

import (
	"reflect"
	"testing"

	"ludo/internal/domain"
	"ludo/internal/ports"
)

func viewFor(t *testing.T, g *domain.Game, player, roll int) ports.ChoiceView {
	t.Helper()
	legal, err := g.LegalTokens(player, roll)
	if err != nil {
		t.Fatalf("LegalTokens: %v", err)
	}
	return ports.ChoiceView{Snapshot: g.Snapshot(), Player: player, Roll: roll, Legal: legal}
}

func outcomeFor(t *testing.T, outcomes []Outcome, token int) Outcome {
	t.Helper()
	for _, o := range outcomes {
		if o.Token == token {
			return o
		}
	}
	t.Fatalf("no outcome for token %d", token)
	return Outcome{}
}

func TestEvaluateCaptureAndThreat(t *testing.T) {
	g := newGame(t, 2)
	// A token 0 on square 2, B token 0 on square 5 (13+44).
	g.Players[0].Tokens[0].Step = 2
	g.Players[1].Tokens[0].Step = 44
	// A token 1 on square 20, B token 1 on square 17 (13+4) three behind it.
	g.Players[0].Tokens[1].Step = 20
	g.Players[1].Tokens[1].Step = 4

	outcomes := Evaluate(viewFor(t, g, 0, 3))

	hit := outcomeFor(t, outcomes, 0)
	if !hit.Captures || hit.Victim != 1 || hit.Position != 5 || hit.Progress() != 3 {
		t.Fatalf("capture outcome = %+v", hit)
	}

	run := outcomeFor(t, outcomes, 1)
	if run.Captures || run.Victim != -1 {
		t.Fatalf("run outcome = %+v, want no capture", run)
	}
	if run.ThreatBefore != 1 {
		t.Fatalf("threat before = %d, want 1", run.ThreatBefore)
	}
	// Square 23 sits six ahead of B's token on 17.
	if !reflect.DeepEqual(run.Threats, []int{1}) {
		t.Fatalf("threats = %v, want [1]", run.Threats)
	}
}

func TestEvaluateYardExitAndHome(t *testing.T) {
	g := newGame(t, 2)
	g.Players[0].Tokens[1].Step = 49
	g.Players[0].Tokens[2].Step = 51

	outcomes := Evaluate(viewFor(t, g, 0, 6))

	exit := outcomeFor(t, outcomes, 0)
	if !exit.LeavesYard || !exit.LandsSafe || exit.Progress() != 1 || exit.Position != 0 {
		t.Fatalf("yard exit outcome = %+v", exit)
	}

	enter := outcomeFor(t, outcomes, 1)
	if !enter.EntersHome || enter.Finishes || enter.Position != domain.NoPosition {
		t.Fatalf("home entry outcome = %+v", enter)
	}

	finish := outcomeFor(t, outcomes, 2)
	if !finish.Finishes || finish.To != domain.StepFinished {
		t.Fatalf("finish outcome = %+v", finish)
	}
}

func TestScoreOutcome(t *testing.T) {
	w := PhaseWeights{ProgressWeight: 1, CaptureBonus: 10, ThreatPenalty: 4, EscapeBonus: 2}

	capture := Outcome{From: 2, To: 5, Captures: true}
	if got := ScoreOutcome(capture, w, nil); got != 13 {
		t.Fatalf("capture score = %v, want 13", got)
	}

	exposed := Outcome{From: 2, To: 5, Threats: []int{1, 2}}
	if got := ScoreOutcome(exposed, w, nil); got != 3-8 {
		t.Fatalf("exposed score = %v, want -5", got)
	}
	weighted := ScoreOutcome(exposed, w, func(p int) float64 { return float64(p) })
	if weighted != 3-12 {
		t.Fatalf("weighted score = %v, want -9", weighted)
	}

	escape := Outcome{From: 2, To: 5, ThreatBefore: 2}
	if got := ScoreOutcome(escape, w, nil); got != 7 {
		t.Fatalf("escape score = %v, want 7", got)
	}
}
