package internal

import (
	"slices"

	"ludo/internal/domain"
	"ludo/internal/ports"
)

// Outcome is what moving one token would do, derived from a snapshot.
type Outcome struct {
	Token      int
	From       int
	To         int
	Position   int // domain.NoPosition off the shared track
	LeavesYard bool
	EntersHome bool // crosses from the shared track into the home column
	Finishes   bool
	Captures   bool
	Victim     int // player hit by the move, -1 without a capture
	LandsSafe  bool
	// Threats lists, per opponent token that could reach the destination with
	// one roll, the owning player index.
	Threats []int
	// ThreatBefore counts the same for the square the token leaves.
	ThreatBefore int
}

// Threat is the number of opponent tokens that could hit the destination.
func (o Outcome) Threat() int {
	return len(o.Threats)
}

// Progress is the number of steps gained, counting a yard exit as one.
func (o Outcome) Progress() int {
	if o.LeavesYard {
		return 1
	}
	return o.To - o.From
}

// Evaluate predicts the result of every legal token in view.
func Evaluate(view ports.ChoiceView) []Outcome {
	out := make([]Outcome, 0, len(view.Legal))
	for _, idx := range view.Legal {
		out = append(out, evaluateToken(view, idx))
	}
	return out
}

func evaluateToken(view ports.ChoiceView, idx int) Outcome {
	me := view.Snapshot.Players[view.Player]
	tok := me.Tokens[idx]
	o := Outcome{Token: idx, From: tok.Step, Position: domain.NoPosition, Victim: -1}

	if tok.State == domain.TokenYard {
		o.LeavesYard = true
		o.To = 0
	} else {
		o.To = tok.Step + view.Roll
	}

	if tok.State == domain.TokenTrack {
		o.ThreatBefore = len(threatsAt(view, tok.Position))
	}

	if o.To >= domain.StepHomeEntry {
		o.EntersHome = tok.State == domain.TokenTrack
		o.Finishes = o.To == domain.StepFinished
		return o
	}

	o.Position = (me.StartIndex + o.To) % domain.TrackLength
	o.LandsSafe = slices.Contains(view.Snapshot.Safe, o.Position)
	if !o.LandsSafe {
		occ := view.Snapshot.Occupants[o.Position]
		if len(occ) == 1 && occ[0].Player != view.Player {
			o.Captures = true
			o.Victim = occ[0].Player
		}
		o.Threats = threatsAt(view, o.Position)
	}
	return o
}

// threatsAt finds opponent tokens 1..6 squares behind pos that would still be
// on the shared track when landing there. Safe squares are never threatened.
func threatsAt(view ports.ChoiceView, pos int) []int {
	if slices.Contains(view.Snapshot.Safe, pos) {
		return nil
	}
	var threats []int
	for p, pl := range view.Snapshot.Players {
		if p == view.Player {
			continue
		}
		for _, tok := range pl.Tokens {
			if tok.State != domain.TokenTrack {
				continue
			}
			dist := (pos - tok.Position + domain.TrackLength) % domain.TrackLength
			if dist >= 1 && dist <= domain.DieFaces && tok.Step+dist < domain.StepHomeEntry {
				threats = append(threats, p)
			}
		}
	}
	return threats
}
