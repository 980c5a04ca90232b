package internal

// PhaseWeights tune move scoring for a specific phase.
type PhaseWeights struct {
	ProgressWeight float64
	CaptureBonus   float64
	LeaveYardBonus float64
	EnterHomeBonus float64
	FinishBonus    float64
	SafeBonus      float64
	ThreatPenalty  float64
	EscapeBonus    float64
}

// BotTuning defines phase weights for a bot difficulty.
type BotTuning struct {
	Opening PhaseWeights
	Mid     PhaseWeights
	End     PhaseWeights
}

// ForPhase returns the weights that match the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseOpening:
		return t.Opening
	case PhaseEnd:
		return t.End
	default:
		return t.Mid
	}
}

// ScoredMove holds an outcome with its computed score.
type ScoredMove struct {
	Outcome Outcome
	Score   float64
}

// ThreatWeight scales the danger posed by one opposing player.
type ThreatWeight func(player int) float64

// ScoreOutcome evaluates one predicted move with the given weights. A nil
// threat weight counts every threatening token as 1.
func ScoreOutcome(o Outcome, w PhaseWeights, threat ThreatWeight) float64 {
	score := float64(o.Progress()) * w.ProgressWeight
	if o.Captures {
		score += w.CaptureBonus
	}
	if o.LeavesYard {
		score += w.LeaveYardBonus
	}
	if o.EntersHome {
		score += w.EnterHomeBonus
	}
	if o.Finishes {
		score += w.FinishBonus
	}
	if o.LandsSafe {
		score += w.SafeBonus
	}
	danger := 0.0
	for _, p := range o.Threats {
		if threat == nil {
			danger++
			continue
		}
		danger += threat(p)
	}
	score -= danger * w.ThreatPenalty
	if o.ThreatBefore > 0 && o.Threat() == 0 {
		score += float64(o.ThreatBefore) * w.EscapeBonus
	}
	return score
}

// BuildScoredMoves scores each outcome, keeping input order.
func BuildScoredMoves(outcomes []Outcome, weights PhaseWeights, threat ThreatWeight) []ScoredMove {
	scored := make([]ScoredMove, 0, len(outcomes))
	for _, o := range outcomes {
		scored = append(scored, ScoredMove{Outcome: o, Score: ScoreOutcome(o, weights, threat)})
	}
	return scored
}
