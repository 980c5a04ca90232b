package bot

import (
	botinternal "ludo/internal/bot/internal"
)

// DefaultTuning holds the smart bot weights per game phase.
var DefaultTuning = botinternal.BotTuning{
	Opening: botinternal.PhaseWeights{
		ProgressWeight: 0.5,
		CaptureBonus:   20,
		LeaveYardBonus: 18,
		EnterHomeBonus: 8,
		FinishBonus:    12,
		SafeBonus:      4,
		ThreatPenalty:  5,
		EscapeBonus:    3,
	},
	Mid: botinternal.PhaseWeights{
		ProgressWeight: 1,
		CaptureBonus:   25,
		LeaveYardBonus: 10,
		EnterHomeBonus: 12,
		FinishBonus:    15,
		SafeBonus:      6,
		ThreatPenalty:  8,
		EscapeBonus:    5,
	},
	End: botinternal.PhaseWeights{
		ProgressWeight: 1.5,
		CaptureBonus:   15,
		LeaveYardBonus: 6,
		EnterHomeBonus: 16,
		FinishBonus:    25,
		SafeBonus:      5,
		ThreatPenalty:  10,
		EscapeBonus:    6,
	},
}
