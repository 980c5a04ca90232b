package internal

import "ludo/internal/domain"

// GamePhase describes the current strategic stage of a game.
type GamePhase int

const (
	// PhaseOpening indicates the acting player still has most tokens in the yard.
	PhaseOpening GamePhase = iota
	// PhaseMid indicates tokens are racing on the shared track.
	PhaseMid
	// PhaseEnd indicates someone has three tokens home or the player is mostly in the home column.
	PhaseEnd
)

// DetectPhase infers the phase from the acting player's tokens and the leader's finished count.
func DetectPhase(snap domain.Snapshot, player int) GamePhase {
	if player < 0 || player >= len(snap.Players) {
		return PhaseMid
	}

	for _, pl := range snap.Players {
		if pl.Finished >= domain.TokensPerPlayer-1 {
			return PhaseEnd
		}
	}

	yard, home := 0, 0
	for _, tok := range snap.Players[player].Tokens {
		switch tok.State {
		case domain.TokenYard:
			yard++
		case domain.TokenHome, domain.TokenFinished:
			home++
		}
	}
	switch {
	case home >= domain.TokensPerPlayer/2:
		return PhaseEnd
	case yard >= domain.TokensPerPlayer-1:
		return PhaseOpening
	default:
		return PhaseMid
	}
}
