package app

import "ludo/internal/domain"

// EventKind identifies emitted game events for drivers and renderers.
type EventKind string

const (
	EventGameStarted   EventKind = "game_started"
	EventDiceRolled    EventKind = "dice_rolled"
	EventTokenMoved    EventKind = "token_moved"
	EventTokenCaptured EventKind = "token_captured"
	EventTokenFinished EventKind = "token_finished"
	EventNoMove        EventKind = "no_move"
	EventExtraTurn     EventKind = "extra_turn"
	EventTurnChanged   EventKind = "turn_changed"
	EventGameEnded     EventKind = "game_ended"
)

// Event is an app event with a typed payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type GameStartedPayload struct {
	GameID  string
	Players []string
	Seed    int64
}

type DiceRolledPayload struct {
	Player string
	Roll   int
	Legal  []int
}

type TokenMovedPayload struct {
	Player   string
	Token    int
	From     int
	To       int
	Position int
	Auto     bool
}

type TokenCapturedPayload struct {
	Player   string
	Victim   string
	Token    int
	Position int
}

type TokenFinishedPayload struct {
	Player   string
	Token    int
	Finished int // tokens home for this player, this one included
}

type NoMovePayload struct {
	Player string
	Roll   int
}

type ExtraTurnPayload struct {
	Player string
}

type TurnChangedPayload struct {
	Previous string
	Next     string
}

type GameEndedPayload struct {
	Winner string
	Turns  int
}

func playerName(game *domain.Game, idx int) string {
	if idx < 0 || idx >= len(game.Players) {
		return ""
	}
	return game.Players[idx].Name
}
