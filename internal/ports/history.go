package ports

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a game id is unknown to the store.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a game id or turn sequence is reused.
	ErrAlreadyExists = errors.New("record already exists")
)

// SeatRecord is one roster entry as persisted.
type SeatRecord struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
	Policy string `json:"policy"` // bot level or "human"
}

// GameRecord is the persisted header of a game.
type GameRecord struct {
	ID         string
	Seed       int64
	Seats      []SeatRecord
	Winner     string // winner name, empty while running
	Turns      int
	StartedAt  time.Time
	FinishedAt time.Time // zero while running
}

// TurnRecord captures one resolved roll.
type TurnRecord struct {
	GameID    string
	Seq       int
	Player    string
	Roll      int
	Token     int    // -1 when the roll could not be used
	From      int    // 0 when Token is -1
	To        int    // 0 when Token is -1
	Captured  string // "player:token" of the captured token, empty otherwise
	ExtraTurn bool
	At        time.Time
}

// LeaderboardEntry aggregates finished games per player name.
type LeaderboardEntry struct {
	Name   string
	Wins   int
	Played int
}

// HistoryPort stores played games and their rolls.
type HistoryPort interface {
	// CreateGame inserts the header of a new game.
	CreateGame(ctx context.Context, game GameRecord) error

	// AppendTurn stores one resolved roll. Seq must grow by one per game.
	AppendTurn(ctx context.Context, turn TurnRecord) error

	// FinishGame records the winner and the number of resolved rolls.
	FinishGame(ctx context.Context, gameID, winner string, turns int, at time.Time) error

	// GetGame loads a game header.
	GetGame(ctx context.Context, gameID string) (GameRecord, error)

	// ListTurns returns every roll of a game in order.
	ListTurns(ctx context.Context, gameID string) ([]TurnRecord, error)

	// Leaderboard returns players ordered by wins, then name.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
