// Package sqlite persists game history in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	jsoniter "github.com/json-iterator/go"
	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"ludo/internal/ports"
	"ludo/internal/ports/sqlite/migrations"
)

const (
	tableGames   = "games"
	tablePlayers = "game_players"
	tableTurns   = "turns"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store implements ports.HistoryPort on SQLite.
type Store struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

var _ ports.HistoryPort = (*Store)(nil)

type gameRow struct {
	ID         string         `db:"id"`
	Seed       int64          `db:"seed"`
	SeatsJSON  string         `db:"seats_json"`
	Winner     sql.NullString `db:"winner"`
	Turns      int            `db:"turns"`
	StartedAt  int64          `db:"started_at"`
	FinishedAt sql.NullInt64  `db:"finished_at"`
}

type turnRow struct {
	GameID    string `db:"game_id"`
	Seq       int    `db:"seq"`
	Player    string `db:"player"`
	Roll      int    `db:"roll"`
	Token     int    `db:"token"`
	From      int    `db:"from_step"`
	To        int    `db:"to_step"`
	Captured  string `db:"captured"`
	ExtraTurn bool   `db:"extra_turn"`
	At        int64  `db:"at"`
}

type leaderRow struct {
	Name   string `db:"name"`
	Wins   int    `db:"wins"`
	Played int    `db:"played"`
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite history store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db.DB, migrations.FS, ""); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, dialect: goqu.Dialect("sqlite3")}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateGame inserts the game header and its seats in one transaction.
func (s *Store) CreateGame(ctx context.Context, game ports.GameRecord) error {
	if strings.TrimSpace(game.ID) == "" {
		return fmt.Errorf("game id is required")
	}
	seats, err := json.Marshal(game.Seats)
	if err != nil {
		return fmt.Errorf("encode seats: %w", err)
	}

	startedAt := game.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	insertGame, args, err := s.dialect.Insert(tableGames).Prepared(true).Rows(goqu.Record{
		"id":         game.ID,
		"seed":       game.Seed,
		"seats_json": string(seats),
		"turns":      0,
		"started_at": toMillis(startedAt),
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build game insert: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, insertGame, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("game %s: %w", game.ID, ports.ErrAlreadyExists)
		}
		return fmt.Errorf("insert game: %w", err)
	}

	if len(game.Seats) > 0 {
		rows := make([]any, len(game.Seats))
		for i, seat := range game.Seats {
			rows[i] = goqu.Record{
				"game_id": game.ID,
				"seat":    i,
				"name":    seat.Name,
				"colour":  seat.Colour,
				"policy":  seat.Policy,
			}
		}
		insertSeats, args, err := s.dialect.Insert(tablePlayers).Prepared(true).Rows(rows...).ToSQL()
		if err != nil {
			return fmt.Errorf("build seat insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertSeats, args...); err != nil {
			return fmt.Errorf("insert seats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// AppendTurn stores one resolved roll.
func (s *Store) AppendTurn(ctx context.Context, turn ports.TurnRecord) error {
	query, args, err := s.dialect.Insert(tableTurns).Prepared(true).Rows(goqu.Record{
		"game_id":    turn.GameID,
		"seq":        turn.Seq,
		"player":     turn.Player,
		"roll":       turn.Roll,
		"token":      turn.Token,
		"from_step":  turn.From,
		"to_step":    turn.To,
		"captured":   turn.Captured,
		"extra_turn": turn.ExtraTurn,
		"at":         toMillis(turn.At),
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build turn insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("game %s turn %d: %w", turn.GameID, turn.Seq, ports.ErrAlreadyExists)
		case isForeignKeyViolation(err):
			return fmt.Errorf("game %s: %w", turn.GameID, ports.ErrNotFound)
		}
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// FinishGame records the winner of a game.
func (s *Store) FinishGame(ctx context.Context, gameID, winner string, turns int, at time.Time) error {
	query, args, err := s.dialect.Update(tableGames).Prepared(true).Set(goqu.Record{
		"winner":      winner,
		"turns":       turns,
		"finished_at": toMillis(at),
	}).Where(goqu.C("id").Eq(gameID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build game update: %w", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("game %s: %w", gameID, ports.ErrNotFound)
	}
	return nil
}

// GetGame loads a game header.
func (s *Store) GetGame(ctx context.Context, gameID string) (ports.GameRecord, error) {
	query, args, err := s.dialect.From(tableGames).Prepared(true).
		Select("id", "seed", "seats_json", "winner", "turns", "started_at", "finished_at").
		Where(goqu.C("id").Eq(gameID)).ToSQL()
	if err != nil {
		return ports.GameRecord{}, fmt.Errorf("build game select: %w", err)
	}

	var row gameRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.GameRecord{}, fmt.Errorf("game %s: %w", gameID, ports.ErrNotFound)
		}
		return ports.GameRecord{}, fmt.Errorf("get game: %w", err)
	}

	rec := ports.GameRecord{
		ID:        row.ID,
		Seed:      row.Seed,
		Winner:    row.Winner.String,
		Turns:     row.Turns,
		StartedAt: fromMillis(row.StartedAt),
	}
	if row.FinishedAt.Valid {
		rec.FinishedAt = fromMillis(row.FinishedAt.Int64)
	}
	if err := json.Unmarshal([]byte(row.SeatsJSON), &rec.Seats); err != nil {
		return ports.GameRecord{}, fmt.Errorf("decode seats: %w", err)
	}
	return rec, nil
}

// ListTurns returns every roll of a game in sequence order.
func (s *Store) ListTurns(ctx context.Context, gameID string) ([]ports.TurnRecord, error) {
	query, args, err := s.dialect.From(tableTurns).Prepared(true).
		Select("game_id", "seq", "player", "roll", "token", "from_step", "to_step", "captured", "extra_turn", "at").
		Where(goqu.C("game_id").Eq(gameID)).
		Order(goqu.C("seq").Asc()).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build turn select: %w", err)
	}

	var rows []turnRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	turns := make([]ports.TurnRecord, len(rows))
	for i, r := range rows {
		turns[i] = ports.TurnRecord{
			GameID:    r.GameID,
			Seq:       r.Seq,
			Player:    r.Player,
			Roll:      r.Roll,
			Token:     r.Token,
			From:      r.From,
			To:        r.To,
			Captured:  r.Captured,
			ExtraTurn: r.ExtraTurn,
			At:        fromMillis(r.At),
		}
	}
	return turns, nil
}

// Leaderboard counts wins and finished games per player name.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]ports.LeaderboardEntry, error) {
	ds := s.dialect.From(goqu.T(tablePlayers).As("p")).Prepared(true).
		Join(goqu.T(tableGames).As("g"), goqu.On(goqu.I("g.id").Eq(goqu.I("p.game_id")))).
		Select(
			goqu.I("p.name").As("name"),
			goqu.SUM(goqu.Case().When(goqu.I("g.winner").Eq(goqu.I("p.name")), 1).Else(0)).As("wins"),
			goqu.COUNT(goqu.Star()).As("played"),
		).
		Where(goqu.I("g.finished_at").IsNotNull()).
		GroupBy(goqu.I("p.name")).
		Order(goqu.C("wins").Desc(), goqu.C("name").Asc())
	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard: %w", err)
	}

	var rows []leaderRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	entries := make([]ports.LeaderboardEntry, len(rows))
	for i, r := range rows {
		entries[i] = ports.LeaderboardEntry{Name: r.Name, Wins: r.Wins, Played: r.Played}
	}
	return entries, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
