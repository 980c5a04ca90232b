package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"ludo/internal/dice"
	"ludo/internal/domain"
	"ludo/internal/logging"
	"ludo/internal/ports"
)

var (
	ErrChooserMissing = errors.New("every seat needs a chooser")
	ErrTurnLimit      = errors.New("turn limit reached without a winner")
	ErrDieFailed      = errors.New("die failed")
)

// Session binds one game to the choosers playing it.
type Session struct {
	ID       string
	Seed     int64
	Game     *domain.Game
	Choosers []ports.Chooser
	Policies []string // per seat, persisted with the game record
}

// TurnResult describes one resolved roll.
type TurnResult struct {
	Player int
	Roll   int
	Legal  []int
	Auto   bool // the only legal token was moved without asking
	Move   domain.MoveResult
	Status domain.TurnStatus
}

// Service runs turns: roll, legal tokens, choice, move, advance.
type Service struct {
	die      dice.Die
	logger   runtime.Logger
	history  ports.HistoryPort
	maxTurns int
	now      func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithHistory persists every game and roll to h.
func WithHistory(h ports.HistoryPort) Option {
	return func(s *Service) { s.history = h }
}

// WithMaxTurns overrides DefaultMaxTurns. Values <= 0 are ignored.
func WithMaxTurns(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTurns = n
		}
	}
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService constructs a Service with the provided die or a time-seeded default.
// A nil logger discards output.
func NewService(die dice.Die, logger runtime.Logger, opts ...Option) *Service {
	if die == nil {
		die = dice.NewSeeded(time.Now().UnixNano())
	}
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Service{
		die:      die,
		logger:   logger,
		maxTurns: DefaultMaxTurns,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartSession assigns an id to the game, records it and emits the start event.
// choosers[i] plays seat i.
func (s *Service) StartSession(ctx context.Context, game *domain.Game, choosers []ports.Chooser, policies []string, seed int64) (*Session, []Event, error) {
	if len(choosers) != len(game.Players) || slices.Contains(choosers, nil) {
		return nil, nil, ErrChooserMissing
	}

	sess := &Session{
		ID:       uuid.NewString(),
		Seed:     seed,
		Game:     game,
		Choosers: choosers,
		Policies: policies,
	}

	names := make([]string, len(game.Players))
	seats := make([]ports.SeatRecord, len(game.Players))
	for i, pl := range game.Players {
		names[i] = pl.Name
		seats[i] = ports.SeatRecord{Name: pl.Name, Colour: string(pl.Colour), Policy: policyAt(policies, i)}
	}

	if s.history != nil {
		err := s.history.CreateGame(ctx, ports.GameRecord{
			ID:        sess.ID,
			Seed:      seed,
			Seats:     seats,
			StartedAt: s.now().UTC(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("record game start: %w", err)
		}
	}

	s.logger.WithField("game", sess.ID).Info("Game started with %d players (seed %d)", len(names), seed)
	return sess, []Event{{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{GameID: sess.ID, Players: names, Seed: seed},
	}}, nil
}

// PlayTurn resolves exactly one roll for the current player.
// Choosers are only consulted when more than one token is legal. A chooser
// answer outside the legal set fails with domain.ErrIllegalMove.
func (s *Service) PlayTurn(ctx context.Context, sess *Session) (TurnResult, []Event, error) {
	game := sess.Game
	if game.Over() {
		return TurnResult{}, nil, domain.ErrGameOver
	}
	if err := ctx.Err(); err != nil {
		return TurnResult{}, nil, err
	}

	actor := game.Current
	name := playerName(game, actor)
	logger := s.logger.WithFields(map[string]interface{}{"game": sess.ID, "turn": game.Turn + 1})

	roll, err := s.die.Roll()
	if err != nil {
		return TurnResult{}, nil, fmt.Errorf("%w: %v", ErrDieFailed, err)
	}
	if !domain.ValidRoll(roll) {
		return TurnResult{}, nil, fmt.Errorf("die returned %d: %w", roll, domain.ErrRollOutOfRange)
	}

	legal, err := game.LegalTokens(actor, roll)
	if err != nil {
		return TurnResult{}, nil, err
	}
	logger.Debug("%s rolled %d, legal tokens %v", name, roll, legal)

	result := TurnResult{Player: actor, Roll: roll, Legal: legal}
	events := []Event{{
		Kind:    EventDiceRolled,
		Payload: DiceRolledPayload{Player: name, Roll: roll, Legal: legal},
	}}

	switch len(legal) {
	case 0:
		result.Move, err = game.Pass(actor, roll)
		if err != nil {
			return TurnResult{}, nil, err
		}
		events = append(events, Event{Kind: EventNoMove, Payload: NoMovePayload{Player: name, Roll: roll}})

	default:
		choice := legal[0]
		if len(legal) == 1 {
			result.Auto = true
		} else {
			view := ports.ChoiceView{Snapshot: game.Snapshot(), Player: actor, Roll: roll, Legal: slices.Clone(legal)}
			choice, err = sess.Choosers[actor].Choose(ctx, view)
			if err != nil {
				return TurnResult{}, nil, fmt.Errorf("choose token for %s: %w", name, err)
			}
		}

		result.Move, err = game.ApplyMove(actor, choice, roll)
		if err != nil {
			logger.Error("%s chose token %d outside legal set %v", name, choice, legal)
			return TurnResult{}, nil, err
		}
		events = append(events, moveEvents(game, result.Move, result.Auto)...)
		if result.Move.Captured != nil {
			logger.Info("%s captured %s's token %d on square %d", name, playerName(game, result.Move.Captured.Player), result.Move.Captured.Token+1, result.Move.Position)
		}
	}

	result.Status = game.Advance(result.Move.ExtraTurn)
	switch {
	case result.Status.Over:
		logger.Info("%s moved all tokens home and wins after %d rolls", name, game.Turn)
		events = append(events, Event{Kind: EventGameEnded, Payload: GameEndedPayload{Winner: name, Turns: game.Turn}})
	case result.Move.ExtraTurn:
		events = append(events, Event{Kind: EventExtraTurn, Payload: ExtraTurnPayload{Player: name}})
	default:
		events = append(events, Event{Kind: EventTurnChanged, Payload: TurnChangedPayload{Previous: name, Next: playerName(game, result.Status.Next)}})
	}

	s.record(ctx, logger, sess, result)
	return result, events, nil
}

// Run plays turns until someone wins, the context ends or the turn cap is hit.
// observe, when non-nil, sees every turn in order.
func (s *Service) Run(ctx context.Context, sess *Session, observe func(TurnResult, []Event)) (string, error) {
	for turns := 0; !sess.Game.Over(); turns++ {
		if turns >= s.maxTurns {
			return "", fmt.Errorf("%d rolls: %w", turns, ErrTurnLimit)
		}
		res, events, err := s.PlayTurn(ctx, sess)
		if err != nil {
			return "", err
		}
		if observe != nil {
			observe(res, events)
		}
	}
	return playerName(sess.Game, sess.Game.Winner), nil
}

func moveEvents(game *domain.Game, mv domain.MoveResult, auto bool) []Event {
	name := playerName(game, mv.Player)
	events := make([]Event, 0, 3)
	if mv.Captured != nil {
		events = append(events, Event{
			Kind: EventTokenCaptured,
			Payload: TokenCapturedPayload{
				Player:   name,
				Victim:   playerName(game, mv.Captured.Player),
				Token:    mv.Captured.Token,
				Position: mv.Position,
			},
		})
	}
	events = append(events, Event{
		Kind: EventTokenMoved,
		Payload: TokenMovedPayload{
			Player:   name,
			Token:    mv.Token,
			From:     mv.From,
			To:       mv.To,
			Position: mv.Position,
			Auto:     auto,
		},
	})
	if mv.Finished {
		events = append(events, Event{
			Kind: EventTokenFinished,
			Payload: TokenFinishedPayload{
				Player:   name,
				Token:    mv.Token,
				Finished: domain.CountFinished(game.Players[mv.Player]),
			},
		})
	}
	return events
}

// record persists the roll. History is best-effort: failures are logged and
// the game carries on.
func (s *Service) record(ctx context.Context, logger runtime.Logger, sess *Session, res TurnResult) {
	if s.history == nil {
		return
	}
	game := sess.Game
	turn := ports.TurnRecord{
		GameID:    sess.ID,
		Seq:       game.Turn,
		Player:    playerName(game, res.Player),
		Roll:      res.Roll,
		Token:     res.Move.Token,
		From:      res.Move.From,
		To:        res.Move.To,
		ExtraTurn: res.Move.ExtraTurn,
		At:        s.now().UTC(),
	}
	if c := res.Move.Captured; c != nil {
		turn.Captured = playerName(game, c.Player) + ":" + strconv.Itoa(c.Token)
	}
	if err := s.history.AppendTurn(ctx, turn); err != nil {
		logger.Error("Failed to record turn %d: %v", turn.Seq, err)
	}
	if res.Status.Over {
		if err := s.history.FinishGame(ctx, sess.ID, playerName(game, game.Winner), game.Turn, s.now().UTC()); err != nil {
			logger.Error("Failed to record winner: %v", err)
		}
	}
}

func policyAt(policies []string, i int) string {
	if i < len(policies) {
		return policies[i]
	}
	return ""
}
