package bot

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"ludo/internal/app"
	"ludo/internal/logging"
	"ludo/internal/ports"
)

// Agent represents an autonomous bot player. It satisfies ports.Chooser.
type Agent struct {
	ID       string
	Name     string
	Level    BotLevel
	Strategy Brain
	Logger   runtime.Logger
}

// NewAgent wires a brain for level to a named seat.
func NewAgent(id, name string, level BotLevel, strategy Brain, logger runtime.Logger) *Agent {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Agent{ID: id, Name: name, Level: level, Strategy: strategy, Logger: logger}
}

// Choose asks the strategy for a token.
func (a *Agent) Choose(ctx context.Context, view ports.ChoiceView) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	move, err := a.Strategy.CalculateMove(view)
	if err != nil {
		return 0, fmt.Errorf("bot %s: %w", a.Name, err)
	}
	if a.Logger != nil {
		a.Logger.Debug("Bot %s (%s) rolled %d and picked token %d from %v", a.Name, a.Level, view.Roll, move.Token+1, view.Legal)
	}
	return move.Token, nil
}

// OnGameEvent notifies the agent of a game event.
func (a *Agent) OnGameEvent(event app.Event) {
	a.Strategy.OnEvent(event)
}

var _ ports.Chooser = (*Agent)(nil)
