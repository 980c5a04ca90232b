package render

import (
	"fmt"
	"io"

	"ludo/internal/app"
)

// Describe returns a one-line narration of an event, or "" for events that
// are not narrated.
func Describe(ev app.Event) string {
	switch p := ev.Payload.(type) {
	case app.GameStartedPayload:
		return fmt.Sprintf("Game %s started: %v", p.GameID, p.Players)
	case app.DiceRolledPayload:
		return fmt.Sprintf("%s rolled a %d", p.Player, p.Roll)
	case app.NoMovePayload:
		return fmt.Sprintf("%s has no legal move with %d", p.Player, p.Roll)
	case app.TokenMovedPayload:
		if p.Auto {
			return fmt.Sprintf("%s moves token %d (only option) to step %d", p.Player, p.Token+1, p.To)
		}
		return fmt.Sprintf("%s moves token %d to step %d", p.Player, p.Token+1, p.To)
	case app.TokenCapturedPayload:
		return fmt.Sprintf("%s captured %s's token %d on square %d", p.Player, p.Victim, p.Token+1, p.Position)
	case app.TokenFinishedPayload:
		return fmt.Sprintf("%s brought token %d home (%d/4)", p.Player, p.Token+1, p.Finished)
	case app.ExtraTurnPayload:
		return fmt.Sprintf("%s rolls again", p.Player)
	case app.GameEndedPayload:
		return fmt.Sprintf("%s wins after %d rolls!", p.Winner, p.Turns)
	}
	return ""
}

// Events writes the narration of every event that has one.
func Events(w io.Writer, events []app.Event) error {
	for _, ev := range events {
		line := Describe(ev)
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
