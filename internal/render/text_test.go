package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ludo/internal/app"
	"ludo/internal/domain"
)

func newGame(t *testing.T) *domain.Game {
	t.Helper()
	return domain.NewGame([]domain.Seat{{Name: "Ann"}, {Name: "Bob"}})
}

func TestTextBoard(t *testing.T) {
	g := newGame(t)
	g.Players[0].Tokens[0].Step = 5  // square 5
	g.Players[0].Tokens[1].Step = 13 // square 13
	g.Players[1].Tokens[0].Step = 0  // square 13, safe
	g.Players[1].Tokens[1].Step = 53
	g.Players[1].Tokens[2].Step = domain.StepFinished

	var buf bytes.Buffer
	if err := Text(&buf, g.Snapshot()); err != nil {
		t.Fatalf("Text: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	want := []string{
		"Main track (0-51):",
		". . . . . R . . . . . . .",
		"2 . . . . . . . . . . . .",
		". . . . . . . . . . . . .",
		". . . . . . . . . . . . .",
		"Ann (Red, home entry 51) *:",
		"  Token 1: track pos 5 (step 5)",
		"  Token 2: track pos 13 (step 13)",
		"  Token 3: yard",
		"  Token 4: yard",
		"Bob (Green, home entry 12):",
		"  Token 1: track pos 13 (step 0)",
		"  Token 2: home 1",
		"  Token 3: finished",
		"  Token 4: yard",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTextReportsWriteError(t *testing.T) {
	if err := Text(failingWriter{}, newGame(t).Snapshot()); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestEventsNarration(t *testing.T) {
	var buf bytes.Buffer
	err := Events(&buf, []app.Event{
		{Kind: app.EventDiceRolled, Payload: app.DiceRolledPayload{Player: "Ann", Roll: 6}},
		{Kind: app.EventTokenMoved, Payload: app.TokenMovedPayload{Player: "Ann", Token: 0, To: 0, Auto: true}},
		{Kind: app.EventTurnChanged, Payload: app.TurnChangedPayload{Previous: "Ann", Next: "Bob"}},
		{Kind: app.EventGameEnded, Payload: app.GameEndedPayload{Winner: "Ann", Turns: 90}},
	})
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	want := "Ann rolled a 6\n" +
		"Ann moves token 1 (only option) to step 0\n" +
		"Ann wins after 90 rolls!\n"
	if buf.String() != want {
		t.Fatalf("narration = %q, want %q", buf.String(), want)
	}
}
