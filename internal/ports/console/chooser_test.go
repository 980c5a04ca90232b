package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludo/internal/domain"
	"ludo/internal/ports"
)

func choiceView(t *testing.T) ports.ChoiceView {
	t.Helper()
	g := domain.NewGame([]domain.Seat{{Name: "Ann"}, {Name: "Bob"}})
	g.Players[0].Tokens[2].Step = 10
	legal, err := g.LegalTokens(0, 6)
	require.NoError(t, err)
	return ports.ChoiceView{Snapshot: g.Snapshot(), Player: 0, Roll: 6, Legal: legal}
}

func TestChooserRepromptsUntilLegal(t *testing.T) {
	var out bytes.Buffer
	c := NewChooser(strings.NewReader("abc\n9\n3\n"), &out)

	token, err := c.Choose(context.Background(), choiceView(t))
	require.NoError(t, err)
	assert.Equal(t, 2, token)

	text := out.String()
	assert.Contains(t, text, "Ann rolled a 6")
	assert.Contains(t, text, "  3: track pos 10 (step 10)")
	assert.Contains(t, text, "Invalid input. Please enter a number.")
	assert.Contains(t, text, "Invalid selection. Choose one of the movable tokens.")
	assert.Equal(t, 3, strings.Count(text, "Select the token to move"))
}

func TestChooserInputClosed(t *testing.T) {
	c := NewChooser(strings.NewReader("7\n"), &bytes.Buffer{})
	_, err := c.Choose(context.Background(), choiceView(t))
	require.ErrorIs(t, err, ErrInputClosed)
}

func TestChooserHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewChooser(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := c.Choose(ctx, choiceView(t))
	require.ErrorIs(t, err, context.Canceled)
}
