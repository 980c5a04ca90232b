package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludo/internal/config"
	"ludo/internal/ports/sqlite"
)

func TestRunBotGameWithHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	cfg := config.Config{
		Players:  []string{"ann", "bob", "cid"},
		Seed:     11,
		BotLevel: "greedy",
		DBPath:   dbPath,
		LogLevel: "error",
		MaxTurns: 10000,
	}

	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out, &errOut))

	text := out.String()
	assert.Contains(t, text, "Game ")
	assert.Contains(t, text, "wins after")
	assert.Contains(t, text, "Main track (0-51):")
	assert.Contains(t, text, "Leaderboard:")
	assert.Contains(t, text, "1st")

	store, err := sqlite.Open(context.Background(), dbPath)
	require.NoError(t, err)
	defer store.Close()
	board, err := store.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, 1, board[0].Wins)
}

func TestRunConsolePlayer(t *testing.T) {
	cfg := config.Config{
		Players:  []string{"Ann", "Bob"},
		Humans:   []string{"Ann"},
		Seed:     3,
		BotLevel: "first",
		LogLevel: "error",
		MaxTurns: 10000,
	}
	// Always answering 1..4 in turn lets the console seat pick a legal token eventually.
	input := strings.Repeat("1\n2\n3\n4\n", 2000)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(input), &out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "wins after")
	assert.Contains(t, out.String(), "Select the token to move")
}

func TestRunRejectsBadRoster(t *testing.T) {
	cfg := config.Config{Players: []string{"Ann"}, BotLevel: "first", MaxTurns: 10}
	require.Error(t, run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))

	cfg = config.Config{Players: []string{"Ann", "Bob"}, BotLevel: "god", MaxTurns: 10}
	require.Error(t, run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}))
}
