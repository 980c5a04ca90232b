// Package setup validates a session roster and seats it on a new board.
package setup

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ludo/internal/domain"
)

const (
	// MinPlayers is the smallest roster that can start a game.
	MinPlayers = 2
	// MaxPlayers is the number of seats on the board.
	MaxPlayers = domain.MaxPlayers
)

var (
	ErrInvalidPlayerCount = errors.New("player count must be between 2 and 4")
	ErrEmptyName          = errors.New("player name cannot be empty")
	ErrDuplicateName      = errors.New("player names must be distinct")
)

// NormalizeName trims surrounding and repeated inner whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// SameName reports whether two names refer to the same player: equal after
// normalisation and case folding.
func SameName(a, b string) bool {
	return nameKey(a) == nameKey(b)
}

func nameKey(name string) string {
	return cases.Fold().String(NormalizeName(name))
}

// ValidateRoster checks the count and the names of a roster.
// Names are compared case-insensitively after normalisation.
func ValidateRoster(names []string) error {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return fmt.Errorf("got %d players: %w", len(names), ErrInvalidPlayerCount)
	}
	seen := make(map[string]int, len(names))
	for i, raw := range names {
		name := NormalizeName(raw)
		if name == "" {
			return fmt.Errorf("seat %d: %w", i+1, ErrEmptyName)
		}
		key := nameKey(name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("seats %d and %d are both %q: %w", prev+1, i+1, name, ErrDuplicateName)
		}
		seen[key] = i
	}
	return nil
}

// DisplayName title-cases a normalised name for boards and logs.
func DisplayName(name string) string {
	return cases.Title(language.Und, cases.NoLower).String(NormalizeName(name))
}

// NewGame validates names and seats them in order: red, green, yellow, blue.
func NewGame(names []string) (*domain.Game, error) {
	if err := ValidateRoster(names); err != nil {
		return nil, err
	}
	seats := make([]domain.Seat, len(names))
	for i, name := range names {
		seats[i] = domain.Seat{Name: DisplayName(name), Colour: domain.SeatColours[i]}
	}
	return domain.NewGame(seats), nil
}
