package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"ludo/internal/app/setup"
)

// HumanPolicy marks a seat played from the console.
const HumanPolicy = "human"

// RosterEntry is one seat in a roster file.
type RosterEntry struct {
	Name string `json:"name"`
	// Bot is a bot level, "human", or empty for the configured default level.
	Bot string `json:"bot,omitempty"`
}

// Roster lists the seats of a game in order.
type Roster struct {
	Players []RosterEntry `json:"players"`
}

// Seat is a resolved seat: who sits there and which policy plays it.
type Seat struct {
	Name   string
	Policy string // HumanPolicy or a bot level name
}

var (
	roster   *Roster
	loadOnce sync.Once
	loadErr  error
)

// LoadRoster loads the roster file from the given path.
func LoadRoster(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read roster: %w", err)
			return
		}

		var r Roster
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &r); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal roster: %w", err)
			return
		}
		roster = &r
	})
	return loadErr
}

// GetRoster returns the loaded roster, or nil.
func GetRoster() *Roster {
	return roster
}

// Seats resolves who plays each seat. A loaded roster wins over LUDO_PLAYERS;
// with neither, defaults names every seat. Names listed in LUDO_HUMANS are
// played from the console; they match seat names the way roster validation
// compares names.
func (c Config) Seats(defaults []string) []Seat {
	var seats []Seat
	switch r := GetRoster(); {
	case r != nil && len(r.Players) > 0:
		for _, entry := range r.Players {
			policy := strings.TrimSpace(entry.Bot)
			if policy == "" {
				policy = c.BotLevel
			}
			seats = append(seats, Seat{Name: entry.Name, Policy: policy})
		}
	case len(c.Players) > 0:
		for _, name := range c.Players {
			seats = append(seats, Seat{Name: name, Policy: c.BotLevel})
		}
	default:
		for _, name := range defaults {
			seats = append(seats, Seat{Name: name, Policy: c.BotLevel})
		}
	}

	for i := range seats {
		if slices.ContainsFunc(c.Humans, func(h string) bool {
			return setup.SameName(h, seats[i].Name)
		}) {
			seats[i].Policy = HumanPolicy
		}
	}
	return seats
}
