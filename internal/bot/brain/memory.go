package brain

import "ludo/internal/app"

// GameMemory stores what a bot has observed about the other players.
type GameMemory struct {
	// Opponents tracks behavioural profiles by player name.
	Opponents map[string]*OpponentProfile
	Self      string
}

// NewMemory initializes a fresh memory state for the named player.
func NewMemory(self string) *GameMemory {
	return &GameMemory{
		Self:      self,
		Opponents: make(map[string]*OpponentProfile),
	}
}

// Reset clears the memory for a new game.
func (m *GameMemory) Reset() {
	m.Opponents = make(map[string]*OpponentProfile)
}

// Profile returns the profile for name, creating it on first sight.
func (m *GameMemory) Profile(name string) *OpponentProfile {
	p, ok := m.Opponents[name]
	if !ok {
		p = NewOpponentProfile(name)
		m.Opponents[name] = p
	}
	return p
}

// Aggression returns the smoothed capture rate of name. Unknown players get
// the prior value.
func (m *GameMemory) Aggression(name string) float64 {
	if p, ok := m.Opponents[name]; ok {
		return p.Aggression()
	}
	return NewOpponentProfile(name).Aggression()
}

// Finished returns how many tokens name has brought home so far.
func (m *GameMemory) Finished(name string) int {
	if p, ok := m.Opponents[name]; ok {
		return p.Finished
	}
	return 0
}

// Observe folds one engine event into memory. Unknown events are ignored.
func (m *GameMemory) Observe(event app.Event) {
	switch payload := event.Payload.(type) {
	case app.GameStartedPayload:
		m.Reset()
		for _, name := range payload.Players {
			if name != m.Self {
				m.Profile(name)
			}
		}
	case app.TokenMovedPayload:
		if payload.Player != m.Self {
			m.Profile(payload.Player).RecordMove()
		}
	case app.TokenCapturedPayload:
		if payload.Player != m.Self {
			m.Profile(payload.Player).RecordCapture()
		}
	case app.TokenFinishedPayload:
		if payload.Player != m.Self {
			m.Profile(payload.Player).Finished = payload.Finished
		}
	}
}
