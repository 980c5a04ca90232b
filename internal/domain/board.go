package domain

// AbsolutePosition maps a token to its square on the shared track.
// The second return value is false for tokens in the yard or home column.
func AbsolutePosition(tok Token, pl *Player) (int, bool) {
	if !tok.OnTrack() {
		return NoPosition, false
	}
	return (pl.StartIndex + tok.Step) % TrackLength, true
}

// Occupants groups every on-track token by absolute square.
// Buckets are filled in player order, then token order.
func Occupants(players []*Player) map[int][]TokenRef {
	occupants := make(map[int][]TokenRef)
	for p, pl := range players {
		for t, tok := range pl.Tokens {
			pos, ok := AbsolutePosition(tok, pl)
			if !ok {
				continue
			}
			occupants[pos] = append(occupants[pos], TokenRef{Player: p, Token: t})
		}
	}
	return occupants
}

// TokenState classifies a token for display.
type TokenState string

const (
	TokenYard     TokenState = "yard"
	TokenTrack    TokenState = "track"
	TokenHome     TokenState = "home"
	TokenFinished TokenState = "finished"
)

// TokenView is a read-only description of one token.
type TokenView struct {
	State    TokenState
	Step     int
	Position int // absolute square when on track, NoPosition otherwise
	HomeSlot int // 0..5 inside the home column, -1 otherwise
}

// PlayerView is a read-only description of one seat.
type PlayerView struct {
	Name       string
	Colour     Colour
	StartIndex int
	HomeEntry  int // last shared square before the home column
	Tokens     [TokensPerPlayer]TokenView
	Finished   int
}

// Snapshot is a copy of the board handed to renderers and choosers.
type Snapshot struct {
	Players   []PlayerView
	Occupants map[int][]TokenRef
	Safe      []int
	Current   int
	Winner    int
	Turn      int
}

// Snapshot copies the current state. Mutating the result does not affect the game.
func (g *Game) Snapshot() Snapshot {
	views := make([]PlayerView, len(g.Players))
	for p, pl := range g.Players {
		view := PlayerView{
			Name:       pl.Name,
			Colour:     pl.Colour,
			StartIndex: pl.StartIndex,
			HomeEntry:  pl.HomeEntry(),
			Finished:   CountFinished(pl),
		}
		for t, tok := range pl.Tokens {
			view.Tokens[t] = describeToken(tok, pl)
		}
		views[p] = view
	}
	return Snapshot{
		Players:   views,
		Occupants: Occupants(g.Players),
		Safe:      g.SafeList(),
		Current:   g.Current,
		Winner:    g.Winner,
		Turn:      g.Turn,
	}
}

func describeToken(tok Token, pl *Player) TokenView {
	view := TokenView{Step: tok.Step, Position: NoPosition, HomeSlot: -1}
	switch {
	case tok.InYard():
		view.State = TokenYard
	case tok.Finished():
		view.State = TokenFinished
		view.HomeSlot = tok.Step - StepHomeEntry
	case tok.InHome():
		view.State = TokenHome
		view.HomeSlot = tok.Step - StepHomeEntry
	default:
		view.State = TokenTrack
		view.Position, _ = AbsolutePosition(tok, pl)
	}
	return view
}
