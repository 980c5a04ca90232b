package domain

import (
	"fmt"
	"sort"
)

// Seat describes one entry of a validated roster.
type Seat struct {
	Name   string
	Colour Colour
}

// NewGame seats the given roster in order. Seat i starts at square i*13 and
// gets the i-th colour unless one is supplied. The roster is assumed to be
// validated already.
func NewGame(seats []Seat) *Game {
	players := make([]*Player, 0, len(seats))
	for i, seat := range seats {
		colour := seat.Colour
		if colour == "" {
			colour = SeatColours[i%MaxPlayers]
		}
		pl := &Player{
			Name:       seat.Name,
			Colour:     colour,
			StartIndex: (i * SeatSpacing) % TrackLength,
		}
		for t := range pl.Tokens {
			pl.Tokens[t].Step = StepYard
		}
		players = append(players, pl)
	}

	return &Game{
		Players:     players,
		TrackLength: TrackLength,
		HomeLength:  HomeLength,
		Current:     0,
		Safe:        SafeSquares(players),
		Winner:      NoWinner,
	}
}

// SafeSquares returns each seated player's start square and the square 8 ahead of it.
func SafeSquares(players []*Player) map[int]bool {
	safe := make(map[int]bool, len(players)*2)
	for _, pl := range players {
		safe[pl.StartIndex] = true
		safe[(pl.StartIndex+SafeOffset)%TrackLength] = true
	}
	return safe
}

// SafeList returns the safe squares in ascending order.
func (g *Game) SafeList() []int {
	out := make([]int, 0, len(g.Safe))
	for pos := range g.Safe {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// IsSafe reports whether captures are disabled on the given absolute square.
func (g *Game) IsSafe(pos int) bool {
	return g.Safe[pos]
}

// CountFinished returns how many tokens of a player reached home.
func CountFinished(p *Player) int {
	n := 0
	for _, tok := range p.Tokens {
		if tok.Finished() {
			n++
		}
	}
	return n
}

// CheckInvariants returns an error describing the first corrupt piece of state.
// A state built only through the engine never fails it.
func (g *Game) CheckInvariants() error {
	if len(g.Players) == 0 {
		return fmt.Errorf("game has no players")
	}
	if g.Current < 0 || g.Current >= len(g.Players) {
		return fmt.Errorf("current player %d out of range [0,%d)", g.Current, len(g.Players))
	}
	for p, pl := range g.Players {
		for t, tok := range pl.Tokens {
			if tok.Step < StepYard || tok.Step > StepFinished {
				return fmt.Errorf("player %d token %d: step %d out of range", p, t, tok.Step)
			}
		}
	}
	for pos, refs := range Occupants(g.Players) {
		if len(refs) > 1 && !g.IsSafe(pos) {
			return fmt.Errorf("square %d is not safe but holds %d tokens", pos, len(refs))
		}
	}
	return nil
}
