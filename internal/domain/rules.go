package domain

import (
	"fmt"
	"slices"
)

// MoveResult describes what a roll did to the board.
type MoveResult struct {
	Player    int
	Token     int // -1 when nothing moved
	Roll      int
	Moved     bool
	From      int       // 0 when nothing moved
	To        int       // 0 when nothing moved
	Position  int       // absolute destination square, NoPosition off the shared track
	Captured  *TokenRef // opponent token sent back to the yard, if any
	Finished  bool      // the moved token reached the last home square
	ExtraTurn bool
}

// TurnStatus is the outcome of closing a roll.
type TurnStatus struct {
	Next   int // index of the player who rolls next
	Winner int
	Over   bool
}

// ValidRoll reports whether a die value is in range.
func ValidRoll(roll int) bool {
	return roll >= 1 && roll <= DieFaces
}

// LegalTokens returns the ascending indices of the tokens the player may move
// with the given roll. An empty result means the roll cannot be used. Only
// the current player may be asked.
func (g *Game) LegalTokens(playerIdx, roll int) ([]int, error) {
	if err := g.checkCall(playerIdx, roll); err != nil {
		return nil, err
	}
	return g.legalTokens(playerIdx, roll), nil
}

func (g *Game) legalTokens(playerIdx, roll int) []int {
	pl := g.Players[playerIdx]
	occupants := Occupants(g.Players)
	legal := make([]int, 0, TokensPerPlayer)

	for _, idx := range pl.ActiveTokens() {
		tok := pl.Tokens[idx]
		if tok.InYard() {
			if roll != DieFaces {
				continue
			}
			if ownTokenAt(pl, idx, pl.StartIndex) {
				continue
			}
			legal = append(legal, idx)
			continue
		}

		dest := tok.Step + roll
		if dest > StepFinished {
			continue
		}
		if dest >= StepHomeEntry {
			legal = append(legal, idx)
			continue
		}

		pos := (pl.StartIndex + dest) % TrackLength
		if g.IsSafe(pos) {
			legal = append(legal, idx)
			continue
		}
		occ := occupants[pos]
		if slices.ContainsFunc(occ, func(ref TokenRef) bool { return ref.Player == playerIdx }) {
			continue
		}
		if len(occ) > 1 {
			continue
		}
		legal = append(legal, idx)
	}
	return legal
}

// ownTokenAt reports whether another token of pl sits on the absolute square pos.
func ownTokenAt(pl *Player, skip, pos int) bool {
	for i, other := range pl.Tokens {
		if i == skip {
			continue
		}
		if at, ok := AbsolutePosition(other, pl); ok && at == pos {
			return true
		}
	}
	return false
}

// ApplyMove moves one token by roll. The token must be in the legal set for
// that roll; anything else is rejected with ErrIllegalMove and the board is
// left untouched.
func (g *Game) ApplyMove(playerIdx, tokenIdx, roll int) (MoveResult, error) {
	if err := g.checkCall(playerIdx, roll); err != nil {
		return MoveResult{}, err
	}
	if !slices.Contains(g.legalTokens(playerIdx, roll), tokenIdx) {
		return MoveResult{}, fmt.Errorf("player %d token %d roll %d: %w", playerIdx, tokenIdx, roll, ErrIllegalMove)
	}

	pl := g.Players[playerIdx]
	tok := &pl.Tokens[tokenIdx]
	res := MoveResult{
		Player:   playerIdx,
		Token:    tokenIdx,
		Roll:     roll,
		Moved:    true,
		From:     tok.Step,
		Position: NoPosition,
	}

	switch {
	case tok.InYard():
		tok.Step = 0
		res.Position = pl.StartIndex
		res.ExtraTurn = true

	case tok.Step+roll < StepHomeEntry:
		dest := tok.Step + roll
		pos := (pl.StartIndex + dest) % TrackLength
		if !g.IsSafe(pos) {
			occ := Occupants(g.Players)[pos]
			if len(occ) == 1 && occ[0].Player != playerIdx {
				victim := occ[0]
				g.Players[victim.Player].Tokens[victim.Token].Step = StepYard
				res.Captured = &victim
			}
		}
		tok.Step = dest
		res.Position = pos

	default:
		tok.Step += roll
		res.Finished = tok.Finished()
	}

	res.To = tok.Step
	if roll == DieFaces || res.Captured != nil {
		res.ExtraTurn = true
	}
	return res, nil
}

// Pass records a roll that cannot be used. It is only allowed when the legal
// set is empty; a six still earns another roll.
func (g *Game) Pass(playerIdx, roll int) (MoveResult, error) {
	if err := g.checkCall(playerIdx, roll); err != nil {
		return MoveResult{}, err
	}
	if legal := g.legalTokens(playerIdx, roll); len(legal) > 0 {
		return MoveResult{}, fmt.Errorf("player %d roll %d has %d legal tokens: %w", playerIdx, roll, len(legal), ErrIllegalMove)
	}
	return MoveResult{
		Player:    playerIdx,
		Token:     -1,
		Roll:      roll,
		Position:  NoPosition,
		ExtraTurn: roll == DieFaces,
	}, nil
}

// Advance closes the current player's roll. If that player has every token
// home the game ends with them as winner. Otherwise the same player keeps
// the turn on an extra turn and the next seat rolls otherwise.
func (g *Game) Advance(extraTurn bool) TurnStatus {
	if g.Over() {
		return TurnStatus{Next: g.Current, Winner: g.Winner, Over: true}
	}
	g.Turn++
	if g.Players[g.Current].AllFinished() {
		g.Winner = g.Current
		return TurnStatus{Next: g.Current, Winner: g.Winner, Over: true}
	}
	if !extraTurn {
		g.Current = (g.Current + 1) % len(g.Players)
	}
	return TurnStatus{Next: g.Current, Winner: NoWinner}
}

func (g *Game) checkCall(playerIdx, roll int) error {
	if g.Over() {
		return ErrGameOver
	}
	if playerIdx < 0 || playerIdx >= len(g.Players) {
		return fmt.Errorf("player %d: %w", playerIdx, ErrUnknownPlayer)
	}
	if playerIdx != g.Current {
		return fmt.Errorf("player %d acting on player %d's turn: %w", playerIdx, g.Current, ErrNotYourTurn)
	}
	if !ValidRoll(roll) {
		return fmt.Errorf("roll %d: %w", roll, ErrRollOutOfRange)
	}
	return nil
}
