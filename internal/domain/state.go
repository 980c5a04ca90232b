package domain

const (
	// TrackLength is the number of squares on the shared circular track.
	TrackLength = 52
	// HomeLength is the number of squares in each player's private home column.
	HomeLength = 6
	// TokensPerPlayer is the number of tokens each seat races home.
	TokensPerPlayer = 4
	// MaxPlayers is the number of seats around the board.
	MaxPlayers = 4
	// SeatSpacing is the distance between two consecutive start squares.
	SeatSpacing = TrackLength / MaxPlayers
	// SafeOffset is the distance from a start square to its second safe square.
	SafeOffset = 8

	// StepYard marks a token that has not entered the track (or was captured).
	StepYard = -1
	// StepHomeEntry is the first step inside the home column.
	StepHomeEntry = TrackLength
	// StepFinished is the last home column square.
	StepFinished = TrackLength + HomeLength - 1

	// NoPosition is returned for tokens that are not on the shared track.
	NoPosition = -1
	// NoWinner is the Winner value while the game is still running.
	NoWinner = -1

	// DieFaces is the number of faces on the die; rolling it grants an extra turn.
	DieFaces = 6
)

// Colour identifies a seat on the board.
type Colour string

const (
	ColourRed    Colour = "red"
	ColourGreen  Colour = "green"
	ColourYellow Colour = "yellow"
	ColourBlue   Colour = "blue"
)

// SeatColours lists seat colours in seating order.
var SeatColours = [MaxPlayers]Colour{ColourRed, ColourGreen, ColourYellow, ColourBlue}

// Token is a single piece. Step encodes where it is:
// -1 yard, 0..51 offset from the owner's start square, 52..57 home column.
type Token struct {
	Step int
}

// InYard reports whether the token is off the board.
func (t Token) InYard() bool { return t.Step < 0 }

// InHome reports whether the token is inside the home column (finished included).
func (t Token) InHome() bool { return t.Step >= StepHomeEntry }

// Finished reports whether the token reached the last home square.
func (t Token) Finished() bool { return t.Step == StepFinished }

// OnTrack reports whether the token is on the shared track.
func (t Token) OnTrack() bool { return t.Step >= 0 && t.Step < StepHomeEntry }

// Player holds the state for one seat.
type Player struct {
	Name       string
	Colour     Colour
	StartIndex int // absolute square where this seat enters the track
	Tokens     [TokensPerPlayer]Token
}

// AllFinished reports whether every token of the player is home.
func (p *Player) AllFinished() bool {
	for _, tok := range p.Tokens {
		if !tok.Finished() {
			return false
		}
	}
	return true
}

// ActiveTokens returns the indices of tokens that still have to move.
func (p *Player) ActiveTokens() []int {
	active := make([]int, 0, TokensPerPlayer)
	for i, tok := range p.Tokens {
		if !tok.Finished() {
			active = append(active, i)
		}
	}
	return active
}

// HomeEntry returns the last shared square a token passes before turning
// into its home column.
func (p *Player) HomeEntry() int {
	return (p.StartIndex - 1 + TrackLength) % TrackLength
}

// TokenRef addresses a single token by player and token index.
type TokenRef struct {
	Player int
	Token  int
}

// Game holds the authoritative state of one session.
type Game struct {
	Players     []*Player // turn order
	TrackLength int
	HomeLength  int

	Current int          // index of the acting player
	Safe    map[int]bool // absolute squares where captures never happen

	Winner int // index into Players, NoWinner while running
	Turn   int // resolved rolls so far
}

// Over reports whether a winner has been declared.
func (g *Game) Over() bool { return g.Winner != NoWinner }

// CurrentPlayer returns the acting player.
func (g *Game) CurrentPlayer() *Player { return g.Players[g.Current] }
