package brain

// OpponentProfile tracks the behavioural history of one player.
type OpponentProfile struct {
	Name     string
	Moves    int
	Captures int
	Finished int // tokens brought home
}

// NewOpponentProfile initializes a profile for a player name.
func NewOpponentProfile(name string) *OpponentProfile {
	return &OpponentProfile{Name: name}
}

// RecordMove logs a token move by this player.
func (p *OpponentProfile) RecordMove() {
	p.Moves++
}

// RecordCapture notes that this player hit someone.
func (p *OpponentProfile) RecordCapture() {
	p.Captures++
}

// Aggression is the share of moves that ended in a capture, smoothed so an
// unknown player starts at a small non-zero value.
func (p *OpponentProfile) Aggression() float64 {
	return float64(p.Captures+1) / float64(p.Moves+4)
}
