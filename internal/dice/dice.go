// Package dice provides the die sources used to drive a game.
//
// A Die is injected into the turn service so that games can be replayed
// deterministically: Seeded reproduces the same rolls for the same seed and
// Sequence plays back a fixed list.
package dice

import (
	"errors"
	"math/rand"
)

// Faces is the number of sides on a Ludo die.
const Faces = 6

// ErrSequenceExhausted indicates a Sequence ran out of values.
var ErrSequenceExhausted = errors.New("dice sequence exhausted")

// ErrInvalidFace indicates a scripted value outside 1..6.
var ErrInvalidFace = errors.New("die face must be between 1 and 6")

// Die produces one roll per call.
type Die interface {
	Roll() (int, error)
}

// Seeded rolls a fair six-sided die from a seeded generator.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a die whose rolls are fully determined by seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the die was created with.
func (d *Seeded) Seed() int64 { return d.seed }

// Roll returns a value in 1..6.
func (d *Seeded) Roll() (int, error) {
	return d.rng.Intn(Faces) + 1, nil
}

// Sequence plays back fixed rolls in order.
type Sequence struct {
	values []int
	next   int
}

// NewSequence validates the scripted values up front.
func NewSequence(values ...int) (*Sequence, error) {
	for _, v := range values {
		if v < 1 || v > Faces {
			return nil, ErrInvalidFace
		}
	}
	return &Sequence{values: append([]int(nil), values...)}, nil
}

// Roll returns the next scripted value.
func (s *Sequence) Roll() (int, error) {
	if s.next >= len(s.values) {
		return 0, ErrSequenceExhausted
	}
	v := s.values[s.next]
	s.next++
	return v, nil
}
