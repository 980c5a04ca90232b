package dice

import (
	"errors"
	"testing"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	for i := 0; i < 200; i++ {
		ra, _ := a.Roll()
		rb, _ := b.Roll()
		if ra != rb {
			t.Fatalf("roll %d differs: %d vs %d", i, ra, rb)
		}
	}
	if a.Seed() != 7 {
		t.Fatalf("seed = %d, want 7", a.Seed())
	}
}

func TestSeededRange(t *testing.T) {
	d := NewSeeded(42)
	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		v, err := d.Roll()
		if err != nil {
			t.Fatalf("roll: %v", err)
		}
		if v < 1 || v > Faces {
			t.Fatalf("roll out of range: %d", v)
		}
		seen[v]++
	}
	for face := 1; face <= Faces; face++ {
		if seen[face] == 0 {
			t.Fatalf("face %d never rolled", face)
		}
	}
}

func TestSequence(t *testing.T) {
	s, err := NewSequence(6, 1, 3)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	for _, want := range []int{6, 1, 3} {
		got, err := s.Roll()
		if err != nil || got != want {
			t.Fatalf("Roll() = (%d, %v), want %d", got, err, want)
		}
	}
	if _, err := s.Roll(); !errors.Is(err, ErrSequenceExhausted) {
		t.Fatalf("err = %v, want ErrSequenceExhausted", err)
	}
}

func TestSequenceRejectsBadFaces(t *testing.T) {
	if _, err := NewSequence(1, 7); !errors.Is(err, ErrInvalidFace) {
		t.Fatalf("err = %v, want ErrInvalidFace", err)
	}
	if _, err := NewSequence(0); !errors.Is(err, ErrInvalidFace) {
		t.Fatalf("err = %v, want ErrInvalidFace", err)
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == b {
		t.Fatalf("two seeds collided: %d", a)
	}
}
