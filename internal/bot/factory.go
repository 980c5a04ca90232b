package bot

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// BotLevel selects a move policy.
type BotLevel int

const (
	BotLevelFirst BotLevel = iota
	BotLevelRandom
	BotLevelGreedy
	BotLevelSmart
)

var levelNames = map[BotLevel]string{
	BotLevelFirst:  "first",
	BotLevelRandom: "random",
	BotLevelGreedy: "greedy",
	BotLevelSmart:  "smart",
}

func (l BotLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("BotLevel(%d)", int(l))
}

// ParseLevel maps a policy name to a level. Matching ignores case.
func ParseLevel(name string) (BotLevel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown bot level %q", name)
}

// NewBrain creates a new brain based on the difficulty level.
// rng drives the random policy; nil seeds one from the clock.
func NewBrain(level BotLevel, self string, rng *rand.Rand) Brain {
	switch level {
	case BotLevelRandom:
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return &RandomBot{rng: rng}
	case BotLevelGreedy:
		return &GoodBot{}
	case BotLevelSmart:
		return NewSmartBot(self)
	default:
		return &StandardBot{}
	}
}
