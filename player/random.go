// Package player provides the built-in action-selection policies: a
// uniform-random player for simulations and a command-line player for a
// human at a terminal.
package player

import (
	"gamesim/game"

	"golang.org/x/exp/rand"
)

// Random chooses uniformly at random among the legal actions. It keeps no
// state beyond its random source, so a fixed seed replays the same choices.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random player with its own source seeded by seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomFromSource creates a random player drawing from rng. The source
// is borrowed, not owned; sharing one source across players is fine in the
// single-threaded driver loop.
func NewRandomFromSource(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (p *Random) GetAction(possible game.ActionList) (game.Action, error) {
	return possible.SampleRandom(p.rng)
}
