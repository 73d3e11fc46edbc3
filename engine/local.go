package engine

import (
	"fmt"

	"gamesim/experiments/metrics"
	"gamesim/game"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
)

// Local drives a single game in the calling goroutine: the external driver
// loop of the Game contract. Each Run iteration completes exactly one turn
// before the next begins.
type Local struct {
	game     game.Game
	clock    quartz.Clock
	maxTurns int
}

type Option func(*Local)

// WithClock injects the clock used to time the run. Tests pass a mock.
func WithClock(clock quartz.Clock) Option {
	return func(e *Local) {
		e.clock = clock
	}
}

// WithMaxTurns overrides the runaway-game cutoff.
func WithMaxTurns(n int) Option {
	return func(e *Local) {
		e.maxTurns = n
	}
}

// NewLocal creates a driver for g with a real clock and the default turn
// cap.
func NewLocal(g game.Game, opts ...Option) *Local {
	e := &Local{
		game:     g,
		clock:    quartz.NewReal(),
		maxTurns: MaxTurns,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run steps the game until it is over or the turn cap is reached, then
// collects the per-player rewards into the returned metric. A step error
// aborts the run.
func (e *Local) Run() (metrics.GameMetric, error) {
	start := e.clock.Now()
	turns := 0
	for !e.game.Over() && turns < e.maxTurns {
		if err := e.game.Step(); err != nil {
			return metrics.GameMetric{}, fmt.Errorf("turn %d: %w", turns+1, err)
		}
		turns++
	}
	end := e.clock.Now()

	if !e.game.Over() {
		log.Warn().Int("turns", turns).Msg("game cut off at turn cap")
	} else {
		log.Debug().Int("turns", turns).Msg("game over")
	}

	rewards := make([]float64, e.game.NumPlayers())
	for id := range rewards {
		reward, err := e.game.PlayerReward(id)
		if err != nil {
			return metrics.GameMetric{}, fmt.Errorf("reward for player %d: %w", id, err)
		}
		rewards[id] = reward
	}

	return metrics.GameMetric{
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Turns:     turns,
		Completed: e.game.Over(),
		Rewards:   rewards,
	}, nil
}
