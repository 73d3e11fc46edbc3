package engine

import "gamesim/experiments/metrics"

// MaxTurns caps runaway games: a game that has not reached game over after
// this many turns is cut off by the driver.
const MaxTurns = 10000

// Engine drives a game until it is over or a turn cap is reached.
type Engine interface {
	Run() (metrics.GameMetric, error)
}
