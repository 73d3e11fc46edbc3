package metrics

import "time"

// GameMetric summarizes one completed (or cut off) game.
type GameMetric struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
	// Completed is true when the game reached game over, false when the
	// driver stopped it at the turn cap.
	Completed bool
	// Rewards holds the final cumulative reward per seat.
	Rewards []float64
}

// GameRecord is one row of an experiment's games file.
type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}
