// Package experiments runs batches of games and stores their outcomes for
// offline evaluation.
package experiments

import (
	"fmt"

	"gamesim/config"
	"gamesim/engine"
	"gamesim/experiments/metrics"
	"gamesim/game"
	"gamesim/player"

	"github.com/rs/zerolog/log"
)

// RunSelfPlay plays cfg.Games sentinel games with uniform-random players
// and writes one record per game to games.csv. Game i seeds its players
// with cfg.Seed+i, so a run is reproducible from its config alone.
func RunSelfPlay(cfg config.Experiment) error {
	if cfg.Games <= 0 {
		return fmt.Errorf("experiment needs at least one game, got %d", cfg.Games)
	}
	if cfg.Players <= 0 {
		return fmt.Errorf("experiment needs at least one player, got %d", cfg.Players)
	}

	log.Info().
		Str("name", cfg.Name).
		Int("games", cfg.Games).
		Int("players", cfg.Players).
		Uint64("seed", cfg.Seed).
		Msg("starting self-play experiment")

	records := make([]metrics.GameRecord, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		metric, err := runGame(cfg, seed)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		records = append(records, metrics.GameRecord{
			ID:         i + 1,
			Seed:       seed,
			GameMetric: metric,
		})
		log.Debug().Int("game", i+1).Int("turns", metric.Turns).Msg("completed game")
	}

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}

	log.Info().Str("dir", writer.BaseDir()).Msg("completed self-play experiment")
	return nil
}

// runGame plays a single game with freshly seeded random players.
func runGame(cfg config.Experiment, seed uint64) (metrics.GameMetric, error) {
	players := make([]game.Player, cfg.Players)
	for p := range players {
		// Offset per seat so seats do not mirror each other's choices.
		players[p] = player.NewRandom(seed + uint64(p)<<32)
	}
	g, err := game.NewSentinelGame(game.SentinelConfig{Players: players})
	if err != nil {
		return metrics.GameMetric{}, err
	}
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = engine.MaxTurns
	}
	return engine.NewLocal(g, engine.WithMaxTurns(maxTurns)).Run()
}
