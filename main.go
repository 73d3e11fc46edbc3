package main

import (
	"fmt"
	"os"

	"gamesim/config"
	"gamesim/engine"
	"gamesim/experiments"
	"gamesim/game"
	"gamesim/player"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

type CLI struct {
	Debug    bool        `help:"Enable debug logging"`
	Play     PlayCmd     `cmd:"" help:"Play the sentinel game on the terminal"`
	Simulate SimulateCmd `cmd:"" help:"Run a batch of self-play games and store metrics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gamesim"),
		kong.Description("Turn-based game simulation framework"),
		kong.UsageOnError(),
	)

	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	setupLogger(level)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// PlayCmd runs one sentinel game with a human at the terminal choosing
// every action.
type PlayCmd struct{}

func (c *PlayCmd) Run() error {
	human := player.NewInteractive(os.Stdin, os.Stdout)
	g, err := game.NewSentinelGame(game.SentinelConfig{
		Players: []game.Player{human},
	})
	if err != nil {
		return err
	}

	metric, err := engine.NewLocal(g).Run()
	if err != nil {
		return err
	}

	state, err := g.FullState()
	if err != nil {
		return err
	}
	fmt.Println(state)
	fmt.Printf("finished in %d turns, rewards %v\n", metric.Turns, metric.Rewards)
	return nil
}

// SimulateCmd runs the self-play evaluation harness from a config file.
type SimulateCmd struct {
	Config string `help:"Path to a YAML config file; environment only when empty"`
}

func (c *SimulateCmd) Run() error {
	cfg := config.MustLoad(c.Config)
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		setupLogger(level)
	}
	return experiments.RunSelfPlay(cfg.Experiment)
}
