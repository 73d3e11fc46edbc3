package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the simulate command needs.
type Config struct {
	LogLevel   string     `yaml:"log-level" env:"GAMESIM_LOG_LEVEL" env-default:"info"`
	Experiment Experiment `yaml:"experiment"`
}

// Experiment configures one self-play run.
type Experiment struct {
	Name     string `yaml:"name" env:"GAMESIM_EXPERIMENT_NAME" env-default:"selfplay"`
	Games    int    `yaml:"games" env:"GAMESIM_GAMES" env-default:"100"`
	Players  int    `yaml:"players" env:"GAMESIM_PLAYERS" env-default:"1"`
	Seed     uint64 `yaml:"seed" env:"GAMESIM_SEED" env-default:"1"`
	MaxTurns int    `yaml:"max-turns" env:"GAMESIM_MAX_TURNS" env-default:"10000"`
	OutDir   string `yaml:"out-dir" env:"GAMESIM_OUT_DIR" env-default:"experiments"`
}

// MustLoad loads the configuration from a YAML file plus environment
// overrides, or from the environment alone when path is empty.
func MustLoad(path string) *Config {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}
