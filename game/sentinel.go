package game

import "fmt"

// Default actions for the sentinel template.
const (
	ContinueAction Action = "0"
	StopAction     Action = "1"
)

// SentinelConfig configures a SentinelGame. The zero value is usable: one
// uniform-random seat choosing between "0" and "1".
type SentinelConfig struct {
	// Players are the seated policies in turn order. Empty seats one
	// uniform-random player.
	Players []Player
	// Continue and Stop are the two legal actions each turn. Zero values
	// default to ContinueAction and StopAction.
	Continue Action
	Stop     Action
}

func (cfg SentinelConfig) withDefaults() (SentinelConfig, error) {
	if len(cfg.Players) == 0 {
		cfg.Players = []Player{randomFallback{}}
	}
	if cfg.Continue == "" {
		cfg.Continue = ContinueAction
	}
	if cfg.Stop == "" {
		cfg.Stop = StopAction
	}
	if cfg.Continue == cfg.Stop {
		return cfg, fmt.Errorf("continue and stop actions are both %q", cfg.Stop)
	}
	return cfg, nil
}

// SentinelGame is the template game: each turn the current player picks
// between two actions, and the stop action ends the game. It carries no
// rules of its own; it exists to exercise the Game/Player protocol and to
// show concrete games what to implement.
type SentinelGame struct {
	Core
	cfg SentinelConfig
}

// NewSentinelGame validates the config, seats the players and resets the
// game to its initial state.
func NewSentinelGame(cfg SentinelConfig) (*SentinelGame, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	g := &SentinelGame{cfg: cfg}
	g.Reset()
	return g, nil
}

// RestoreSentinelGame builds a game from a snapshot, bypassing Reset. The
// snapshot is applied wholesale: game over, seat and scores all come from
// it.
func RestoreSentinelGame(cfg SentinelConfig, snap Snapshot) (*SentinelGame, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	g := &SentinelGame{cfg: cfg}
	g.Seat(cfg.Players...)
	if err := g.Restore(snap); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *SentinelGame) Reset() {
	g.Seat(g.cfg.Players...)
}

// Step advances the game one turn. A no-op once the game is over.
func (g *SentinelGame) Step() error {
	if g.Over() {
		return nil
	}
	possible := NewActionList(g.cfg.Continue, g.cfg.Stop)
	act, err := g.players[g.current].GetAction(possible)
	if err != nil {
		return fmt.Errorf("player %d action: %w", g.current, err)
	}
	if !possible.IsValid(act) {
		return fmt.Errorf("player %d returned action %q outside %v", g.current, act, possible)
	}
	if act == g.cfg.Stop {
		g.End()
		return nil
	}
	g.Advance()
	return nil
}

// FullState overrides the Core default with a one-line summary; the
// sentinel game has no hidden state.
func (g *SentinelGame) FullState() (string, error) {
	return fmt.Sprintf("sentinel game: %d players, scores %v, current %d, over %t",
		g.NumPlayers(), g.scores, g.current, g.over), nil
}

// randomFallback is the default policy for unconfigured seats: a uniform
// draw from the legal set, with no state and no side effects.
type randomFallback struct{}

func (randomFallback) GetAction(possible ActionList) (Action, error) {
	return possible.SampleRandom(nil)
}
