package game

import "errors"

// Action is an atomic choice a player may make on their turn. The base
// representation is a string; games with richer moves encode them.
type Action string

// Player is an action-selection policy. Implementations decide one action
// per call from the legal set they are handed; they never mutate game state.
type Player interface {
	GetAction(possible ActionList) (Action, error)
}

// Game is the contract between a turn-based state machine and its driver.
// State is exclusively owned by the single calling goroutine.
type Game interface {
	// Reset puts the game back into its initial state and clears game over.
	Reset()
	// Step advances the game exactly one turn: build the legal action set,
	// ask the current player for a choice, apply it. A no-op once the game
	// is over.
	Step() error
	Over() bool
	NumPlayers() int
	// FullState exposes complete, possibly privileged state, e.g. for
	// spectators or logging. Games without a text form return
	// ErrNotImplemented.
	FullState() (string, error)
	// PlayerState returns the subset of state visible to one player. It
	// must never reveal hidden information not owned by that player.
	PlayerState(playerID int) (PlayerView, error)
	// PlayerReward returns the cumulative reward for a player, as used by
	// evaluation harnesses.
	PlayerReward(playerID int) (float64, error)
}

// PlayerView is the per-player visible state. The base view carries only
// the player's own score; concrete games embed or extend it.
type PlayerView struct {
	PlayerID int
	Score    float64
}

var (
	// ErrNotImplemented is returned by games that do not expose a given
	// representation of their state.
	ErrNotImplemented = errors.New("not implemented for this game")

	// ErrNoActions is returned when sampling from an empty action list. A
	// game must never present an empty list to a player.
	ErrNoActions = errors.New("no actions to sample from")

	// ErrPlayerOutOfRange is returned for player IDs outside the seat range.
	ErrPlayerOutOfRange = errors.New("player id out of range")
)
