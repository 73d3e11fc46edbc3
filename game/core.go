package game

import "fmt"

// Core holds the bookkeeping every turn-based game shares: the seated
// players, their cumulative scores, the current seat, and the terminal
// flag. Concrete games embed Core and layer their own state on top; the
// default accessors below satisfy the Game contract for everything except
// Reset and Step.
type Core struct {
	players []Player
	scores  []float64
	current int
	over    bool
}

// Seat seats the given players with zeroed scores and marks the game not
// over. Called from a game's Reset.
func (c *Core) Seat(players ...Player) {
	c.players = players
	c.scores = make([]float64, len(players))
	c.current = 0
	c.over = false
}

func (c *Core) Over() bool {
	return c.over
}

// End marks the game over. The flag is monotonic: it only clears through
// Seat or Restore.
func (c *Core) End() {
	c.over = true
}

func (c *Core) NumPlayers() int {
	return len(c.players)
}

// CurrentPlayer returns the seat index whose turn it is.
func (c *Core) CurrentPlayer() int {
	return c.current
}

// Advance moves the turn to the next seat, wrapping around.
func (c *Core) Advance() {
	c.current = (c.current + 1) % len(c.players)
}

// AddScore adds delta to a player's cumulative score.
func (c *Core) AddScore(playerID int, delta float64) error {
	if err := c.checkPlayer(playerID); err != nil {
		return err
	}
	c.scores[playerID] += delta
	return nil
}

// FullState fails by default. Concrete games override it when they have a
// text representation of their complete state.
func (c *Core) FullState() (string, error) {
	return "", fmt.Errorf("full state text: %w", ErrNotImplemented)
}

// PlayerState returns the view visible to one player: only their own score
// in the base implementation.
func (c *Core) PlayerState(playerID int) (PlayerView, error) {
	if err := c.checkPlayer(playerID); err != nil {
		return PlayerView{}, err
	}
	return PlayerView{PlayerID: playerID, Score: c.scores[playerID]}, nil
}

// PlayerReward returns the stored cumulative score exactly as accumulated,
// never recomputed or decayed.
func (c *Core) PlayerReward(playerID int) (float64, error) {
	if err := c.checkPlayer(playerID); err != nil {
		return 0, err
	}
	return c.scores[playerID], nil
}

// Restore overwrites the core bookkeeping wholesale from a snapshot. A nil
// Scores slice keeps the freshly seated zero scores.
func (c *Core) Restore(snap Snapshot) error {
	if snap.Scores != nil && len(snap.Scores) != len(c.players) {
		return fmt.Errorf("snapshot has %d scores for %d players", len(snap.Scores), len(c.players))
	}
	if snap.CurrentPlayer < 0 || snap.CurrentPlayer >= len(c.players) {
		return fmt.Errorf("snapshot current player %d: %w", snap.CurrentPlayer, ErrPlayerOutOfRange)
	}
	if snap.Scores != nil {
		c.scores = make([]float64, len(snap.Scores))
		copy(c.scores, snap.Scores)
	}
	c.current = snap.CurrentPlayer
	c.over = snap.GameOver
	return nil
}

// Snapshot captures the core bookkeeping for later restore.
func (c *Core) Snapshot() Snapshot {
	scores := make([]float64, len(c.scores))
	copy(scores, c.scores)
	return Snapshot{
		Scores:        scores,
		CurrentPlayer: c.current,
		GameOver:      c.over,
	}
}

func (c *Core) checkPlayer(playerID int) error {
	if playerID < 0 || playerID >= len(c.players) {
		return fmt.Errorf("player %d of %d: %w", playerID, len(c.players), ErrPlayerOutOfRange)
	}
	return nil
}

// Snapshot is the restorable core state of a game. It replaces ad-hoc
// attribute maps with named, validated fields; concrete games extend it
// with their own state alongside.
type Snapshot struct {
	Scores        []float64
	CurrentPlayer int
	GameOver      bool
}
