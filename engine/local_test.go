package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gamesim/game"
	"gamesim/player"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

// always answers every turn with the same action.
type always struct {
	action game.Action
}

func (p always) GetAction(game.ActionList) (game.Action, error) {
	return p.action, nil
}

// failing errors on the first consulted turn.
type failing struct{}

func (failing) GetAction(game.ActionList) (game.Action, error) {
	return "", errors.New("policy failure")
}

// ticking answers with a fixed action and moves a mock clock forward one
// interval per turn.
type ticking struct {
	action game.Action
	clock  *quartz.Mock
	step   time.Duration
}

func (p ticking) GetAction(game.ActionList) (game.Action, error) {
	p.clock.Advance(p.step)
	return p.action, nil
}

func TestLocalRun(t *testing.T) {
	t.Run("runs until game over and collects rewards", func(t *testing.T) {
		g, err := game.NewSentinelGame(game.SentinelConfig{
			Players: []game.Player{always{action: "1"}},
		})
		require.NoError(t, err)
		require.NoError(t, g.AddScore(0, 2))

		metric, err := NewLocal(g).Run()
		require.NoError(t, err)

		require.True(t, metric.Completed, "The game should reach game over")
		require.Equal(t, 1, metric.Turns)
		require.Equal(t, []float64{2}, metric.Rewards,
			"Final rewards should land in the metric")
	})

	t.Run("turn cap stops a never-ending game", func(t *testing.T) {
		g, err := game.NewSentinelGame(game.SentinelConfig{
			Players: []game.Player{always{action: "0"}},
		})
		require.NoError(t, err)

		metric, err := NewLocal(g, WithMaxTurns(5)).Run()
		require.NoError(t, err)

		require.False(t, metric.Completed, "A cut-off game is not completed")
		require.Equal(t, 5, metric.Turns)
		require.False(t, g.Over())
	})

	t.Run("mock clock drives the reported duration", func(t *testing.T) {
		clock := quartz.NewMock(t)
		g, err := game.NewSentinelGame(game.SentinelConfig{
			Players: []game.Player{ticking{action: "0", clock: clock, step: time.Second}},
		})
		require.NoError(t, err)

		metric, err := NewLocal(g, WithClock(clock), WithMaxTurns(3)).Run()
		require.NoError(t, err)

		require.Equal(t, 3*time.Second, metric.Duration,
			"One second should elapse per turn")
		require.Equal(t, metric.Duration, metric.EndTime.Sub(metric.StartTime))
	})

	t.Run("a finished game runs zero turns", func(t *testing.T) {
		g, err := game.RestoreSentinelGame(game.SentinelConfig{
			Players: []game.Player{failing{}},
		}, game.Snapshot{GameOver: true})
		require.NoError(t, err)

		metric, err := NewLocal(g).Run()
		require.NoError(t, err)

		require.True(t, metric.Completed)
		require.Equal(t, 0, metric.Turns,
			"The driver should never step a finished game")
	})

	t.Run("human entering the stop action finishes the game", func(t *testing.T) {
		var out strings.Builder
		human := player.NewInteractive(strings.NewReader("1\n"), &out)
		g, err := game.NewSentinelGame(game.SentinelConfig{
			Players: []game.Player{human},
		})
		require.NoError(t, err)

		metric, err := NewLocal(g).Run()
		require.NoError(t, err)

		require.True(t, metric.Completed)
		require.Equal(t, 1, metric.Turns)
		require.Equal(t, []float64{0}, metric.Rewards)
		require.NoError(t, g.Step(), "A further step should change nothing")
		require.True(t, g.Over())
	})

	t.Run("step errors abort the run", func(t *testing.T) {
		g, err := game.NewSentinelGame(game.SentinelConfig{
			Players: []game.Player{failing{}},
		})
		require.NoError(t, err)

		_, err = NewLocal(g).Run()
		require.Error(t, err)
	})
}
