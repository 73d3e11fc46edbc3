package player

import (
	"strings"
	"testing"

	"gamesim/game"

	"github.com/stretchr/testify/require"
)

func TestInteractiveGetAction(t *testing.T) {
	t.Run("returns a valid line", func(t *testing.T) {
		var out strings.Builder
		p := NewInteractive(strings.NewReader("1\n"), &out)
		list := game.NewActionList("0", "1")

		act, err := p.GetAction(list)
		require.NoError(t, err)
		require.Equal(t, game.Action("1"), act)
		require.Contains(t, out.String(), "[0 1]",
			"The legal actions should be displayed")
		require.Contains(t, out.String(), "select an action:",
			"The prompt should be written before reading")
	})

	t.Run("reprompts until the line is valid", func(t *testing.T) {
		var out strings.Builder
		p := NewInteractive(strings.NewReader("attack\n2\n0\n"), &out)
		list := game.NewActionList("0", "1")

		act, err := p.GetAction(list)
		require.NoError(t, err)
		require.Equal(t, game.Action("0"), act)
		require.Contains(t, out.String(), `not a valid action: "attack"`)
		require.Contains(t, out.String(), `not a valid action: "2"`)
		require.Equal(t, 3, strings.Count(out.String(), "select an action:"),
			"Each attempt should be prompted")
	})

	t.Run("input is case sensitive", func(t *testing.T) {
		var out strings.Builder
		p := NewInteractive(strings.NewReader("GO\ngo\n"), &out)
		list := game.NewActionList("go")

		act, err := p.GetAction(list)
		require.NoError(t, err)
		require.Equal(t, game.Action("go"), act)
	})

	t.Run("exhausted input fails", func(t *testing.T) {
		var out strings.Builder
		p := NewInteractive(strings.NewReader("nope\n"), &out)
		list := game.NewActionList("0", "1")

		_, err := p.GetAction(list)
		require.Error(t, err,
			"An input source that ends without a valid action is unrecoverable")
	})

	t.Run("consecutive turns share the reader", func(t *testing.T) {
		var out strings.Builder
		p := NewInteractive(strings.NewReader("0\n1\n"), &out)
		list := game.NewActionList("0", "1")

		act, err := p.GetAction(list)
		require.NoError(t, err)
		require.Equal(t, game.Action("0"), act)

		act, err = p.GetAction(list)
		require.NoError(t, err)
		require.Equal(t, game.Action("1"), act)
	})
}
