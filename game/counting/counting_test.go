package counting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"logicgames/game"
)

func TestCounting(t *testing.T) {
	t.Run("passing the turn around", func(t *testing.T) {
		g := New(3)
		var players []int
		for i := 0; i < 4; i++ {
			players = append(players, g.CurrPlayer())
			next, err := game.Apply(g, g.Increase())
			require.NoError(t, err)
			g = next
		}

		require.Equal(t, []int{0, 1, 2, 0}, players)
		require.Equal(t, 4, g.Count())
	})

	t.Run("ending at the limit", func(t *testing.T) {
		g := NewWithLimit(2, 2)
		require.Len(t, Generate(g), 1)

		for !g.IsOver() {
			next, err := game.Apply(g, Generate(g)[0])
			require.NoError(t, err)
			g = next
		}

		require.Equal(t, 2, g.Limit())
		require.Equal(t, 1, g.Winner())
		require.Empty(t, Generate(g))
	})
}
