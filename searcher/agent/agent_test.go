package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"logicgames/game"
	"logicgames/game/counting"
	"logicgames/game/tictactoe"
	"logicgames/searcher"
)

func TestSearcher(t *testing.T) {
	t.Run("recording the last search", func(t *testing.T) {
		b, err := tictactoe.Parse("X__ _0_ ___")
		require.NoError(t, err)
		a := NewAlphaBeta(tictactoe.Generate, searcher.WithDepth(2))

		turn, err := a.Turn(b)
		require.NoError(t, err)
		_, err = game.Apply(b, turn)
		require.NoError(t, err)

		metric := a.LastSearch()
		require.Equal(t, "alphabeta", metric.Algorithm)
		require.Equal(t, 2, metric.Depth)
		require.Positive(t, metric.Expansions)
	})

	t.Run("resetting the metric between turns", func(t *testing.T) {
		a := NewMinimax(tictactoe.Generate, searcher.WithDepth(3))
		b, err := tictactoe.Parse("XX_ 00_ ___")
		require.NoError(t, err)

		_, err = a.Turn(tictactoe.New())
		require.NoError(t, err)
		opening := a.LastSearch()
		_, err = a.Turn(b)
		require.NoError(t, err)

		require.Less(t, a.LastSearch().Nodes, opening.Nodes)
	})

	t.Run("seeding the incremental evaluator from the current state", func(t *testing.T) {
		b, err := tictactoe.Parse("XX_ 00_ ___")
		require.NoError(t, err)
		lines := func(b *tictactoe.Board) game.IncrementalEvaluator[*tictactoe.Board] {
			return tictactoe.NewLineEvaluator(b, b.CurrPlayer())
		}
		a := NewIncrementalAlphaBeta(tictactoe.Generate, lines, searcher.WithDepth(1))

		turn, err := a.Turn(b)

		require.NoError(t, err)
		require.Equal(t, 2, turn.(tictactoe.Mark).Cell)
	})

	t.Run("passing search errors on", func(t *testing.T) {
		finished, err := tictactoe.Parse("XXX 00_ ___")
		require.NoError(t, err)

		_, err = NewAlphaBeta(tictactoe.Generate).Turn(finished)

		require.ErrorIs(t, err, searcher.ErrGameOver)
	})
}

func TestRandom(t *testing.T) {
	t.Run("repeating the same turns for the same seed", func(t *testing.T) {
		a := NewRandom(tictactoe.Generate, 9)
		b := NewRandom(tictactoe.Generate, 9)

		state := tictactoe.New()
		for !state.IsOver() {
			first, err := a.Turn(state)
			require.NoError(t, err)
			second, err := b.Turn(state)
			require.NoError(t, err)
			require.Equal(t, first.(tictactoe.Mark).Cell, second.(tictactoe.Mark).Cell)

			state, err = game.Apply(state, first)
			require.NoError(t, err)
		}
	})

	t.Run("failing without turns", func(t *testing.T) {
		none := func(*counting.Game) []game.Turn[*counting.Game] { return nil }

		_, err := NewRandom(none, 1).Turn(counting.New(2))

		require.ErrorIs(t, err, searcher.ErrNoTurns)
	})
}

func TestFirst(t *testing.T) {
	b := tictactoe.New()

	turn, err := NewFirst(tictactoe.Generate).Turn(b)

	require.NoError(t, err)
	require.Equal(t, 0, turn.(tictactoe.Mark).Cell)
}
