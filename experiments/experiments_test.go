package experiments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"logicgames/engine"
	"logicgames/experiments/metrics"
	"logicgames/game"
	"logicgames/game/counting"
	"logicgames/game/tictactoe"
	"logicgames/searcher/agent"
)

func countingMatchup(name string, players, games int) Matchup[*counting.Game] {
	return Matchup[*counting.Game]{
		Name:  name,
		Start: func() *counting.Game { return counting.New(players) },
		Players: func(int) []game.Player[*counting.Game] {
			all := make([]game.Player[*counting.Game], players)
			for i := range all {
				all[i] = agent.NewAlphaBeta(counting.Generate)
			}
			return all
		},
		Games: games,
	}
}

type failing struct{}

func (failing) Turn(*counting.Game) (game.Turn[*counting.Game], error) {
	return nil, errors.New("resigned")
}

func TestRun(t *testing.T) {
	t.Run("returning results in matchup and game order", func(t *testing.T) {
		matchups := []Matchup[*counting.Game]{
			countingMatchup("two", 2, 5),
			countingMatchup("three", 3, 4),
		}

		results, err := Run(context.Background(), matchups, 3)

		require.NoError(t, err)
		require.Len(t, results, 9)
		for i, r := range results[:5] {
			require.Equal(t, "two", r.Matchup)
			require.Equal(t, i+1, r.Game)
			require.Equal(t, 1, r.Winner)
		}
		for i, r := range results[5:] {
			require.Equal(t, "three", r.Matchup)
			require.Equal(t, i+1, r.Game)
			require.Equal(t, 0, r.Winner)
		}
	})

	t.Run("recording abandoned games", func(t *testing.T) {
		results, err := Run(context.Background(), []Matchup[*counting.Game]{countingMatchup("short", 2, 2)}, 2, engine.WithMaxTurns(4))

		require.NoError(t, err)
		for _, r := range results {
			require.True(t, r.Abandoned)
			require.Equal(t, game.NoWinner, r.Winner)
		}
	})

	t.Run("stopping on a failing player", func(t *testing.T) {
		m := countingMatchup("resigning", 2, 3)
		m.Players = func(int) []game.Player[*counting.Game] {
			return []game.Player[*counting.Game]{failing{}, failing{}}
		}

		_, err := Run(context.Background(), []Matchup[*counting.Game]{m}, 1)

		require.ErrorContains(t, err, "resigned")
	})

	t.Run("not starting games after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, []Matchup[*counting.Game]{countingMatchup("cancelled", 2, 3)}, 1)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("playing tictactoe matchups", func(t *testing.T) {
		results, err := Run(context.Background(), TicTacToeMatchups(2, 2, 1), 4)
		require.NoError(t, err)

		for _, s := range Summarize(results) {
			switch s.Matchup {
			case "alphabeta-vs-minimax":
				require.Equal(t, 2, s.Draws, "Perfect players should draw")
			case "alphabeta-vs-random":
				require.Zero(t, s.Wins[1], "Random should never beat alpha-beta")
			case "random-vs-alphabeta":
				require.Zero(t, s.Wins[0], "Random should never beat alpha-beta")
			case "lines2-vs-alphabeta":
				require.Zero(t, s.Wins[0], "A shallow search should never beat alpha-beta")
			}
		}
	})

	t.Run("playing grundy matchups", func(t *testing.T) {
		results, err := Run(context.Background(), GrundyMatchups(7, 3, 1), 2)
		require.NoError(t, err)

		summaries := Summarize(results)
		require.Len(t, summaries, 2)
		require.Equal(t, map[int]int{1: 3}, summaries[0].Wins, "The second player wins a heap of 7")
		require.Equal(t, map[int]int{1: 3}, summaries[1].Wins)
	})
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Matchup: "b", Winner: 0, Metric: metrics.GameMetric{TotalMoves: 3, Duration: time.Second}},
		{Matchup: "a", Winner: game.NoWinner, Metric: metrics.GameMetric{TotalMoves: 9}},
		{Matchup: "b", Winner: 1, Metric: metrics.GameMetric{TotalMoves: 4, Duration: time.Second}},
		{Matchup: "b", Winner: game.NoWinner, Abandoned: true},
		{Matchup: "b", Winner: 0},
	}

	summaries := Summarize(results)

	require.Equal(t, []Summary{
		{Matchup: "b", Games: 4, Wins: map[int]int{0: 2, 1: 1}, Abandoned: 1, Moves: 7, Duration: 2 * time.Second},
		{Matchup: "a", Games: 1, Wins: map[int]int{}, Draws: 1, Moves: 9},
	}, summaries)
}

func TestMeasureThroughput(t *testing.T) {
	results := []Result{
		{Metric: metrics.GameMetric{Moves: []metrics.MoveMetric{
			{SearchMetric: metrics.SearchMetric{Algorithm: "minimax", Nodes: 100, Duration: time.Second}},
			{SearchMetric: metrics.SearchMetric{Algorithm: "alphabeta", Nodes: 10, Cutoffs: 2, Duration: time.Second}},
		}}},
		{Metric: metrics.GameMetric{Moves: []metrics.MoveMetric{
			{SearchMetric: metrics.SearchMetric{Algorithm: "alphabeta", Nodes: 30, Cutoffs: 1, Duration: time.Second}},
		}}},
	}

	throughputs := MeasureThroughput(results)

	require.Len(t, throughputs, 2)
	require.Equal(t, "alphabeta", throughputs[0].Algorithm)
	require.Equal(t, 2, throughputs[0].Searches)
	require.Equal(t, 40, throughputs[0].Nodes)
	require.Equal(t, 3, throughputs[0].Cutoffs)
	require.InDelta(t, 20.0, throughputs[0].NodesPerSecond, 1e-9)
	require.Equal(t, "minimax", throughputs[1].Algorithm)
	require.InDelta(t, 100.0, throughputs[1].NodesPerSecond, 1e-9)
}

func TestRecords(t *testing.T) {
	results := []Result{
		{Matchup: "m", Metric: metrics.GameMetric{Moves: []metrics.MoveMetric{{Step: 1}, {Step: 2}}}},
		{Matchup: "m", Abandoned: true},
		{Matchup: "m", Metric: metrics.GameMetric{Moves: []metrics.MoveMetric{{Step: 1}}}},
	}

	games, moves := Records(results)

	require.Len(t, games, 3)
	require.True(t, games[1].Abandoned)
	require.Len(t, moves, 3)
	require.Equal(t, []int{1, 1, 3}, []int{moves[0].Game, moves[1].Game, moves[2].Game})
}

var _ game.Player[*tictactoe.Board] = (*agent.Searcher[*tictactoe.Board])(nil)
