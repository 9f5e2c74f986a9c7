package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"logicgames/engine"
	"logicgames/experiments/metrics"
	"logicgames/game"
)

// Matchup plays Games independent games between the same kind of players. Players is called once
// per game so that no player is shared between games running at the same time.
type Matchup[S game.MultiPlayer] struct {
	Name    string
	Start   func() S
	Players func(i int) []game.Player[S]
	Games   int
}

type Result struct {
	Matchup   string
	Game      int
	Winner    int  // game.NoWinner on a draw or an abandoned game
	Abandoned bool // the game hit the turn limit
	Metric    metrics.GameMetric
}

// Run plays all games of all matchups on at most workers goroutines. Results come back in matchup
// order, then game order. A game exceeding the turn limit is recorded as abandoned; any other error
// stops the experiment.
func Run[S game.MultiPlayer](ctx context.Context, matchups []Matchup[S], workers int, options ...engine.Option) ([]Result, error) {
	offsets := make([]int, len(matchups))
	total := 0
	for i, m := range matchups {
		offsets[i] = total
		total += m.Games
	}
	results := make([]Result, total)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	log.Info().Int("matchups", len(matchups)).Int("games", total).Int("workers", workers).Msg("experiment-start")
	start := time.Now()
	for mi, m := range matchups {
		mi, m := mi, m
		for i := 0; i < m.Games; i++ {
			i := i
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := playGame(m, i, options)
				if err != nil {
					return fmt.Errorf("matchup %s game %d: %w", m.Name, i+1, err)
				}
				results[offsets[mi]+i] = result
				log.Debug().Str("matchup", m.Name).Int("game", i+1).Int("winner", result.Winner).Msg("game-recorded")
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info().Int("games", total).Dur("duration", time.Since(start)).Msg("experiment-complete")
	return results, nil
}

func playGame[S game.MultiPlayer](m Matchup[S], i int, options []engine.Option) (Result, error) {
	e, err := engine.New(m.Players(i), options...)
	if err != nil {
		return Result{}, err
	}

	_, metric, err := e.Run(m.Start())
	abandoned := errors.Is(err, engine.ErrMaxTurns)
	if err != nil && !abandoned {
		return Result{}, err
	}
	return Result{
		Matchup:   m.Name,
		Game:      i + 1,
		Winner:    metric.Winner,
		Abandoned: abandoned,
		Metric:    metric,
	}, nil
}

type Summary struct {
	Matchup   string
	Games     int
	Wins      map[int]int // by player index
	Draws     int
	Abandoned int
	Moves     int
	Duration  time.Duration
}

// Summarize tallies the results per matchup, in the order the matchups first appear
func Summarize(results []Result) []Summary {
	groups := lo.GroupBy(results, func(r Result) string { return r.Matchup })
	names := lo.Uniq(lo.Map(results, func(r Result, _ int) string { return r.Matchup }))

	return lo.Map(names, func(name string, _ int) Summary {
		group := groups[name]
		decided := lo.Filter(group, func(r Result, _ int) bool { return r.Winner != game.NoWinner })
		return Summary{
			Matchup: name,
			Games:   len(group),
			Wins:    lo.CountValuesBy(decided, func(r Result) int { return r.Winner }),
			Draws: lo.CountBy(group, func(r Result) bool {
				return r.Winner == game.NoWinner && !r.Abandoned
			}),
			Abandoned: lo.CountBy(group, func(r Result) bool { return r.Abandoned }),
			Moves:     lo.SumBy(group, func(r Result) int { return r.Metric.TotalMoves }),
			Duration:  lo.SumBy(group, func(r Result) time.Duration { return r.Metric.Duration }),
		}
	})
}

// Records numbers the games of an experiment for the metrics writer
func Records(results []Result) ([]metrics.GameRecord, []metrics.MoveRecord) {
	var games []metrics.GameRecord
	var moves []metrics.MoveRecord
	for i, r := range results {
		games = append(games, metrics.GameRecord{
			ID:         i + 1,
			Matchup:    r.Matchup,
			Abandoned:  r.Abandoned,
			GameMetric: r.Metric,
		})
		for _, m := range r.Metric.Moves {
			moves = append(moves, metrics.MoveRecord{Game: i + 1, MoveMetric: m})
		}
	}
	return games, moves
}
