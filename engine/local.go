package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"logicgames/experiments/metrics"
	"logicgames/game"
)

// Run plays start until the game is over and returns the final state. Any illegal turn ends the
// run with an error.
func (e *Engine[S]) Run(start S) (S, metrics.GameMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: start.CurrPlayer(),
		Winner:         game.NoWinner,
		StartTime:      time.Now(),
	}
	log.Info().Int("players", start.PlayersCount()).Int("starting-player", start.CurrPlayer()).Msg("game-start")

	state := start
	for step := 1; !state.IsOver(); step++ {
		if step > e.maxTurns {
			return state, e.complete(gameMetric, state), fmt.Errorf("%w: stopped after %d turns", ErrMaxTurns, e.maxTurns)
		}

		current := state.CurrPlayer()
		if current < 0 || current >= len(e.players) {
			return state, e.complete(gameMetric, state), fmt.Errorf("%w: player %d of %d", ErrNoPlayers, current, len(e.players))
		}
		player := e.players[current]

		turn, err := player.Turn(state)
		if err != nil {
			return state, e.complete(gameMetric, state), fmt.Errorf("player %d at turn %d: %w", current, step, err)
		}
		next, err := game.Apply(state, turn)
		if err != nil {
			return state, e.complete(gameMetric, state), fmt.Errorf("player %d at turn %d: %w", current, step, err)
		}

		if reporter, ok := player.(Reporter); ok {
			gameMetric.Moves = append(gameMetric.Moves, metrics.MoveMetric{
				Step:         step,
				Player:       current,
				SearchMetric: reporter.LastSearch(),
			})
		}
		log.Debug().Int("step", step).Int("player", current).Msg("turn-played")

		state = next
		gameMetric.TotalMoves = step
	}

	gameMetric = e.complete(gameMetric, state)
	log.Info().
		Int("winner", gameMetric.Winner).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("game-complete")
	return state, gameMetric, nil
}

func (e *Engine[S]) complete(gameMetric metrics.GameMetric, state S) metrics.GameMetric {
	gameMetric.Winner = state.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	return gameMetric
}

// Solve lets a single player work on a puzzle until it is over. Whether the final state is
// completed is for the caller to check.
func Solve[S game.Puzzle](start S, solver game.Player[S], options ...Option) (S, error) {
	s := collect(options)

	state := start
	for step := 1; !state.IsOver(); step++ {
		if step > s.maxTurns {
			return state, fmt.Errorf("%w: stopped after %d turns", ErrMaxTurns, s.maxTurns)
		}
		turn, err := solver.Turn(state)
		if err != nil {
			return state, fmt.Errorf("turn %d: %w", step, err)
		}
		next, err := game.Apply(state, turn)
		if err != nil {
			return state, fmt.Errorf("turn %d: %w", step, err)
		}
		state = next
	}

	log.Info().Bool("completed", state.IsCompleted()).Msg("puzzle-over")
	return state, nil
}
