package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"logicgames/game"
)

// MinimaxSearch looks ahead exhaustively (up to the depth option) and returns the best turn for
// the player to move. Among equally good turns the first generated one wins.
func MinimaxSearch[S game.MultiPlayer](state S, generate game.Generator[S], options ...Option) (game.Turn[S], error) {
	if state.IsOver() {
		return nil, ErrGameOver
	}
	c, err := newConfig(state, collect(options))
	if err != nil {
		return nil, err
	}
	return runMinimax(state, generate, c)
}

// MinimaxSearchIncremental scores positions with an incremental evaluator seeded at state.
// A stateless evaluator passed with WithEvaluator is ignored.
func MinimaxSearchIncremental[S game.MultiPlayer](state S, generate game.Generator[S], evaluator game.IncrementalEvaluator[S], options ...Option) (game.Turn[S], error) {
	if state.IsOver() {
		return nil, ErrGameOver
	}
	c, err := proxyConfig(state, collect(options))
	if err != nil {
		return nil, err
	}
	turn, err := runMinimax(NewProxy(state, evaluator), proxyGenerator(generate), c)
	if err != nil {
		return nil, err
	}
	return unwrap(turn), nil
}

func runMinimax[S game.MultiPlayer](state S, generate game.Generator[S], c *config[S]) (game.Turn[S], error) {
	c.metrics.Start("minimax", c.depth)
	value, turn, err := minimax(state, generate, c, c.depth)
	metric := c.metrics.Complete()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("value", value).
		Int("expansions", metric.Expansions).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("minimax-search-complete")
	return turn, nil
}

func minimax[S game.MultiPlayer](state S, generate game.Generator[S], c *config[S], depth int) (int, game.Turn[S], error) {
	if depth == 0 || state.IsOver() {
		return c.evaluate(state), nil, nil
	}

	isOr := c.isOr(state)
	turns := generate(state)
	c.metrics.AddExpansion()
	if len(turns) == 0 {
		return 0, nil, fmt.Errorf("%w: player %d to move", ErrNoTurns, state.CurrPlayer())
	}

	best := worst(isOr)
	var bestTurn game.Turn[S]
	for i, turn := range turns {
		next, err := game.Apply(state, turn)
		if err != nil {
			return 0, nil, err
		}
		c.metrics.AddNode()

		value, _, err := minimax(next, generate, c, depth-1)
		if err != nil {
			return 0, nil, err
		}
		if improves(isOr, value, best) {
			best = value
			bestTurn = turn
		}
		if best == ideal(isOr) {
			if i < len(turns)-1 {
				c.metrics.AddCutoff()
			}
			break
		}
	}

	// Every turn is as bad as it gets, any of them will do
	if bestTurn == nil {
		bestTurn = turns[0]
	}
	return best, bestTurn, nil
}
