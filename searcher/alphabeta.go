package searcher

import (
	"cmp"
	"container/list"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"logicgames/game"
)

// AlphaBetaSearch is a best-first alpha-beta search. Nodes are expanded from a frontier used as a
// stack; siblings are pushed most promising first by their static rating, so good turns tend to
// be settled early and cut their weaker siblings.
//
// Pruning compares a node only with the running value of its parent instead of threading an
// alpha-beta window down the tree. The value found for the root is the minimax value.
func AlphaBetaSearch[S game.MultiPlayer](state S, generate game.Generator[S], options ...Option) (game.Turn[S], error) {
	if state.IsOver() {
		return nil, ErrGameOver
	}
	c, err := newConfig(state, collect(options))
	if err != nil {
		return nil, err
	}
	root, err := alphaBeta(state, generate, c)
	if err != nil {
		return nil, err
	}
	return root.choiceTurn(), nil
}

// AlphaBetaSearchIncremental scores positions with an incremental evaluator seeded at state.
// A stateless evaluator passed with WithEvaluator is ignored.
func AlphaBetaSearchIncremental[S game.MultiPlayer](state S, generate game.Generator[S], evaluator game.IncrementalEvaluator[S], options ...Option) (game.Turn[S], error) {
	if state.IsOver() {
		return nil, ErrGameOver
	}
	c, err := proxyConfig(state, collect(options))
	if err != nil {
		return nil, err
	}
	root, err := alphaBeta(NewProxy(state, evaluator), proxyGenerator(generate), c)
	if err != nil {
		return nil, err
	}
	return unwrap(root.choiceTurn()), nil
}

// alphaBeta returns the settled root. The root has no child only when the depth limit is 0.
func alphaBeta[S game.MultiPlayer](state S, generate game.Generator[S], c *config[S]) (*node[S], error) {
	c.metrics.Start("alphabeta", c.depth)
	root := newNode(nil, nil, state, c)

	frontier := list.New()
	frontier.PushFront(root)
	for frontier.Len() > 0 && !root.isEvaluated() {
		n := frontier.Remove(frontier.Front()).(*node[S])
		if n.isEvaluated() {
			continue
		}

		children, err := expand(n, generate, c)
		if err != nil {
			c.metrics.Complete()
			return nil, err
		}
		for i := len(children) - 1; i >= 0; i-- {
			frontier.PushFront(children[i])
		}
	}
	metric := c.metrics.Complete()

	log.Debug().
		Int("value", root.evaluation).
		Bool("settled", root.isEvaluated()).
		Int("expansions", metric.Expansions).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("alphabeta-search-complete")
	return root, nil
}

// expand creates the children of n and returns the ones still to be expanded, most promising for
// n first. Generation stops as soon as a child settles n.
func expand[S game.MultiPlayer](n *node[S], generate game.Generator[S], c *config[S]) ([]*node[S], error) {
	turns := generate(n.state)
	c.metrics.AddExpansion()
	if len(turns) == 0 {
		return nil, fmt.Errorf("%w: player %d to move", ErrNoTurns, n.state.CurrPlayer())
	}
	n.childCount = len(turns)

	var pending []*node[S]
	for _, turn := range turns {
		if n.isEvaluated() {
			break
		}
		next, err := game.Apply(n.state, turn)
		if err != nil {
			return nil, err
		}
		c.metrics.AddNode()

		child := newNode(n, turn, next, c)
		if n.first == nil {
			n.first = child
		}
		if !child.isEvaluated() {
			pending = append(pending, child)
		}
	}

	slices.SortStableFunc(pending, func(a, b *node[S]) int {
		if n.isAnd {
			return cmp.Compare(a.rating, b.rating)
		}
		return cmp.Compare(b.rating, a.rating)
	})
	return pending, nil
}
