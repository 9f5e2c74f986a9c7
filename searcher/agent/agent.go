package agent

import (
	"slices"

	"logicgames/experiments/metrics"
	"logicgames/game"
	"logicgames/searcher"
)

type search[S game.MultiPlayer] func(state S, options ...searcher.Option) (game.Turn[S], error)

// Searcher is a player that picks its turns with one of the searches. It remembers how its last
// turn was found, which the engine records per move. A Searcher plays one game at a time.
type Searcher[S game.MultiPlayer] struct {
	search    search[S]
	options   []searcher.Option
	collector metrics.Collector
	last      metrics.SearchMetric
}

func newSearcher[S game.MultiPlayer](search search[S], options []searcher.Option) *Searcher[S] {
	collector := metrics.NewCollector()
	return &Searcher[S]{
		search:    search,
		options:   append(slices.Clip(options), searcher.WithMetrics(collector)),
		collector: collector,
	}
}

// NewMinimax plays the minimax choice
func NewMinimax[S game.MultiPlayer](generate game.Generator[S], options ...searcher.Option) *Searcher[S] {
	return newSearcher(func(state S, opts ...searcher.Option) (game.Turn[S], error) {
		return searcher.MinimaxSearch(state, generate, opts...)
	}, options)
}

// NewAlphaBeta plays the best-first alpha-beta choice
func NewAlphaBeta[S game.MultiPlayer](generate game.Generator[S], options ...searcher.Option) *Searcher[S] {
	return newSearcher(func(state S, opts ...searcher.Option) (game.Turn[S], error) {
		return searcher.AlphaBetaSearch(state, generate, opts...)
	}, options)
}

// NewIncrementalAlphaBeta seeds a fresh evaluator at every state it is asked to play from.
// Any evaluator passed with searcher.WithEvaluator is ignored.
func NewIncrementalAlphaBeta[S game.MultiPlayer](generate game.Generator[S], evaluator func(state S) game.IncrementalEvaluator[S], options ...searcher.Option) *Searcher[S] {
	return newSearcher(func(state S, opts ...searcher.Option) (game.Turn[S], error) {
		return searcher.AlphaBetaSearchIncremental(state, generate, evaluator(state), opts...)
	}, options)
}

func (a *Searcher[S]) Turn(state S) (game.Turn[S], error) {
	turn, err := a.search(state, a.options...)
	a.last = a.collector.Complete()
	return turn, err
}

func (a *Searcher[S]) LastSearch() metrics.SearchMetric {
	return a.last
}
