package searcher

import (
	"errors"
	"fmt"
	"math"

	"logicgames/experiments/metrics"
	"logicgames/game"
)

// Unbounded search depth, limited in practice by the game reaching a terminal state
const MaxDepth = math.MaxInt

var (
	ErrGameOver = errors.New("search on a finished game")
	// ErrNoTurns reports a generator that produced no turns for a state that is not over
	ErrNoTurns = errors.New("no turns generated for an unfinished game")
	// ErrOptionType reports an evaluator or OR-node predicate written for another state type
	ErrOptionType = errors.New("option does not match the state type")
)

type Option func(s *settings)

type settings struct {
	evaluate any
	isOr     any
	depth    int
	metrics  metrics.Collector
}

// WithEvaluator replaces the default win/loss evaluator
func WithEvaluator[S game.MultiPlayer](evaluate func(S) int) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithOrNode tells which nodes are maximizing. By default these are the nodes where the player to
// move is the player to move at the root.
func WithOrNode[S game.MultiPlayer](isOr func(S) bool) Option {
	return func(s *settings) {
		if isOr != nil {
			s.isOr = isOr
		}
	}
}

// WithDepth limits the lookahead. At depth 0 nothing is expanded and the searches return no turn;
// negative values are ignored.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type config[S game.MultiPlayer] struct {
	evaluate game.Evaluate[S]
	isOr     func(S) bool
	depth    int
	metrics  metrics.Collector
}

func collect(options []Option) settings {
	s := settings{ // Default values
		depth:   MaxDepth,
		metrics: metrics.NewCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func newConfig[S game.MultiPlayer](root S, s settings) (*config[S], error) {
	player := root.CurrPlayer()
	c := &config[S]{
		evaluate: game.EvaluateWin[S](player),
		isOr:     func(state S) bool { return state.CurrPlayer() == player },
		depth:    s.depth,
		metrics:  s.metrics,
	}

	if s.evaluate != nil {
		evaluate, ok := s.evaluate.(func(S) int)
		if !ok {
			return nil, fmt.Errorf("evaluator %T for state %T: %w", s.evaluate, root, ErrOptionType)
		}
		c.evaluate = evaluate
	}
	if s.isOr != nil {
		isOr, ok := s.isOr.(func(S) bool)
		if !ok {
			return nil, fmt.Errorf("OR-node predicate %T for state %T: %w", s.isOr, root, ErrOptionType)
		}
		c.isOr = isOr
	}
	return c, nil
}

// proxyConfig runs a search over proxies: the evaluator travels with the state, and the OR-node
// predicate still looks at the wrapped state.
func proxyConfig[S game.MultiPlayer](root S, s settings) (*config[*Proxy[S]], error) {
	inner, err := newConfig(root, settings{isOr: s.isOr, depth: s.depth, metrics: s.metrics})
	if err != nil {
		return nil, err
	}
	return &config[*Proxy[S]]{
		evaluate: (*Proxy[S]).Evaluate,
		isOr:     func(p *Proxy[S]) bool { return inner.isOr(p.State()) },
		depth:    inner.depth,
		metrics:  inner.metrics,
	}, nil
}

// ideal is the best value a node can reach, after which no sibling needs to be looked at
func ideal(isOr bool) int {
	if isOr {
		return math.MaxInt
	}
	return math.MinInt
}

func worst(isOr bool) int {
	if isOr {
		return math.MinInt
	}
	return math.MaxInt
}

func improves(isOr bool, value, best int) bool {
	if isOr {
		return value > best
	}
	return value < best
}
