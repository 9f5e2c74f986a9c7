package engine

import (
	"errors"

	"logicgames/experiments/metrics"
	"logicgames/game"
	"logicgames/meta"
)

var (
	ErrNoPlayers = errors.New("no player to take the turn")
	ErrMaxTurns  = errors.New("game did not finish within the maximum number of turns")
)

// Reporter is implemented by players that can tell how their last turn was searched
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

type Option func(*settings)

type settings struct {
	maxTurns int
}

// WithMaxTurns bounds the number of turns played before a game is abandoned
func WithMaxTurns(maxTurns int) Option {
	return func(s *settings) {
		if maxTurns > 0 {
			s.maxTurns = maxTurns
		}
	}
}

func collect(options []Option) settings {
	s := settings{maxTurns: meta.MAX_TURNS}
	for _, option := range options {
		option(&s)
	}
	return s
}

// Engine drives a multi-player game, asking the player whose index is the current player for
// every turn.
type Engine[S game.MultiPlayer] struct {
	players  []game.Player[S]
	maxTurns int
}

func New[S game.MultiPlayer](players []game.Player[S], options ...Option) (*Engine[S], error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	s := collect(options)
	return &Engine[S]{
		players:  players,
		maxTurns: s.maxTurns,
	}, nil
}
