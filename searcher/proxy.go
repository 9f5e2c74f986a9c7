package searcher

import (
	"github.com/samber/lo"

	"logicgames/game"
)

// Proxy pairs a state with the evaluator value attached to it. Turns generated through a proxy
// advance both together, so the searches can read a score without knowing the game.
type Proxy[S game.MultiPlayer] struct {
	game.Anchor
	state     S
	evaluator game.IncrementalEvaluator[S]
}

func NewProxy[S game.MultiPlayer](state S, evaluator game.IncrementalEvaluator[S]) *Proxy[S] {
	return &Proxy[S]{
		Anchor:    game.NewAnchor(),
		state:     state,
		evaluator: evaluator,
	}
}

func (p *Proxy[S]) State() S {
	return p.state
}

func (p *Proxy[S]) Evaluator() game.IncrementalEvaluator[S] {
	return p.evaluator
}

func (p *Proxy[S]) Evaluate() int {
	return p.evaluator.Evaluate()
}

func (p *Proxy[S]) IsOver() bool {
	return p.state.IsOver()
}

func (p *Proxy[S]) PlayersCount() int {
	return p.state.PlayersCount()
}

func (p *Proxy[S]) CurrPlayer() int {
	return p.state.CurrPlayer()
}

func (p *Proxy[S]) Winner() int {
	return p.state.Winner()
}

type delegatingTurn[S game.MultiPlayer] struct {
	turn game.Turn[S]
	from *Proxy[S]
}

// Origin is the proxy's own, as long as the wrapped turn belongs to the wrapped state
func (t delegatingTurn[S]) Origin() *game.Origin {
	if t.turn.Origin() != t.from.state.Origin() {
		return nil
	}
	return t.from.Origin()
}

func (t delegatingTurn[S]) Move() *Proxy[S] {
	next := t.turn.Move()
	return NewProxy(next, t.from.evaluator.Increment(next))
}

func (p *Proxy[S]) Wrap(turn game.Turn[S]) game.Turn[*Proxy[S]] {
	return delegatingTurn[S]{turn: turn, from: p}
}

func proxyGenerator[S game.MultiPlayer](generate game.Generator[S]) game.Generator[*Proxy[S]] {
	return func(p *Proxy[S]) []game.Turn[*Proxy[S]] {
		return lo.Map(generate(p.state), func(turn game.Turn[S], _ int) game.Turn[*Proxy[S]] {
			return p.Wrap(turn)
		})
	}
}

// unwrap maps a turn found over proxies back to the caller's game
func unwrap[S game.MultiPlayer](turn game.Turn[*Proxy[S]]) game.Turn[S] {
	if turn == nil {
		return nil
	}
	return turn.(delegatingTurn[S]).turn
}
