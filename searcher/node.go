package searcher

import (
	"logicgames/experiments/metrics"
	"logicgames/game"
)

// node of the best-first alpha-beta tree. A parent owns its discovered children, children only
// point back at it.
type node[S game.MultiPlayer] struct {
	state  S
	turn   game.Turn[S] // nil at the root
	parent *node[S]
	depth  int
	isAnd  bool
	rating int // static evaluation, used to order siblings and at the depth limit

	evaluation     int // best value known so far, from the node's own side
	best           *node[S]
	first          *node[S]
	childCount     int
	evaluatedCount int
	evaluated      bool
}

func newNode[S game.MultiPlayer](parent *node[S], turn game.Turn[S], state S, c *config[S]) *node[S] {
	n := &node[S]{
		state:  state,
		turn:   turn,
		parent: parent,
		isAnd:  !c.isOr(state),
		rating: c.evaluate(state),
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	n.evaluation = worst(!n.isAnd)

	if state.IsOver() || n.depth == c.depth {
		n.evaluation = n.rating
		n.settle(c.metrics)
	}
	return n
}

// isEvaluated also holds once any ancestor is evaluated: nothing below a settled node can change
// the result any more.
func (n *node[S]) isEvaluated() bool {
	if !n.evaluated && n.parent != nil && n.parent.isEvaluated() {
		n.evaluated = true
	}
	return n.evaluated
}

func (n *node[S]) settle(m metrics.Collector) {
	n.evaluated = true
	if n.parent != nil {
		n.parent.childEvaluated(n, m)
	}
}

func (n *node[S]) childEvaluated(child *node[S], m metrics.Collector) {
	n.evaluatedCount++
	if improves(!n.isAnd, child.evaluation, n.evaluation) {
		n.evaluation = child.evaluation
		n.best = child
	}
	if n.isEvaluated() {
		return
	}

	complete := n.evaluatedCount == n.childCount
	if complete || n.evaluation == ideal(!n.isAnd) || n.cannotChangeParent() {
		if !complete {
			m.AddCutoff()
		}
		n.settle(m)
	}
}

// cannotChangeParent applies a single bound, the running value of the parent. It only holds for
// a parent on the other side: an AND node whose value already fell to what its OR parent has
// secured will only fall further, and vice versa.
// Unlike the plain rule, a parent on the same side never cuts, since there the running value
// bounds the wrong direction and cutting would report a wrong value.
func (n *node[S]) cannotChangeParent() bool {
	p := n.parent
	if p == nil || p.isAnd == n.isAnd {
		return false
	}
	if n.isAnd {
		return n.evaluation <= p.evaluation
	}
	return n.evaluation >= p.evaluation
}

// choice is the child to play: the best one, or the first one if none beat the worst bound
func (n *node[S]) choice() *node[S] {
	if n.best != nil {
		return n.best
	}
	return n.first
}

// choiceTurn is nil for a root settled without children
func (n *node[S]) choiceTurn() game.Turn[S] {
	if c := n.choice(); c != nil {
		return c.turn
	}
	return nil
}
