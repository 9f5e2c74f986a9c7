package tictactoe

import (
	"math"

	"logicgames/game"
)

// Weights of a line holding one or two marks of a single player. Lines holding marks of both
// players are dead and score nothing.
const (
	OneMark  = 1
	TwoMarks = 10
)

// LineEvaluator scores a board for one player by summing the open lines of both sides. It is
// updated incrementally: only the lines through the last marked cell are rescored.
type LineEvaluator struct {
	player int
	cells  [Size]byte
	score  int
	winner int
}

var _ game.IncrementalEvaluator[*Board] = LineEvaluator{}

func NewLineEvaluator(b *Board, player int) LineEvaluator {
	e := LineEvaluator{player: player, cells: b.cells, winner: b.Winner()}
	for l := range lines {
		e.score += e.lineScore(l, &e.cells)
	}
	return e
}

func (e LineEvaluator) lineScore(l int, cells *[Size]byte) int {
	own, other := symbol(e.player), symbol(1-e.player)
	mine, theirs := 0, 0
	for _, cell := range lines[l] {
		switch cells[cell] {
		case own:
			mine++
		case other:
			theirs++
		}
	}
	switch {
	case mine > 0 && theirs > 0:
		return 0
	case mine > 0:
		return weight(mine)
	case theirs > 0:
		return -weight(theirs)
	}
	return 0
}

func weight(marks int) int {
	if marks == 1 {
		return OneMark
	}
	return TwoMarks
}

func (e LineEvaluator) Increment(next *Board) game.IncrementalEvaluator[*Board] {
	if next.last < 0 {
		return NewLineEvaluator(next, e.player)
	}
	updated := LineEvaluator{player: e.player, cells: next.cells, score: e.score, winner: next.Winner()}
	for _, l := range linesThrough[next.last] {
		updated.score += e.lineScore(l, &next.cells) - e.lineScore(l, &e.cells)
	}
	return updated
}

func (e LineEvaluator) Evaluate() int {
	switch e.winner {
	case game.NoWinner:
		return e.score
	case e.player:
		return math.MaxInt
	default:
		return math.MinInt
	}
}
