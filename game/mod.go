package game

import "errors"

// NoWinner is reported by MultiPlayer.Winner while the game has no winner (still running or drawn).
const NoWinner = -1

var ErrIllegalTurn = errors.New("illegal turn")

// Origin is the identity of one game state. Turns remember the Origin of the state they were
// generated from, and are only accepted by that exact state.
type Origin struct {
	_ byte // non-zero size so that every allocation has a distinct address
}

// Anchor gives a state its identity. Embed the value returned by NewAnchor in every new state.
type Anchor struct {
	origin *Origin
}

func NewAnchor() Anchor {
	return Anchor{origin: &Origin{}}
}

func (a Anchor) Origin() *Origin {
	return a.origin
}

// Game should be immutable - turns always produce a new state
type Game interface {
	IsOver() bool
	Origin() *Origin
}

// Puzzle is a single-player game
type Puzzle interface {
	Game
	IsCompleted() bool
}

type MultiPlayer interface {
	Game
	PlayersCount() int
	CurrPlayer() int
	Winner() int
}

func PrevPlayer(g MultiPlayer) int {
	return (g.PlayersCount() + g.CurrPlayer() - 1) % g.PlayersCount()
}

func NextPlayer(g MultiPlayer) int {
	return (g.CurrPlayer() + 1) % g.PlayersCount()
}

type Turn[S Game] interface {
	Origin() *Origin
	Move() S
}

// Bound records the state a turn was generated from. Embed it in concrete turn types.
type Bound struct {
	origin *Origin
}

func Bind(g Game) Bound {
	return Bound{origin: g.Origin()}
}

func (b Bound) Origin() *Origin {
	return b.origin
}

type Player[S Game] interface {
	Turn(state S) (Turn[S], error)
}

// Apply plays turn on state. Only the origin binding is checked: a turn that was generated from
// this very state is accepted even if the generator produced a wrong successor.
func Apply[S Game](state S, turn Turn[S]) (S, error) {
	var none S
	if turn == nil {
		return none, ErrIllegalTurn
	}
	origin := turn.Origin()
	if origin == nil || origin != state.Origin() {
		return none, ErrIllegalTurn
	}
	return turn.Move(), nil
}
