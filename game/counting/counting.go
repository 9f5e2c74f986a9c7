// Package counting is the smallest sequential game there is: players take turns increasing a
// shared counter and whoever reaches the limit wins.
package counting

import "logicgames/game"

const Limit = 10

type Game struct {
	game.Anchor
	count   int
	limit   int
	players int
	curr    int
}

func New(players int) *Game {
	return NewWithLimit(Limit, players)
}

func NewWithLimit(limit int, players int) *Game {
	return &Game{
		Anchor:  game.NewAnchor(),
		limit:   limit,
		players: players,
	}
}

func (g *Game) Count() int {
	return g.count
}

func (g *Game) Limit() int {
	return g.limit
}

func (g *Game) IsOver() bool {
	return g.count >= g.limit
}

func (g *Game) PlayersCount() int {
	return g.players
}

func (g *Game) CurrPlayer() int {
	return g.curr
}

// Winner is the player who made the last increase
func (g *Game) Winner() int {
	if !g.IsOver() {
		return game.NoWinner
	}
	return game.PrevPlayer(g)
}

type increase struct {
	game.Bound
	from *Game
}

func (i increase) Move() *Game {
	return &Game{
		Anchor:  game.NewAnchor(),
		count:   i.from.count + 1,
		limit:   i.from.limit,
		players: i.from.players,
		curr:    game.NextPlayer(i.from),
	}
}

func (g *Game) Increase() game.Turn[*Game] {
	return increase{Bound: game.Bind(g), from: g}
}

func Generate(g *Game) []game.Turn[*Game] {
	if g.IsOver() {
		return nil
	}
	return []game.Turn[*Game]{g.Increase()}
}
