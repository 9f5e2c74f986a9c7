// Package grundy implements Grundy's game: a turn splits one heap into two non-empty heaps of
// different sizes, and the player who cannot move loses.
package grundy

import (
	"fmt"
	"slices"

	"logicgames/game"
)

type Game struct {
	game.Anchor
	heaps []int
	curr  int
}

func New(heaps ...int) *Game {
	return &Game{Anchor: game.NewAnchor(), heaps: slices.Clone(heaps)}
}

func (g *Game) Heaps() []int {
	return slices.Clone(g.heaps)
}

// IsOver once every heap has at most two tokens, since those cannot be split unequally
func (g *Game) IsOver() bool {
	for _, h := range g.heaps {
		if h > 2 {
			return false
		}
	}
	return true
}

func (g *Game) PlayersCount() int {
	return 2
}

func (g *Game) CurrPlayer() int {
	return g.curr
}

// Winner is the player who made the last split
func (g *Game) Winner() int {
	if !g.IsOver() {
		return game.NoWinner
	}
	return game.PrevPlayer(g)
}

type Split struct {
	game.Bound
	Heap  int
	Count int
	from  *Game
}

func (s Split) Move() *Game {
	heaps := make([]int, 0, len(s.from.heaps)+1)
	heaps = append(heaps, s.from.heaps[:s.Heap]...)
	heaps = append(heaps, s.from.heaps[s.Heap+1:]...)
	heaps = append(heaps, s.Count, s.from.heaps[s.Heap]-s.Count)
	return &Game{
		Anchor: game.NewAnchor(),
		heaps:  heaps,
		curr:   game.NextPlayer(s.from),
	}
}

// Split takes count tokens off heap into a heap of their own
func (g *Game) Split(heap, count int) (Split, error) {
	if heap < 0 || heap >= len(g.heaps) {
		return Split{}, fmt.Errorf("heap %d out of range: %w", heap, game.ErrIllegalTurn)
	}
	n := g.heaps[heap]
	if count < 1 || count >= n || 2*count == n {
		return Split{}, fmt.Errorf("cannot split %d off heap of %d: %w", count, n, game.ErrIllegalTurn)
	}
	return Split{Bound: game.Bind(g), Heap: heap, Count: count, from: g}, nil
}

// Generate lists every split with the smaller part first, heap by heap.
func Generate(g *Game) []game.Turn[*Game] {
	var turns []game.Turn[*Game]
	for i, n := range g.heaps {
		for count := 1; 2*count < n; count++ {
			turns = append(turns, Split{Bound: game.Bind(g), Heap: i, Count: count, from: g})
		}
	}
	return turns
}
