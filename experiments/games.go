package experiments

import (
	"fmt"

	"logicgames/game"
	"logicgames/game/grundy"
	"logicgames/game/tictactoe"
	"logicgames/searcher"
	"logicgames/searcher/agent"
)

func lines(b *tictactoe.Board) game.IncrementalEvaluator[*tictactoe.Board] {
	return tictactoe.NewLineEvaluator(b, b.CurrPlayer())
}

// TicTacToeMatchups pits the searches against each other and against a random player.
// Depth limits the incremental line-counting agent only, the others search to the end.
func TicTacToeMatchups(games, depth int, seed uint64) []Matchup[*tictactoe.Board] {
	type factory func(g int) game.Player[*tictactoe.Board]
	alphaBeta := func(int) game.Player[*tictactoe.Board] { return agent.NewAlphaBeta(tictactoe.Generate) }
	minimax := func(int) game.Player[*tictactoe.Board] { return agent.NewMinimax(tictactoe.Generate) }
	incremental := func(int) game.Player[*tictactoe.Board] {
		return agent.NewIncrementalAlphaBeta(tictactoe.Generate, lines, searcher.WithDepth(depth))
	}
	random := func(g int) game.Player[*tictactoe.Board] {
		return agent.NewRandom(tictactoe.Generate, seed+uint64(g))
	}

	pairs := []struct {
		name string
		x, o factory
	}{
		{"alphabeta-vs-minimax", alphaBeta, minimax},
		{"alphabeta-vs-random", alphaBeta, random},
		{"random-vs-alphabeta", random, alphaBeta},
		{fmt.Sprintf("lines%d-vs-random", depth), incremental, random},
		{fmt.Sprintf("lines%d-vs-alphabeta", depth), incremental, alphaBeta},
	}

	matchups := make([]Matchup[*tictactoe.Board], len(pairs))
	for i, p := range pairs {
		p := p
		matchups[i] = Matchup[*tictactoe.Board]{
			Name:  p.name,
			Start: tictactoe.New,
			Players: func(g int) []game.Player[*tictactoe.Board] {
				return []game.Player[*tictactoe.Board]{p.x(g), p.o(g)}
			},
			Games: games,
		}
	}
	return matchups
}

// GrundyMatchups plays Grundy's game on a single heap, where the first player's fate is known
// from the heap size.
func GrundyMatchups(heap, games int, seed uint64) []Matchup[*grundy.Game] {
	start := func() *grundy.Game { return grundy.New(heap) }
	return []Matchup[*grundy.Game]{
		{
			Name:  fmt.Sprintf("grundy%d-alphabeta-vs-minimax", heap),
			Start: start,
			Players: func(int) []game.Player[*grundy.Game] {
				return []game.Player[*grundy.Game]{agent.NewAlphaBeta(grundy.Generate), agent.NewMinimax(grundy.Generate)}
			},
			Games: games,
		},
		{
			Name:  fmt.Sprintf("grundy%d-random-vs-alphabeta", heap),
			Start: start,
			Players: func(g int) []game.Player[*grundy.Game] {
				return []game.Player[*grundy.Game]{agent.NewRandom(grundy.Generate, seed+uint64(g)), agent.NewAlphaBeta(grundy.Generate)}
			},
			Games: games,
		},
	}
}
