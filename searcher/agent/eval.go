package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"logicgames/game"
	"logicgames/searcher"
)

// Random plays a uniformly random turn. It is the baseline the searches are measured against.
type Random[S game.MultiPlayer] struct {
	generate game.Generator[S]
	rng      *rand.Rand
}

func NewRandom[S game.MultiPlayer](generate game.Generator[S], seed uint64) *Random[S] {
	return &Random[S]{
		generate: generate,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *Random[S]) Turn(state S) (game.Turn[S], error) {
	turns := a.generate(state)
	if len(turns) == 0 {
		return nil, fmt.Errorf("%w: player %d to move", searcher.ErrNoTurns, state.CurrPlayer())
	}
	return turns[a.rng.Intn(len(turns))], nil
}

// First always plays the first generated turn
type First[S game.Game] struct {
	generate game.Generator[S]
}

func NewFirst[S game.Game](generate game.Generator[S]) *First[S] {
	return &First[S]{generate: generate}
}

func (a *First[S]) Turn(state S) (game.Turn[S], error) {
	turns := a.generate(state)
	if len(turns) == 0 {
		return nil, searcher.ErrNoTurns
	}
	return turns[0], nil
}
