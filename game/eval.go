package game

import "math"

// Evaluate scores a state from a fixed observer's point of view. Higher is better for the
// maximizing side; math.MaxInt and math.MinInt are reserved for proven wins and losses.
type Evaluate[S Game] func(S) int

// IncrementalEvaluator is an immutable score attached to one state. Increment derives the score of
// a successor from the delta introduced by the latest turn and never mutates the receiver.
type IncrementalEvaluator[S Game] interface {
	Increment(next S) IncrementalEvaluator[S]
	Evaluate() int
}

// Generator lists the turns available from a state. The returned slice is consumed once.
type Generator[S Game] func(S) []Turn[S]

// EvaluateWin only distinguishes won, lost and undecided positions for player
func EvaluateWin[S MultiPlayer](player int) Evaluate[S] {
	return func(s S) int {
		winner := s.Winner()
		switch {
		case winner == NoWinner:
			return 0
		case winner == player:
			return math.MaxInt
		default:
			return math.MinInt
		}
	}
}
