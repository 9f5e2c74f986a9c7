package experiments

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"logicgames/experiments/metrics"
)

// Throughput of one search algorithm over every recorded move of an experiment
type Throughput struct {
	Algorithm      string
	Searches       int
	Expansions     int
	Nodes          int
	Cutoffs        int
	Duration       time.Duration
	NodesPerSecond float64
}

// MeasureThroughput aggregates the move metrics of all games by algorithm, sorted by name
func MeasureThroughput(results []Result) []Throughput {
	moves := lo.FlatMap(results, func(r Result, _ int) []metrics.MoveMetric { return r.Metric.Moves })
	byAlgorithm := lo.GroupBy(moves, func(m metrics.MoveMetric) string { return m.Algorithm })

	throughputs := lo.MapToSlice(byAlgorithm, func(algorithm string, moves []metrics.MoveMetric) Throughput {
		t := Throughput{
			Algorithm:  algorithm,
			Searches:   len(moves),
			Expansions: lo.SumBy(moves, func(m metrics.MoveMetric) int { return m.Expansions }),
			Nodes:      lo.SumBy(moves, func(m metrics.MoveMetric) int { return m.Nodes }),
			Cutoffs:    lo.SumBy(moves, func(m metrics.MoveMetric) int { return m.Cutoffs }),
			Duration:   lo.SumBy(moves, func(m metrics.MoveMetric) time.Duration { return m.Duration }),
		}
		if t.Duration > 0 {
			t.NodesPerSecond = float64(t.Nodes) / t.Duration.Seconds()
		}
		return t
	})
	slices.SortFunc(throughputs, func(a, b Throughput) int { return strings.Compare(a.Algorithm, b.Algorithm) })
	return throughputs
}
