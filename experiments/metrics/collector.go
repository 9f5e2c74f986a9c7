package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm  string
	Depth      int
	Duration   time.Duration
	Expansions int // Calls to the turn generator
	Nodes      int // Successor states created
	Cutoffs    int // Nodes settled before all their children reported
}

type MoveMetric struct {
	Step   int
	Player int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // game.NoWinner on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Moves          []MoveMetric // Only turns of players reporting their searches
}

type Collector interface {
	Start(algorithm string, depth int)
	AddExpansion()
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm  string
	depth      int
	startTime  time.Time
	expansions atomic.Int64
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters, so a collector can be reused across searches
func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.expansions.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:  m.algorithm,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Expansions: int(m.expansions.Load()),
		Nodes:      int(m.nodes.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddExpansion()                     {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
