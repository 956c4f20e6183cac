package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Difficulty   string
	Depth        int // Configured search depth in plies
	DepthReached int // Deepest ply actually visited
	Score        int
	Duration     time.Duration
	Nodes        int // Positions expanded
	Leaves       int // Positions scored by the evaluator or as terminal
	Cutoffs      int // Alpha-beta prunes
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string // Move notation
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // Empty for a draw or an unfinished game
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(difficulty string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	difficulty string
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(difficulty string, depth int) {
	m.difficulty = difficulty
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Difficulty: m.difficulty,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(difficulty string, depth int) {}
func (m *dummyCollector) AddNode()                           {}
func (m *dummyCollector) AddLeaf()                           {}
func (m *dummyCollector) AddCutoff()                         {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
