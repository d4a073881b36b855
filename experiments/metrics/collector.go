package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	Nodes       int64 // states whose value was computed
	Evaluations int64 // static evaluator calls
	Terminals   int64 // terminal states reached
	Cutoffs     int64 // sibling lists abandoned by pruning
}

type MoveMetric struct {
	Step   int
	Player int // +1 or -1
	SearchMetric
}

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Utility    float64
	Winner     int   // +1, -1, or 0 for a draw
	States     int64 // boards constructed during the game
}

type Collector interface {
	Start()
	AddNode()
	AddEvaluation()
	AddTerminal()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	terminals   atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.terminals.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes.Load(),
		Evaluations: m.evaluations.Load(),
		Terminals:   m.terminals.Load(),
		Cutoffs:     m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddTerminal()           {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
