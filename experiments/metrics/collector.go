package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy        string
	Depth           int
	Duration        time.Duration
	BoardsEvaluated int64
	Cutoffs         int64
	Extensions      int64 // Quiescence extensions
}

// PrunePercent is the share of cutoffs relative to evaluated boards.
func (m SearchMetric) PrunePercent() float64 {
	if m.BoardsEvaluated == 0 {
		return 0
	}
	return 100 * float64(m.Cutoffs) / float64(m.BoardsEvaluated)
}

type MoveMetric struct {
	Step   int
	Player string // Alliance
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string, depth int)
	AddBoard()
	AddCutoff()
	AddExtension()
	Boards() int64
	Complete() SearchMetric
}

type collector struct {
	strategy   string
	depth      int
	startTime  time.Time
	boards     atomic.Int64
	cutoffs    atomic.Int64
	extensions atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(strategy string, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.boards.Store(0)
	m.cutoffs.Store(0)
	m.extensions.Store(0)
}

func (m *collector) AddBoard() {
	m.boards.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddExtension() {
	m.extensions.Add(1)
}

func (m *collector) Boards() int64 {
	return m.boards.Load()
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:        m.strategy,
		Depth:           m.depth,
		Duration:        time.Since(m.startTime),
		BoardsEvaluated: m.boards.Load(),
		Cutoffs:         m.cutoffs.Load(),
		Extensions:      m.extensions.Load(),
	}
}

type dummyCollector struct {
	strategy string
}

// NewDummyCollector records nothing but the strategy name.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) { m.strategy = strategy }
func (m *dummyCollector) AddBoard()                        {}
func (m *dummyCollector) AddCutoff()                       {}
func (m *dummyCollector) AddExtension()                    {}
func (m *dummyCollector) Boards() int64                    { return 0 }
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{Strategy: m.strategy} }
