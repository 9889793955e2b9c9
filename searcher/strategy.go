package searcher

import (
	"fmt"
	"time"

	"chess/eval"
	"chess/experiments/metrics"
	"chess/game"
	"chess/meta"

	"github.com/rs/zerolog/log"
)

// Strategy picks a move for the side to move. Implementations keep per-search counters and
// must not be shared between goroutines.
type Strategy interface {
	Execute(board *game.Board) game.Move
	NumBoardsEvaluated() int64
	Metrics() metrics.SearchMetric
	String() string
}

// Event reports the outcome of one root move.
type Event struct {
	Strategy string
	Index    int // 1-based
	Total    int
	Move     game.Move
	Status   game.MoveStatus
	Score    int // Meaningful only when Status is Done
	Best     game.Move
	Boards   int64 // Boards evaluated below this move
	Duration time.Duration
}

func (e Event) String() string {
	if !e.Status.IsDone() {
		return fmt.Sprintf("%s m: (%d/%d) %s is %s, best: %s", e.Strategy, e.Index, e.Total, e.Move, e.Status, e.Best)
	}
	return fmt.Sprintf("%s m: (%d/%d) %s scores %d, best: %s, boards: %d, t: %s",
		e.Strategy, e.Index, e.Total, e.Move, e.Score, e.Best, e.Boards, e.Duration)
}

// Trace receives root move events as a search progresses.
type Trace func(Event)

type Option func(s *settings)

type settings struct {
	depth      int
	evaluator  eval.Evaluator
	ordering   Ordering
	quiescence bool
	trace      Trace
	verbose    bool
	collector  metrics.Collector
	last       metrics.SearchMetric
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:     meta.DEFAULT_DEPTH,
		evaluator: eval.NewStandard(),
		ordering:  SmartOrdering,
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth < 1 {
			panic("search depth must be at least 1")
		}
		s.depth = depth
	}
}

func WithEvaluator(evaluator eval.Evaluator) Option {
	return func(s *settings) {
		if evaluator != nil {
			s.evaluator = evaluator
		}
	}
}

// WithMoveOrdering replaces the alpha-beta move ordering. nil keeps generation order.
func WithMoveOrdering(ordering Ordering) Option {
	return func(s *settings) {
		s.ordering = ordering
	}
}

// WithQuiescence extends volatile depth-1 nodes by two plies.
func WithQuiescence() Option {
	return func(s *settings) {
		s.quiescence = true
	}
}

func WithTrace(trace Trace) Option {
	return func(s *settings) {
		s.trace = trace
	}
}

// WithLogging logs every root move at debug level, not only the selection.
func WithLogging() Option {
	return func(s *settings) {
		s.verbose = true
	}
}

func (s *settings) NumBoardsEvaluated() int64 {
	return s.collector.Boards()
}

// Metrics returns the counters of the last completed search.
func (s *settings) Metrics() metrics.SearchMetric {
	return s.last
}

func (s *settings) emit(event Event) {
	if s.verbose {
		log.Debug().Msgf("\t%s", event)
	}
	if s.trace != nil {
		s.trace(event)
	}
}

func (s *settings) complete(board *game.Board, best game.Move) {
	s.last = s.collector.Complete()
	if best.IsNull() {
		log.Warn().Msgf("%s found no playable move for %s", s.last.Strategy, board.CurrentPlayer().Alliance())
		return
	}
	log.Debug().Msgf("%s selects %s [boards = %d, time = %s, cutoffs = %d, prune = %.2f%%, extensions = %d]",
		board.CurrentPlayer().Alliance(), best, s.last.BoardsEvaluated, s.last.Duration,
		s.last.Cutoffs, s.last.PrunePercent(), s.last.Extensions)
}
