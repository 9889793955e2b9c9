package engine

import (
	"errors"

	"chess/experiments/metrics"
	"chess/game"

	"github.com/google/uuid"
)

// ErrRejectedMove is returned when a move cannot be played on the current board.
var ErrRejectedMove = errors.New("move rejected")

type Engine interface {
	// Run plays a game till a side is mated, the game is drawn or the turn limit is reached
	Run() (Result, error)
}

// Reason explains why a game ended.
type Reason string

const (
	Checkmate  Reason = "checkmate"
	Stalemate  Reason = "stalemate"
	Repetition Reason = "repetition"
	TurnLimit  Reason = "turn limit"
)

type Result struct {
	ID          uuid.UUID
	Winner      string // Alliance name, empty on a draw
	Reason      Reason
	Final       *game.Board
	Moves       []game.Move
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

func (r Result) IsDraw() bool {
	return r.Winner == ""
}
