package searcher

import (
	"math"
	"time"

	"chess/game"
)

// MiniMax searches every line to a fixed depth without pruning or move ordering.
type MiniMax struct {
	settings
}

func NewMiniMax(options ...Option) *MiniMax {
	return &MiniMax{settings: newSettings(options)}
}

func (m *MiniMax) String() string {
	return "MiniMax"
}

// Execute returns the best move for the side to move, or the null move if it has none.
// Among equally scored moves the last one seen is kept.
func (m *MiniMax) Execute(board *game.Board) game.Move {
	m.collector.Start(m.String(), m.depth)
	player := board.CurrentPlayer()
	best := game.NullMove()
	highest, lowest := math.MinInt, math.MaxInt

	moves := player.LegalMoves()
	for i, move := range moves {
		start, boards := time.Now(), m.collector.Boards()
		transition := player.MakeMove(move)
		event := Event{Strategy: m.String(), Index: i + 1, Total: len(moves), Move: move, Status: transition.Status()}
		if transition.Status().IsDone() {
			if player.Alliance().IsWhite() {
				event.Score = m.min(transition.ToBoard(), m.depth-1)
				if event.Score >= highest {
					highest = event.Score
					best = move
				}
			} else {
				event.Score = m.max(transition.ToBoard(), m.depth-1)
				if event.Score <= lowest {
					lowest = event.Score
					best = move
				}
			}
			event.Boards = m.collector.Boards() - boards
			event.Duration = time.Since(start)
		}
		event.Best = best
		m.emit(event)
	}

	m.complete(board, best)
	return best
}

func (m *MiniMax) min(board *game.Board, depth int) int {
	if depth == 0 {
		m.collector.AddBoard()
		return m.evaluator.Evaluate(board, depth)
	}
	if game.IsEndGame(board) {
		return m.evaluator.Evaluate(board, depth)
	}
	lowest := math.MaxInt
	player := board.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status().IsDone() {
			continue
		}
		if score := m.max(transition.ToBoard(), depth-1); score < lowest {
			lowest = score
		}
	}
	return lowest
}

func (m *MiniMax) max(board *game.Board, depth int) int {
	if depth == 0 {
		m.collector.AddBoard()
		return m.evaluator.Evaluate(board, depth)
	}
	if game.IsEndGame(board) {
		return m.evaluator.Evaluate(board, depth)
	}
	highest := math.MinInt
	player := board.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status().IsDone() {
			continue
		}
		if score := m.min(transition.ToBoard(), depth-1); score >= highest {
			highest = score
		}
	}
	return highest
}
