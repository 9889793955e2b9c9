package searcher

import (
	"math"
	"time"

	"chess/game"
	"chess/meta"
)

// AlphaBeta is minimax with (highest, lowest) bounds and move ordering at every node.
type AlphaBeta struct {
	settings
	quiescenceCount int
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: newSettings(options)}
}

func (a *AlphaBeta) String() string {
	return "AB+MO"
}

// Execute returns the best move for the side to move, or the null move if it has none.
// A later move replaces the best only when it scores strictly better.
func (a *AlphaBeta) Execute(board *game.Board) game.Move {
	a.collector.Start(a.String(), a.depth)
	white := board.CurrentPlayer().Alliance().IsWhite()
	best := game.NullMove()
	highest, lowest := math.MinInt, math.MaxInt

	ordered := candidates(board, a.ordering)
	for i, candidate := range ordered {
		a.quiescenceCount = 0
		start, boards := time.Now(), a.collector.Boards()
		transition := candidate.Transition
		event := Event{Strategy: a.String(), Index: i + 1, Total: len(ordered), Move: candidate.Move, Status: transition.Status()}
		if transition.Status().IsDone() {
			if white {
				event.Score = a.min(transition.ToBoard(), a.depth-1, highest, lowest)
				if event.Score > highest {
					highest = event.Score
					best = candidate.Move
				}
			} else {
				event.Score = a.max(transition.ToBoard(), a.depth-1, highest, lowest)
				if event.Score < lowest {
					lowest = event.Score
					best = candidate.Move
				}
			}
			event.Boards = a.collector.Boards() - boards
			event.Duration = time.Since(start)
		}
		event.Best = best
		a.emit(event)
	}

	a.complete(board, best)
	return best
}

func (a *AlphaBeta) max(board *game.Board, depth, highest, lowest int) int {
	if depth == 0 || game.IsEndGame(board) {
		a.collector.AddBoard()
		return a.evaluator.Evaluate(board, depth)
	}
	currentHighest := highest
	for _, candidate := range candidates(board, a.ordering) {
		if !candidate.Transition.Status().IsDone() {
			continue
		}
		currentHighest = max(currentHighest, a.min(candidate.Transition.ToBoard(), a.childDepth(board, depth), currentHighest, lowest))
		if lowest <= currentHighest {
			a.collector.AddCutoff()
			break
		}
	}
	return currentHighest
}

func (a *AlphaBeta) min(board *game.Board, depth, highest, lowest int) int {
	if depth == 0 || game.IsEndGame(board) {
		a.collector.AddBoard()
		return a.evaluator.Evaluate(board, depth)
	}
	currentLowest := lowest
	for _, candidate := range candidates(board, a.ordering) {
		if !candidate.Transition.Status().IsDone() {
			continue
		}
		currentLowest = min(currentLowest, a.max(candidate.Transition.ToBoard(), a.childDepth(board, depth), highest, currentLowest))
		if currentLowest <= highest {
			a.collector.AddCutoff()
			break
		}
	}
	return currentLowest
}

// childDepth is depth-1, except that with quiescence enabled a depth-1 node whose side to
// move is in check or whose last two plies captured is searched two more plies.
func (a *AlphaBeta) childDepth(board *game.Board, depth int) int {
	if !a.quiescence || depth != 1 || a.quiescenceCount >= meta.MAX_QUIESCENCE {
		return depth - 1
	}
	activity := 0
	if board.CurrentPlayer().IsInCheck() {
		activity++
	}
	for _, move := range game.LastNMoves(board, 2) {
		if move.IsAttack() {
			activity++
		}
	}
	if activity >= 2 {
		a.quiescenceCount++
		a.collector.AddExtension()
		return 2
	}
	return depth - 1
}
