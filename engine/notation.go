package engine

import (
	"fmt"
	"strings"

	"chess/game"
)

var promotionKinds = map[byte]game.Kind{
	'n': game.Knight,
	'b': game.Bishop,
	'r': game.Rook,
	'q': game.Queen,
}

// Notation renders move in coordinate notation such as "e2e4" or "e7e8q".
func Notation(move game.Move) string {
	if move.IsNull() {
		return "0000"
	}
	notation := game.SquareName(move.From()) + game.SquareName(move.To())
	if move.IsPromotion() {
		notation += strings.ToLower(move.PromotionKind().String())
	}
	return notation
}

// ParseMove resolves coordinate notation against the legal moves of the side to move.
// A promotion without a suffix resolves to the queen.
func ParseMove(board *game.Board, notation string) (game.Move, error) {
	notation = strings.ToLower(strings.TrimSpace(notation))
	if len(notation) != 4 && len(notation) != 5 {
		return game.NullMove(), fmt.Errorf("invalid move %q: expected from and to squares", notation)
	}
	from, err := game.ParseSquare(notation[:2])
	if err != nil {
		return game.NullMove(), fmt.Errorf("invalid move %q: %w", notation, err)
	}
	to, err := game.ParseSquare(notation[2:4])
	if err != nil {
		return game.NullMove(), fmt.Errorf("invalid move %q: %w", notation, err)
	}

	move := game.CreateMove(board, from, to)
	if len(notation) == 5 {
		kind, ok := promotionKinds[notation[4]]
		if !ok {
			return game.NullMove(), fmt.Errorf("invalid move %q: unknown promotion %q", notation, notation[4])
		}
		move = game.CreatePromotion(board, from, to, kind)
	}
	if move.IsNull() || move.MovedPiece().Alliance() != board.MoveMaker() {
		return game.NullMove(), fmt.Errorf("%s to move cannot play %s: %w", board.MoveMaker(), notation, ErrRejectedMove)
	}
	return move, nil
}

// Replay plays the moves in order from board and returns the resulting board.
func Replay(board *game.Board, notations []string) (*game.Board, error) {
	for i, notation := range notations {
		move, err := ParseMove(board, notation)
		if err != nil {
			return board, fmt.Errorf("move %d: %w", i+1, err)
		}
		transition := board.CurrentPlayer().MakeMove(move)
		if !transition.Status().IsDone() {
			return board, fmt.Errorf("move %d: %s %s: %w", i+1, notation, transition.Status(), ErrRejectedMove)
		}
		board = transition.ToBoard()
	}
	return board, nil
}
