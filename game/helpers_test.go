package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// play applies coordinate moves such as "e2e4" or "b7b8n" in order, requiring each to be Done.
func play(t *testing.T, board *Board, moves ...string) *Board {
	t.Helper()
	for _, notation := range moves {
		move := CreateMove(board, Square(notation[:2]), Square(notation[2:4]))
		if len(notation) == 5 {
			move = CreatePromotion(board, Square(notation[:2]), Square(notation[2:4]), promotionKind(t, notation[4]))
		}
		require.False(t, move.IsNull(), "Move %s should exist on\n%s", notation, board)
		transition := board.CurrentPlayer().MakeMove(move)
		require.Equal(t, Done, transition.Status(), "Move %s should be playable on\n%s", notation, board)
		board = transition.ToBoard()
	}
	return board
}

func promotionKind(t *testing.T, letter byte) Kind {
	t.Helper()
	for _, kind := range promotionKinds {
		if strings.ToLower(kind.String())[0] == letter {
			return kind
		}
	}
	require.FailNow(t, "unknown promotion", "%q is not a promotion piece", letter)
	return Queen
}

// playable lists the current player's Done moves in coordinate notation.
func playable(board *Board) []string {
	moves := []string{}
	player := board.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		if player.MakeMove(move).Status().IsDone() {
			moves = append(moves, uci(move))
		}
	}
	return moves
}

func uci(move Move) string {
	notation := SquareName(move.From()) + SquareName(move.To())
	if move.IsPromotion() {
		notation += strings.ToLower(move.PromotionKind().String())
	}
	return notation
}

// castleBoard has both kings and all four rooks on their home squares with clear back ranks.
func castleBoard(moveMaker Alliance) *Board {
	return NewBuilder().
		SetPiece(NewPiece(Rook, Black, Square("a8"), true)).
		SetPiece(NewPiece(King, Black, Square("e8"), true)).
		SetPiece(NewPiece(Rook, Black, Square("h8"), true)).
		SetPiece(NewPiece(Rook, White, Square("a1"), true)).
		SetPiece(NewPiece(King, White, Square("e1"), true)).
		SetPiece(NewPiece(Rook, White, Square("h1"), true)).
		SetMoveMaker(moveMaker).
		Build()
}

func findMove(board *Board, kind MoveKind) Move {
	for _, move := range board.CurrentPlayer().LegalMoves() {
		if move.Kind() == kind {
			return move
		}
	}
	return NullMove()
}
