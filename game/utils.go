package game

import (
	"errors"
	"fmt"
)

const (
	NumSquares       = 64
	NumSquaresPerRow = 8
)

var ErrInvalidSquare = errors.New("invalid square")

func IsValidSquare(square int) bool {
	return square >= 0 && square < NumSquares
}

func rowOf(square int) int {
	return square / NumSquaresPerRow
}

func columnOf(square int) int {
	return square % NumSquaresPerRow
}

// Column predicates guard offsets that would otherwise wrap to the other side of the board.
func isFirstColumn(square int) bool   { return columnOf(square) == 0 }
func isSecondColumn(square int) bool  { return columnOf(square) == 1 }
func isSeventhColumn(square int) bool { return columnOf(square) == 6 }
func isEighthColumn(square int) bool  { return columnOf(square) == 7 }

// Starting rows of the pawns: black on the second row from the top, white on the seventh.
func isSecondRow(square int) bool  { return rowOf(square) == 1 }
func isSeventhRow(square int) bool { return rowOf(square) == 6 }

// SquareName converts a square index to algebraic notation, e.g. 52 -> "e2".
func SquareName(square int) string {
	if !IsValidSquare(square) {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+columnOf(square), NumSquaresPerRow-rowOf(square))
}

// ParseSquare converts algebraic notation to a square index, e.g. "e2" -> 52.
func ParseSquare(name string) (int, error) {
	if len(name) != 2 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return -1, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	return (NumSquaresPerRow-int(rank-'0'))*NumSquaresPerRow + int(file-'a'), nil
}

// Square is ParseSquare for literals known to be valid. It panics otherwise.
func Square(name string) int {
	square, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return square
}

// chebyshevDistance is the number of king steps between two squares.
func chebyshevDistance(from, to int) int {
	return max(abs(rowOf(from)-rowOf(to)), abs(columnOf(from)-columnOf(to)))
}

// Distance is the king-step distance between two squares.
func Distance(from, to int) int {
	return chebyshevDistance(from, to)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsEndGame reports whether the side to move is checkmated or stalemated.
func IsEndGame(board *Board) bool {
	player := board.CurrentPlayer()
	return player.IsInCheckMate() || player.IsInStaleMate()
}

// IsThreatenedBoardImmediate reports whether either side is in check.
func IsThreatenedBoardImmediate(board *Board) bool {
	return board.WhitePlayer().IsInCheck() || board.BlackPlayer().IsInCheck()
}

// LastNMoves walks back through the transition moves that produced board, newest first.
func LastNMoves(board *Board, n int) []Move {
	moves := make([]Move, 0, n)
	current := board.TransitionMove()
	for !current.IsNull() && len(moves) < n {
		moves = append(moves, current)
		current = current.Board().TransitionMove()
	}
	return moves
}

// isKingPawnTrap reports whether an enemy pawn stands on the square in front of the king.
func isKingPawnTrap(board *Board, king *Piece, frontSquare int) bool {
	piece := board.Piece(frontSquare)
	return piece != nil && piece.Kind() == Pawn && piece.Alliance() != king.Alliance()
}
