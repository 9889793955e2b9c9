package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardBoard(t *testing.T) {
	board := StandardBoard()

	t.Run("layout", func(t *testing.T) {
		require.Len(t, board.WhitePieces(), 16, "White should start with 16 pieces")
		require.Len(t, board.BlackPieces(), 16, "Black should start with 16 pieces")
		require.Equal(t, White, board.CurrentPlayer().Alliance(), "White should move first")
		require.Equal(t, King, board.Piece(Square("e1")).Kind(), "White king should start on e1")
		require.Equal(t, Queen, board.Piece(Square("d8")).Kind(), "Black queen should start on d8")
		require.Equal(t, Black, board.Piece(Square("a7")).Alliance(), "a7 should hold a black pawn")
		require.Nil(t, board.EnPassantPawn(), "No pawn should be capturable en passant")
		require.True(t, board.TransitionMove().IsNull(), "The start position has no producing move")
	})

	t.Run("move counts", func(t *testing.T) {
		require.Len(t, board.WhitePlayer().LegalMoves(), 20, "White should have 20 opening moves")
		require.Len(t, board.BlackPlayer().LegalMoves(), 20, "Black should have 20 opening moves")
		require.Len(t, board.AllLegalMoves(), 40, "AllLegalMoves should hold both sides")
		require.False(t, board.WhitePlayer().IsInCheck(), "Nobody is in check at the start")
		require.False(t, IsEndGame(board), "The start position is not terminal")
	})

	t.Run("rendering", func(t *testing.T) {
		rendered := board.String()
		require.Contains(t, rendered, "r  n  b  q  k  b  n  r\n", "Black back rank should render first")
		require.Contains(t, rendered, "R  N  B  Q  K  B  N  R\n", "White back rank should render last")
	})
}

func TestPerft(t *testing.T) {
	tests := []struct {
		depth int
		nodes int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		require.Equal(t, tt.nodes, Perft(StandardBoard(), tt.depth), "Perft(%d) from the start position", tt.depth)
	}
}

func TestBuilder(t *testing.T) {
	t.Run("panics without a king", func(t *testing.T) {
		require.Panics(t, func() {
			NewBuilder().SetPiece(NewPiece(King, White, Square("e1"), true)).Build()
		}, "Build should panic when black has no king")
	})

	t.Run("panics with two kings", func(t *testing.T) {
		require.Panics(t, func() {
			NewBuilder().
				SetPiece(NewPiece(King, White, Square("e1"), true)).
				SetPiece(NewPiece(King, White, Square("d1"), true)).
				SetPiece(NewPiece(King, Black, Square("e8"), true)).
				Build()
		}, "Build should panic when white has two kings")
	})

	t.Run("panics on an invalid square", func(t *testing.T) {
		require.Panics(t, func() {
			NewBuilder().SetPiece(NewPiece(Pawn, White, NumSquares, false))
		}, "SetPiece should reject a square outside the board")
	})

	t.Run("boards are independent", func(t *testing.T) {
		start := StandardBoard()
		before := start.Hash()
		next := play(t, start, "e2e4")

		require.Equal(t, before, start.Hash(), "Playing a move should not change the source board")
		require.NotEqual(t, before, next.Hash(), "The successor board should differ")
		require.NotNil(t, start.Piece(Square("e2")), "e2 should still be occupied on the source board")
		require.Nil(t, next.Piece(Square("e2")), "e2 should be empty on the successor board")
	})
}

func TestHash(t *testing.T) {
	t.Run("equal positions hash equally", func(t *testing.T) {
		require.Equal(t, StandardBoard().Hash(), StandardBoard().Hash(), "Identical boards should hash equally")
	})

	t.Run("knight shuffle restores placement but not first-move flags", func(t *testing.T) {
		board := play(t, StandardBoard(), "g1f3", "g8f6", "f3g1", "f6g8")
		require.NotEqual(t, StandardBoard().Hash(), board.Hash(), "Moved knights lose their first-move flag")

		again := play(t, board, "g1f3", "g8f6", "f3g1", "f6g8")
		require.Equal(t, board.Hash(), again.Hash(), "Repeating the shuffle should reach the same position")
	})

	t.Run("side to move is part of the hash", func(t *testing.T) {
		white := castleBoard(White)
		black := castleBoard(Black)
		require.NotEqual(t, white.Hash(), black.Hash(), "Side to move should change the hash")
	})
}

func TestLastNMoves(t *testing.T) {
	board := play(t, StandardBoard(), "e2e4", "e7e5", "g1f3")

	moves := LastNMoves(board, 2)
	require.Len(t, moves, 2, "Should return the two most recent moves")
	require.Equal(t, "g1f3", uci(moves[0]), "Newest move should come first")
	require.Equal(t, "e7e5", uci(moves[1]), "Second newest move should come second")

	require.Len(t, LastNMoves(board, 10), 3, "Should stop at the start position")
	require.Empty(t, LastNMoves(StandardBoard(), 2), "The start position has no history")
}

func TestSquares(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		require.Equal(t, 0, Square("a8"), "a8 should be square 0")
		require.Equal(t, 63, Square("h1"), "h1 should be square 63")
		require.Equal(t, 52, Square("e2"), "e2 should be square 52")
		require.Equal(t, "e2", SquareName(52), "Square 52 should be e2")
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "e", "i1", "a9", "e22"} {
			_, err := ParseSquare(name)
			require.ErrorIs(t, err, ErrInvalidSquare, "%q should be rejected", name)
		}
	})

	t.Run("distance", func(t *testing.T) {
		require.Equal(t, 7, Distance(Square("a1"), Square("h8")), "Corners are seven king steps apart")
		require.Equal(t, 2, Distance(Square("e1"), Square("g2")), "e1 to g2 is two king steps")
	})
}
