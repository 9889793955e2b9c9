package engine

import (
	"testing"

	"chess/experiments/metrics"
	"chess/game"
	"chess/searcher"

	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of coordinate moves and then the null move.
type scripted struct {
	moves []string
	next  int
}

func (s *scripted) Execute(board *game.Board) game.Move {
	if s.next >= len(s.moves) {
		return game.NullMove()
	}
	notation := s.moves[s.next]
	s.next++
	move := game.CreateMove(board, game.Square(notation[:2]), game.Square(notation[2:4]))
	return move
}

func (s *scripted) NumBoardsEvaluated() int64 { return 0 }

func (s *scripted) Metrics() metrics.SearchMetric {
	return metrics.SearchMetric{Strategy: s.String()}
}

func (s *scripted) String() string { return "Scripted" }

func TestRun(t *testing.T) {
	t.Run("checkmate", func(t *testing.T) {
		white := &scripted{moves: []string{"f2f3", "g2g4"}}
		black := &scripted{moves: []string{"e7e5", "d8h4"}}

		result, err := LocalEngine(game.StandardBoard(), white, black).Run()
		require.NoError(t, err, "Scripted moves are all legal")
		require.Equal(t, "Black", result.Winner, "Black delivers fool's mate")
		require.Equal(t, Checkmate, result.Reason, "The game ends by checkmate")
		require.False(t, result.IsDraw(), "A mate is not a draw")
		require.Len(t, result.Moves, 4, "Four plies were played")
		require.True(t, result.Final.CurrentPlayer().IsInCheckMate(), "The final board is mate")
		require.NotEmpty(t, result.ID.String(), "Games get an identifier")

		require.Len(t, result.MoveMetrics, 4, "Every ply has a metric")
		last := result.MoveMetrics[3]
		require.Equal(t, 4, last.Step, "Steps count plies")
		require.Equal(t, "Black", last.Player, "The mover is recorded")
		require.Equal(t, "d8h4", last.Move, "Moves are recorded in coordinate notation")
		require.Equal(t, "Scripted", last.Strategy, "Search metrics come from the strategy")

		require.Equal(t, "White", result.GameMetric.StartingPlayer, "White starts")
		require.Equal(t, "Black", result.GameMetric.Winner, "The game metric carries the winner")
		require.Equal(t, "checkmate", result.GameMetric.Reason, "The game metric carries the reason")
		require.Equal(t, 4, result.GameMetric.TotalMoves, "The game metric counts plies")
	})

	t.Run("stalemate before any move", func(t *testing.T) {
		board := game.NewBuilder().
			SetPiece(game.NewPiece(game.King, game.Black, game.Square("h8"), false)).
			SetPiece(game.NewPiece(game.Queen, game.White, game.Square("f7"), false)).
			SetPiece(game.NewPiece(game.King, game.White, game.Square("a1"), false)).
			SetMoveMaker(game.Black).
			Build()

		result, err := LocalEngine(board, &scripted{}, &scripted{}).Run()
		require.NoError(t, err, "No move is requested on a finished board")
		require.Equal(t, Stalemate, result.Reason, "Black has no move and is not in check")
		require.True(t, result.IsDraw(), "Stalemate is a draw")
		require.Empty(t, result.Moves, "Nothing was played")
	})

	t.Run("threefold repetition", func(t *testing.T) {
		white := &scripted{moves: []string{"g1f3", "f3g1", "g1f3", "f3g1", "g1f3"}}
		black := &scripted{moves: []string{"g8f6", "f6g8", "g8f6", "f6g8", "g8f6"}}

		result, err := LocalEngine(game.StandardBoard(), white, black).Run()
		require.NoError(t, err, "Knight shuffles are legal")
		require.Equal(t, Repetition, result.Reason, "The shuffle repeats a position three times")
		require.True(t, result.IsDraw(), "Repetition is a draw")
		require.Len(t, result.Moves, 10, "The third occurrence comes after ten plies")
	})

	t.Run("turn limit", func(t *testing.T) {
		result, err := LocalEngine(game.StandardBoard(), searcher.NewRandom(1), searcher.NewRandom(2), WithMaxTurns(3)).Run()
		require.NoError(t, err, "Random only proposes playable moves")
		require.Equal(t, TurnLimit, result.Reason, "The game stops at the limit")
		require.Len(t, result.Moves, 3, "Exactly the limit is played")
		require.True(t, result.IsDraw(), "Running out of turns is a draw")
	})

	t.Run("rejected move", func(t *testing.T) {
		white := &scripted{moves: []string{"e2e4"}}
		black := &scripted{moves: []string{"e7e4"}}

		result, err := LocalEngine(game.StandardBoard(), white, black).Run()
		require.ErrorIs(t, err, ErrRejectedMove, "An unplayable move aborts the game")
		require.Len(t, result.Moves, 1, "Moves before the rejection are kept")
		require.Equal(t, game.Black, result.Final.MoveMaker(), "The final board is where the rejection happened")
	})

	t.Run("searchers finish a game", func(t *testing.T) {
		white := searcher.NewAlphaBeta(searcher.WithDepth(1))
		black := searcher.NewRandom(3)
		result, err := LocalEngine(game.StandardBoard(), white, black, WithMaxTurns(6)).Run()
		require.NoError(t, err, "Searchers propose playable moves")
		require.Len(t, result.MoveMetrics, len(result.Moves), "Every ply has a metric")
		require.Equal(t, "AB+MO", result.MoveMetrics[0].Strategy, "White's metrics come from alpha-beta")
		require.Equal(t, "Random", result.MoveMetrics[1].Strategy, "Black's metrics come from random")
	})
}

func TestLocalEngine(t *testing.T) {
	require.Panics(t, func() { LocalEngine(game.StandardBoard(), nil, &scripted{}) }, "Both sides need a strategy")
	require.Panics(t, func() { LocalEngine(nil, &scripted{}, &scripted{}) }, "A board is required")
	require.Panics(t, func() { LocalEngine(game.StandardBoard(), &scripted{}, &scripted{}, WithMaxTurns(0)) }, "The turn limit must be positive")
}

func TestParseMove(t *testing.T) {
	board := game.StandardBoard()

	t.Run("legal move", func(t *testing.T) {
		move, err := ParseMove(board, " E2E4 ")
		require.NoError(t, err, "Case and spaces are tolerated")
		require.Equal(t, "e2e4", Notation(move), "The pawn jump resolves")
	})

	t.Run("invalid squares", func(t *testing.T) {
		_, err := ParseMove(board, "e9e4")
		require.ErrorIs(t, err, game.ErrInvalidSquare, "Rank 9 does not exist")
		_, err = ParseMove(board, "e2")
		require.Error(t, err, "A move needs two squares")
	})

	t.Run("wrong side", func(t *testing.T) {
		_, err := ParseMove(board, "e7e5")
		require.ErrorIs(t, err, ErrRejectedMove, "Black cannot move first")
	})

	t.Run("promotion", func(t *testing.T) {
		promotion := game.NewBuilder().
			SetPiece(game.NewPiece(game.King, game.White, game.Square("e1"), false)).
			SetPiece(game.NewPiece(game.Pawn, game.White, game.Square("a7"), false)).
			SetPiece(game.NewPiece(game.King, game.Black, game.Square("h8"), false)).
			SetMoveMaker(game.White).
			Build()

		move, err := ParseMove(promotion, "a7a8n")
		require.NoError(t, err, "Under-promotion is legal")
		require.Equal(t, game.Knight, move.PromotionKind(), "The suffix selects the piece")
		require.Equal(t, "a7a8n", Notation(move), "Notation keeps the suffix")

		move, err = ParseMove(promotion, "a7a8")
		require.NoError(t, err, "The suffix is optional")
		require.Equal(t, game.Queen, move.PromotionKind(), "Promotion defaults to the queen")

		_, err = ParseMove(promotion, "a7a8k")
		require.Error(t, err, "Kings are not a promotion choice")
	})

	require.Equal(t, "0000", Notation(game.NullMove()), "The null move has a placeholder")
}

func TestReplay(t *testing.T) {
	board, err := Replay(game.StandardBoard(), []string{"e2e4", "e7e5", "g1f3"})
	require.NoError(t, err, "The opening is legal")
	require.Equal(t, game.Black, board.MoveMaker(), "Black moves after three plies")
	require.Equal(t, game.Knight, board.Piece(game.Square("f3")).Kind(), "The knight landed on f3")

	board, err = Replay(game.StandardBoard(), []string{"e2e4", "e7e5", "e1e3"})
	require.ErrorIs(t, err, ErrRejectedMove, "The king cannot jump")
	require.ErrorContains(t, err, "move 3", "The error names the failing move")
	require.Equal(t, game.White, board.MoveMaker(), "The board before the failure is returned")
}
