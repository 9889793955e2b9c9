package game

import (
	"sort"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

// TestAgainstOracle replays games move by move and compares every position's playable moves
// with an independent move generator.
func TestAgainstOracle(t *testing.T) {
	games := map[string][]string{
		"italian with castles": {
			"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "f8c5", "d2d3", "e8g8",
			"c1g5", "h7h6", "g5f6", "d8f6", "b1c3", "d7d6", "c3d5", "f6d8", "c2c3", "a7a6",
		},
		"en passant": {"e2e4", "a7a6", "e4e5", "d7d5", "e5d6", "c7d6"},
		"queen side castles": {
			"d2d4", "d7d5", "b1c3", "b8c6", "c1f4", "c8f5", "d1d2", "d8d7", "e1c1", "e8c8",
		},
		"early checks": {"e2e4", "f7f6", "d1h5", "g7g6", "h5g6", "h7g6"},
	}

	for name, moves := range games {
		t.Run(name, func(t *testing.T) {
			board := StandardBoard()
			oracle := chess.NewGame()
			for _, notation := range moves {
				require.Equal(t, oracleMoves(oracle), sorted(playable(board)),
					"Playable moves should match before %s on\n%s", notation, board)

				board = play(t, board, notation)
				require.NoError(t, oracle.Move(oracleMove(t, oracle, notation)), "Oracle should accept %s", notation)
			}
			require.Equal(t, oracleMoves(oracle), sorted(playable(board)), "Playable moves should match at the end")
		})
	}
}

func oracleMoves(game *chess.Game) []string {
	moves := []string{}
	for _, move := range game.ValidMoves() {
		moves = append(moves, move.String())
	}
	return sorted(moves)
}

func oracleMove(t *testing.T, game *chess.Game, notation string) *chess.Move {
	t.Helper()
	for _, move := range game.ValidMoves() {
		if move.String() == notation {
			return move
		}
	}
	require.Failf(t, "unknown oracle move", "%s is not valid for the oracle", notation)
	return nil
}

func sorted(moves []string) []string {
	sort.Strings(moves)
	return moves
}
