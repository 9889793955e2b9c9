package eval

import (
	"math/bits"

	"chess/game"
)

const (
	isolatedPawnPenalty = -10
	doubledPawnPenalty  = -10
	passedPawnBonus     = 15
	supportedPawnBonus  = 5
)

// Bit i of a pawn set is square i.
var (
	fileMasks     [game.NumSquaresPerRow]uint64
	adjacentFiles [game.NumSquaresPerRow]uint64
	passedMasks   [2][game.NumSquares]uint64 // Indexed by alliance
	supportMasks  [2][game.NumSquares]uint64
)

func init() {
	for square := 0; square < game.NumSquares; square++ {
		fileMasks[square%game.NumSquaresPerRow] |= 1 << square
	}
	for file := 0; file < game.NumSquaresPerRow; file++ {
		if file > 0 {
			adjacentFiles[file] |= fileMasks[file-1]
		}
		if file < game.NumSquaresPerRow-1 {
			adjacentFiles[file] |= fileMasks[file+1]
		}
	}
	for square := 0; square < game.NumSquares; square++ {
		row, file := square/game.NumSquaresPerRow, square%game.NumSquaresPerRow
		span := fileMasks[file] | adjacentFiles[file]
		for other := 0; other < game.NumSquares; other++ {
			otherRow := other / game.NumSquaresPerRow
			if span&(1<<other) == 0 {
				continue
			}
			if otherRow < row {
				passedMasks[game.White][square] |= 1 << other
			}
			if otherRow > row {
				passedMasks[game.Black][square] |= 1 << other
			}
		}
		for _, alliance := range []game.Alliance{game.White, game.Black} {
			behind := row - alliance.Direction()
			if behind < 0 || behind >= game.NumSquaresPerRow {
				continue
			}
			for _, f := range []int{file - 1, file + 1} {
				if f >= 0 && f < game.NumSquaresPerRow {
					supportMasks[alliance][square] |= 1 << (behind*game.NumSquaresPerRow + f)
				}
			}
		}
	}
}

func pawnSet(pieces []*game.Piece) uint64 {
	var set uint64
	for _, piece := range pieces {
		if piece.Kind() == game.Pawn {
			set |= 1 << piece.Square()
		}
	}
	return set
}

// PawnStructure scores the player's pawns: isolated and doubled pawns are penalized,
// passed and supported pawns rewarded.
func PawnStructure(player *game.Player) int {
	own := pawnSet(player.ActivePieces())
	enemy := pawnSet(player.Opponent().ActivePieces())
	alliance := player.Alliance()

	score := 0
	for file := 0; file < game.NumSquaresPerRow; file++ {
		if count := bits.OnesCount64(own & fileMasks[file]); count > 1 {
			score += (count - 1) * doubledPawnPenalty
		}
	}
	for pawns := own; pawns != 0; pawns &= pawns - 1 {
		square := bits.TrailingZeros64(pawns)
		file := square % game.NumSquaresPerRow
		if own&adjacentFiles[file] == 0 {
			score += isolatedPawnPenalty
		}
		if enemy&passedMasks[alliance][square] == 0 {
			score += passedPawnBonus
		}
		if own&supportMasks[alliance][square] != 0 {
			score += supportedPawnBonus
		}
	}
	return score
}
