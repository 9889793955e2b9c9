package eval

import "chess/game"

const (
	openFileRookBonus     = 45
	semiOpenFileRookBonus = 20
	connectedRookBonus    = 20
)

// RookStructure rewards rooks alone on their file (open), sharing it with one other
// piece (semi-open), or sharing a rank or file with another friendly rook (connected).
func RookStructure(player *game.Player) int {
	rooks := []*game.Piece{}
	for _, piece := range player.ActivePieces() {
		if piece.Kind() == game.Rook {
			rooks = append(rooks, piece)
		}
	}
	if len(rooks) == 0 {
		return 0
	}

	var piecesOnFile [game.NumSquaresPerRow]int
	for _, pieces := range [][]*game.Piece{player.ActivePieces(), player.Opponent().ActivePieces()} {
		for _, piece := range pieces {
			piecesOnFile[piece.Square()%game.NumSquaresPerRow]++
		}
	}

	bonus := 0
	for _, rook := range rooks {
		switch piecesOnFile[rook.Square()%game.NumSquaresPerRow] {
		case 1:
			bonus += openFileRookBonus
		case 2:
			bonus += semiOpenFileRookBonus
		}
		for _, other := range rooks {
			if other != rook && connected(rook, other) {
				bonus += connectedRookBonus
				break
			}
		}
	}
	return bonus
}

func connected(rook, other *game.Piece) bool {
	sameRank := rook.Square()/game.NumSquaresPerRow == other.Square()/game.NumSquaresPerRow
	sameFile := rook.Square()%game.NumSquaresPerRow == other.Square()%game.NumSquaresPerRow
	return sameRank || sameFile
}
