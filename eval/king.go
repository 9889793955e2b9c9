package eval

import (
	"chess/game"
)

// KingDistance is the enemy piece closest to a king and its king-step distance.
type KingDistance struct {
	Enemy    *game.Piece
	Distance int
}

// KingTropism finds the enemy piece nearest to the player's king. The enemy king is not a
// threat and is skipped; on ties the first piece in board order wins. ok is false when the
// opponent has nothing but its king.
func KingTropism(player *game.Player) (KingDistance, bool) {
	king := player.King()
	var nearest KingDistance
	found := false
	for _, piece := range player.Opponent().ActivePieces() {
		if piece.Kind() == game.King {
			continue
		}
		distance := game.Distance(king.Square(), piece.Square())
		if !found || distance < nearest.Distance {
			nearest = KingDistance{Enemy: piece, Distance: distance}
			found = true
		}
	}
	return nearest, found
}

// KingSafety weighs the nearest enemy piece by value and distance: a close, valuable
// attacker lowers the score.
func KingSafety(player *game.Player) int {
	nearest, ok := KingTropism(player)
	if !ok {
		return 0
	}
	return nearest.Enemy.Value() / 100 * nearest.Distance
}
