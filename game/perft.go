package game

// Perft counts the leaf positions reachable from board in exactly depth plies of playable
// moves by the side to move.
func Perft(board *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	player := board.CurrentPlayer()
	var nodes int64
	for _, move := range player.LegalMoves() {
		transition := player.play(move)
		if !transition.Status().IsDone() {
			continue
		}
		nodes += Perft(transition.ToBoard(), depth-1)
	}
	return nodes
}
