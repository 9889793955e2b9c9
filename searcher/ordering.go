package searcher

import (
	"chess/game"

	"golang.org/x/exp/slices"
)

// Candidate pairs a move with the transition it produces, so ordering and search share
// one execution per move.
type Candidate struct {
	Move       game.Move
	Transition game.MoveTransition
}

func (c Candidate) givesCheck() bool {
	return c.Transition.Status().IsDone() && c.Transition.ToBoard().CurrentPlayer().IsInCheck()
}

// Ordering compares two candidates like slices.SortStableFunc expects.
type Ordering func(a, b Candidate) int

// SmartOrdering puts checks first, then captures, then castles, then moves of more
// valuable pieces.
func SmartOrdering(a, b Candidate) int {
	if c := trueFirst(a.givesCheck(), b.givesCheck()); c != 0 {
		return c
	}
	if c := trueFirst(a.Move.IsAttack(), b.Move.IsAttack()); c != 0 {
		return c
	}
	if c := trueFirst(a.Move.IsCastle(), b.Move.IsCastle()); c != 0 {
		return c
	}
	return b.Move.MovedPiece().Value() - a.Move.MovedPiece().Value()
}

func trueFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	}
	return 1
}

// candidates plays every legal move of the side to move and orders the results. Generation
// order breaks ties.
func candidates(board *game.Board, ordering Ordering) []Candidate {
	player := board.CurrentPlayer()
	moves := player.LegalMoves()
	result := make([]Candidate, 0, len(moves))
	for _, move := range moves {
		result = append(result, Candidate{Move: move, Transition: player.MakeMove(move)})
	}
	if ordering != nil {
		slices.SortStableFunc(result, ordering)
	}
	return result
}
