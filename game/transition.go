package game

// MoveStatus is the outcome of asking a player to make or unmake a move.
type MoveStatus uint8

const (
	Done MoveStatus = iota
	IllegalMove
	LeavesPlayerInCheck
)

func (s MoveStatus) IsDone() bool {
	return s == Done
}

func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "done"
	case IllegalMove:
		return "illegal move"
	case LeavesPlayerInCheck:
		return "leaves player in check"
	}
	return "unknown"
}

// MoveTransition records a move attempt. ToBoard equals FromBoard unless the status is Done.
type MoveTransition struct {
	from   *Board
	to     *Board
	move   Move
	status MoveStatus
}

func (t MoveTransition) FromBoard() *Board {
	return t.from
}

func (t MoveTransition) ToBoard() *Board {
	return t.to
}

func (t MoveTransition) Move() Move {
	return t.move
}

func (t MoveTransition) Status() MoveStatus {
	return t.status
}
