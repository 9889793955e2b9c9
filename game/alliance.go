package game

// Alliance identifies one of the two sides.
type Alliance uint8

const (
	White Alliance = iota
	Black
)

func (a Alliance) IsWhite() bool {
	return a == White
}

func (a Alliance) IsBlack() bool {
	return a == Black
}

func (a Alliance) Opposite() Alliance {
	if a == White {
		return Black
	}
	return White
}

// Direction is the square delta a pawn of this alliance advances by, in units of one rank.
// Square 0 is a8, so white moves towards lower indices.
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

func (a Alliance) OppositeDirection() int {
	return -a.Direction()
}

// IsPawnPromotionSquare reports whether a pawn of this alliance promotes on square.
func (a Alliance) IsPawnPromotionSquare(square int) bool {
	if a == White {
		return rowOf(square) == 0
	}
	return rowOf(square) == 7
}

func (a Alliance) String() string {
	if a == White {
		return "White"
	}
	return "Black"
}
