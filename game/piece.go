package game

import "fmt"

// Kind is the closed set of piece kinds.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindValues = [...]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
	King:   10000,
}

var kindNames = [...]string{
	Pawn:   "P",
	Knight: "N",
	Bishop: "B",
	Rook:   "R",
	Queen:  "Q",
	King:   "K",
}

// Value is the intrinsic material value of the kind.
func (k Kind) Value() int {
	return kindValues[k]
}

func (k Kind) String() string {
	return kindNames[k]
}

// Piece is an immutable piece placement. A moved piece is a new Piece on the successor board.
type Piece struct {
	kind      Kind
	alliance  Alliance
	square    int
	firstMove bool
}

// NewPiece creates a piece. Pieces placed by the standard layout start with firstMove set.
func NewPiece(kind Kind, alliance Alliance, square int, firstMove bool) Piece {
	return Piece{
		kind:      kind,
		alliance:  alliance,
		square:    square,
		firstMove: firstMove,
	}
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Alliance() Alliance {
	return p.alliance
}

func (p *Piece) Square() int {
	return p.square
}

// IsFirstMove reports whether the piece has not moved yet. Used by pawn jumps and castling.
func (p *Piece) IsFirstMove() bool {
	return p.firstMove
}

func (p *Piece) Value() int {
	return p.kind.Value()
}

// LocationBonus is the positional bonus for the piece on its current square.
func (p *Piece) LocationBonus() int {
	square := p.square
	if p.alliance == Black {
		square ^= 56 // Mirror ranks
	}
	return locationBonuses[p.kind][square]
}

// Equal compares pieces structurally. Two nil pieces are equal.
func (p *Piece) Equal(other *Piece) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.kind == other.kind &&
		p.alliance == other.alliance &&
		p.square == other.square &&
		p.firstMove == other.firstMove
}

// movedTo returns the piece relocated to square, no longer on its first move.
func (p *Piece) movedTo(square int) *Piece {
	return &Piece{kind: p.kind, alliance: p.alliance, square: square}
}

// Symbol is the piece letter, upper case for white and lower case for black.
func (p *Piece) Symbol() string {
	if p.alliance == Black {
		return string(kindNames[p.kind][0] + 'a' - 'A')
	}
	return kindNames[p.kind]
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s%s", p.Symbol(), SquareName(p.square))
}
