package game

import "fmt"

// MoveKind tags the variant of a Move.
type MoveKind uint8

const (
	NoMove MoveKind = iota
	MajorMove
	AttackMove
	PawnMove
	PawnAttackMove
	PawnJump
	PawnEnPassantAttack
	PawnPromotion
	KingSideCastle
	QueenSideCastle
)

var moveKindNames = [...]string{
	NoMove:              "null",
	MajorMove:           "major",
	AttackMove:          "attack",
	PawnMove:            "pawn",
	PawnAttackMove:      "pawn-attack",
	PawnJump:            "pawn-jump",
	PawnEnPassantAttack: "en-passant",
	PawnPromotion:       "promotion",
	KingSideCastle:      "king-side-castle",
	QueenSideCastle:     "queen-side-castle",
}

func (k MoveKind) String() string {
	return moveKindNames[k]
}

// Move is an immutable move bound to the board it was generated on.
type Move struct {
	kind      MoveKind
	board     *Board
	piece     *Piece
	to        int
	captured  *Piece
	promotion Kind
	rook      *Piece // Castles only
	rookTo    int
}

// NullMove is the sentinel for "no move available or found".
func NullMove() Move {
	return Move{kind: NoMove, to: -1, rookTo: -1}
}

func newMajorMove(board *Board, piece *Piece, to int) Move {
	return Move{kind: MajorMove, board: board, piece: piece, to: to, rookTo: -1}
}

func newAttackMove(board *Board, piece *Piece, to int, captured *Piece) Move {
	return Move{kind: AttackMove, board: board, piece: piece, to: to, captured: captured, rookTo: -1}
}

func newPawnMove(board *Board, piece *Piece, to int) Move {
	return Move{kind: PawnMove, board: board, piece: piece, to: to, rookTo: -1}
}

func newPawnAttackMove(board *Board, piece *Piece, to int, captured *Piece) Move {
	return Move{kind: PawnAttackMove, board: board, piece: piece, to: to, captured: captured, rookTo: -1}
}

func newPawnJump(board *Board, piece *Piece, to int) Move {
	return Move{kind: PawnJump, board: board, piece: piece, to: to, rookTo: -1}
}

func newPawnEnPassantAttack(board *Board, piece *Piece, to int, captured *Piece) Move {
	return Move{kind: PawnEnPassantAttack, board: board, piece: piece, to: to, captured: captured, rookTo: -1}
}

// newPawnPromotion wraps a pawn push or pawn capture onto the promotion rank.
func newPawnPromotion(base Move, promotion Kind) Move {
	base.kind = PawnPromotion
	base.promotion = promotion
	return base
}

func newCastleMove(kind MoveKind, board *Board, king *Piece, to int, rook *Piece, rookTo int) Move {
	return Move{kind: kind, board: board, piece: king, to: to, rook: rook, rookTo: rookTo}
}

func (m Move) Kind() MoveKind {
	return m.kind
}

// Board is the position the move was generated on.
func (m Move) Board() *Board {
	return m.board
}

func (m Move) MovedPiece() *Piece {
	return m.piece
}

func (m Move) From() int {
	if m.piece == nil {
		return -1
	}
	return m.piece.square
}

func (m Move) To() int {
	return m.to
}

// CapturedPiece is nil unless the move is a capture.
func (m Move) CapturedPiece() *Piece {
	return m.captured
}

func (m Move) IsNull() bool {
	return m.kind == NoMove
}

func (m Move) IsAttack() bool {
	return m.captured != nil
}

func (m Move) IsCastle() bool {
	return m.kind == KingSideCastle || m.kind == QueenSideCastle
}

func (m Move) IsPromotion() bool {
	return m.kind == PawnPromotion
}

// PromotionKind is meaningful only for promotions.
func (m Move) PromotionKind() Kind {
	return m.promotion
}

// CastleRook is the rook relocated by a castle, nil otherwise.
func (m Move) CastleRook() *Piece {
	return m.rook
}

// Equal compares moved piece and destination. Promotion kind keeps the four
// promotion variants of one pawn advance apart.
func (m Move) Equal(other Move) bool {
	if m.IsNull() || other.IsNull() {
		return m.IsNull() && other.IsNull()
	}
	return m.to == other.to &&
		m.piece.Equal(other.piece) &&
		m.IsPromotion() == other.IsPromotion() &&
		m.promotion == other.promotion
}

// Execute applies the move to its board and returns the successor board.
func (m Move) Execute() *Board {
	if m.IsNull() {
		panic("cannot execute the null move")
	}
	mover := m.piece.alliance
	builder := NewBuilder()
	for _, piece := range m.board.ActivePieces(mover) {
		if piece.Equal(m.piece) || (m.rook != nil && piece.Equal(m.rook)) {
			continue
		}
		builder.setPiece(piece)
	}
	for _, piece := range m.board.ActivePieces(mover.Opposite()) {
		if m.captured != nil && piece.Equal(m.captured) {
			continue
		}
		builder.setPiece(piece)
	}

	moved := m.piece.movedTo(m.to)
	if m.kind == PawnPromotion {
		moved = &Piece{kind: m.promotion, alliance: mover, square: m.to}
	}
	builder.setPiece(moved)

	builder.castled = m.board.castled
	if m.IsCastle() {
		builder.setPiece(m.rook.movedTo(m.rookTo))
		builder.castled[mover] = true
	}
	if m.kind == PawnJump {
		builder.enPassantPawn = moved
	}
	builder.SetMoveMaker(mover.Opposite())
	builder.transition = m
	return builder.Build()
}

func (m Move) String() string {
	switch m.kind {
	case NoMove:
		return "null"
	case KingSideCastle:
		return "O-O"
	case QueenSideCastle:
		return "O-O-O"
	}
	separator := "-"
	if m.IsAttack() {
		separator = "x"
	}
	notation := fmt.Sprintf("%s%s%s", SquareName(m.From()), separator, SquareName(m.to))
	if m.kind != PawnMove && m.kind != PawnAttackMove && m.kind != PawnJump &&
		m.kind != PawnEnPassantAttack && m.kind != PawnPromotion {
		notation = m.piece.kind.String() + notation
	}
	if m.kind == PawnPromotion {
		notation += "=" + m.promotion.String()
	}
	return notation
}

// CreateMove looks up the legal move from -> to on board, searching the white then the black
// player's moves. It returns the null move when nothing matches. A pawn reaching the last
// rank resolves to the queen promotion.
func CreateMove(board *Board, from, to int) Move {
	for _, move := range board.AllLegalMoves() {
		if move.From() == from && move.To() == to {
			return move
		}
	}
	return NullMove()
}

// CreatePromotion looks up the promotion from -> to with the given promotion kind.
func CreatePromotion(board *Board, from, to int, kind Kind) Move {
	for _, move := range board.AllLegalMoves() {
		if move.IsPromotion() && move.From() == from && move.To() == to && move.promotion == kind {
			return move
		}
	}
	return NullMove()
}
