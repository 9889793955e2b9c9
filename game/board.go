package game

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// StateHash identifies a position: placement, side to move, en-passant pawn and castled flags.
type StateHash uint64

// Board is an immutable position snapshot. Every move produces a new Board.
type Board struct {
	squares       [NumSquares]*Piece
	whitePieces   []*Piece
	blackPieces   []*Piece
	whitePlayer   *Player
	blackPlayer   *Player
	moveMaker     Alliance
	enPassantPawn *Piece
	transition    Move
	castled       [2]bool
}

// Builder assembles a Board from a custom layout.
type Builder struct {
	squares       [NumSquares]*Piece
	moveMaker     Alliance
	enPassantPawn *Piece
	transition    Move
	castled       [2]bool
}

func NewBuilder() *Builder {
	return &Builder{transition: NullMove()}
}

// SetPiece places piece on its square, replacing any previous occupant.
func (b *Builder) SetPiece(piece Piece) *Builder {
	if !IsValidSquare(piece.square) {
		panic("piece placed on invalid square")
	}
	return b.setPiece(&piece)
}

func (b *Builder) setPiece(piece *Piece) *Builder {
	b.squares[piece.square] = piece
	return b
}

func (b *Builder) SetMoveMaker(alliance Alliance) *Builder {
	b.moveMaker = alliance
	return b
}

// SetEnPassantPawn marks the pawn that has just jumped and can be captured en passant.
func (b *Builder) SetEnPassantPawn(piece Piece) *Builder {
	b.enPassantPawn = &piece
	return b
}

// SetCastled records that alliance has already castled.
func (b *Builder) SetCastled(alliance Alliance, castled bool) *Builder {
	b.castled[alliance] = castled
	return b
}

// Build creates the board and derives both players. It panics if a side does not have
// exactly one king.
func (b *Builder) Build() *Board {
	board := &Board{
		squares:    b.squares,
		moveMaker:  b.moveMaker,
		transition: b.transition,
		castled:    b.castled,
	}
	for _, piece := range board.squares {
		if piece == nil {
			continue
		}
		if piece.alliance == White {
			board.whitePieces = append(board.whitePieces, piece)
		} else {
			board.blackPieces = append(board.blackPieces, piece)
		}
	}
	if b.enPassantPawn != nil {
		// Resolve to the placed instance so identity matches the square.
		if placed := board.squares[b.enPassantPawn.square]; placed.Equal(b.enPassantPawn) {
			board.enPassantPawn = placed
		}
	}

	whiteStandard := board.standardMoves(board.whitePieces)
	blackStandard := board.standardMoves(board.blackPieces)
	board.whitePlayer = newPlayer(board, White, whiteStandard, blackStandard)
	board.blackPlayer = newPlayer(board, Black, blackStandard, whiteStandard)
	return board
}

func (board *Board) standardMoves(pieces []*Piece) []Move {
	moves := []Move{}
	for _, piece := range pieces {
		moves = append(moves, generateMoves(board, piece)...)
	}
	return moves
}

var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardBoard is the initial position with white to move.
func StandardBoard() *Board {
	builder := NewBuilder()
	for column, kind := range backRank {
		builder.SetPiece(NewPiece(kind, Black, column, true))
		builder.SetPiece(NewPiece(Pawn, Black, 8+column, true))
		builder.SetPiece(NewPiece(Pawn, White, 48+column, true))
		builder.SetPiece(NewPiece(kind, White, 56+column, true))
	}
	builder.SetMoveMaker(White)
	return builder.Build()
}

// Piece returns the piece on square, or nil if it is empty.
func (board *Board) Piece(square int) *Piece {
	return board.squares[square]
}

func (board *Board) WhitePieces() []*Piece {
	return board.whitePieces
}

func (board *Board) BlackPieces() []*Piece {
	return board.blackPieces
}

func (board *Board) ActivePieces(alliance Alliance) []*Piece {
	if alliance == White {
		return board.whitePieces
	}
	return board.blackPieces
}

// AllPieces lists white pieces then black pieces.
func (board *Board) AllPieces() []*Piece {
	pieces := make([]*Piece, 0, len(board.whitePieces)+len(board.blackPieces))
	pieces = append(pieces, board.whitePieces...)
	return append(pieces, board.blackPieces...)
}

func (board *Board) WhitePlayer() *Player {
	return board.whitePlayer
}

func (board *Board) BlackPlayer() *Player {
	return board.blackPlayer
}

func (board *Board) Player(alliance Alliance) *Player {
	if alliance == White {
		return board.whitePlayer
	}
	return board.blackPlayer
}

// CurrentPlayer is the side to move.
func (board *Board) CurrentPlayer() *Player {
	return board.Player(board.moveMaker)
}

func (board *Board) MoveMaker() Alliance {
	return board.moveMaker
}

// EnPassantPawn is the pawn that jumped on the previous ply, or nil.
func (board *Board) EnPassantPawn() *Piece {
	return board.enPassantPawn
}

// TransitionMove is the move that produced this board, or the null move.
func (board *Board) TransitionMove() Move {
	return board.transition
}

// AllLegalMoves lists white's legal moves then black's.
func (board *Board) AllLegalMoves() []Move {
	white, black := board.whitePlayer.LegalMoves(), board.blackPlayer.LegalMoves()
	moves := make([]Move, 0, len(white)+len(black))
	moves = append(moves, white...)
	return append(moves, black...)
}

func (board *Board) Hash() StateHash {
	h := fnv.New64a()
	buf := make([]byte, 0, NumSquares*3+4)
	for _, piece := range board.squares {
		if piece == nil {
			buf = append(buf, 0, 0, 0)
			continue
		}
		first := byte(0)
		if piece.firstMove {
			first = 1
		}
		buf = append(buf, byte(piece.kind)+1, byte(piece.alliance), first)
	}
	buf = append(buf, byte(board.moveMaker))
	enPassant := byte(0xff)
	if board.enPassantPawn != nil {
		enPassant = byte(board.enPassantPawn.square)
	}
	buf = append(buf, enPassant)
	for _, castled := range board.castled {
		if castled {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	h.Write(buf)
	return StateHash(binary.BigEndian.Uint64(h.Sum(nil)))
}

func (board *Board) String() string {
	var sb strings.Builder
	for square, piece := range board.squares {
		if piece == nil {
			sb.WriteString("-")
		} else {
			sb.WriteString(piece.Symbol())
		}
		if (square+1)%NumSquaresPerRow == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString("  ")
		}
	}
	return sb.String()
}
