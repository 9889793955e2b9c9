package game

import (
	"fmt"
	"sync"
)

type castleRule struct {
	kind       MoveKind
	rookSquare int
	kingTo     int
	rookTo     int
	empty      []int // Squares strictly between king and rook
	safe       []int // Squares the king crosses or lands on
}

var kingHomes = [...]int{White: 60, Black: 4}

var castleRules = [...][]castleRule{
	White: {
		{kind: KingSideCastle, rookSquare: 63, kingTo: 62, rookTo: 61, empty: []int{61, 62}, safe: []int{61, 62}},
		{kind: QueenSideCastle, rookSquare: 56, kingTo: 58, rookTo: 59, empty: []int{57, 58, 59}, safe: []int{58, 59}},
	},
	Black: {
		{kind: KingSideCastle, rookSquare: 7, kingTo: 6, rookTo: 5, empty: []int{5, 6}, safe: []int{5, 6}},
		{kind: QueenSideCastle, rookSquare: 0, kingTo: 2, rookTo: 3, empty: []int{1, 2, 3}, safe: []int{2, 3}},
	},
}

// Player is one side's view of a board. It owns the legality rules: which moves exist,
// whether the king is in check, and whether a move may be played.
type Player struct {
	board         *Board
	alliance      Alliance
	king          *Piece
	legalMoves    []Move
	opponentMoves []Move
	inCheck       bool

	escapeOnce sync.Once
	hasEscape  bool
}

func newPlayer(board *Board, alliance Alliance, standardMoves, opponentMoves []Move) *Player {
	p := &Player{
		board:         board,
		alliance:      alliance,
		opponentMoves: opponentMoves,
	}
	p.king = p.establishKing()
	p.inCheck = isAttacked(p.king.square, opponentMoves)

	p.legalMoves = make([]Move, 0, len(standardMoves)+2)
	p.legalMoves = append(p.legalMoves, standardMoves...)
	p.legalMoves = append(p.legalMoves, p.castleMoves()...)
	return p
}

func (p *Player) establishKing() *Piece {
	var king *Piece
	for _, piece := range p.board.ActivePieces(p.alliance) {
		if piece.kind != King {
			continue
		}
		if king != nil {
			panic(fmt.Sprintf("%s has more than one king", p.alliance))
		}
		king = piece
	}
	if king == nil {
		panic(fmt.Sprintf("%s has no king", p.alliance))
	}
	return king
}

func isAttacked(square int, moves []Move) bool {
	for _, move := range moves {
		if move.to == square {
			return true
		}
	}
	return false
}

func (p *Player) castleMoves() []Move {
	king := p.king
	if p.inCheck || !king.firstMove || king.square != kingHomes[p.alliance] {
		return nil
	}
	if isKingPawnTrap(p.board, king, king.square+p.alliance.Direction()*NumSquaresPerRow) {
		return nil
	}
	moves := []Move{}
	for _, rule := range castleRules[p.alliance] {
		if !p.castleAvailable(rule) || !p.castlePathClear(rule) {
			continue
		}
		moves = append(moves, newCastleMove(rule.kind, p.board, king, rule.kingTo, p.board.Piece(rule.rookSquare), rule.rookTo))
	}
	return moves
}

func (p *Player) castlePathClear(rule castleRule) bool {
	for _, square := range rule.empty {
		if p.board.Piece(square) != nil {
			return false
		}
	}
	for _, square := range rule.safe {
		if isAttacked(square, p.opponentMoves) {
			return false
		}
	}
	return true
}

// castleAvailable checks the unmoved king and rook of rule, ignoring the path.
func (p *Player) castleAvailable(rule castleRule) bool {
	if !p.king.firstMove || p.king.square != kingHomes[p.alliance] {
		return false
	}
	rook := p.board.Piece(rule.rookSquare)
	return rook != nil && rook.kind == Rook && rook.alliance == p.alliance && rook.firstMove
}

func (p *Player) Alliance() Alliance {
	return p.alliance
}

func (p *Player) King() *Piece {
	return p.king
}

func (p *Player) ActivePieces() []*Piece {
	return p.board.ActivePieces(p.alliance)
}

// LegalMoves lists the standard moves followed by the castles. Moves that would leave the
// king attacked are still listed; MakeMove rejects them.
func (p *Player) LegalMoves() []Move {
	return p.legalMoves
}

func (p *Player) Opponent() *Player {
	return p.board.Player(p.alliance.Opposite())
}

func (p *Player) IsInCheck() bool {
	return p.inCheck
}

func (p *Player) IsInCheckMate() bool {
	return p.inCheck && !p.hasEscapeMoves()
}

func (p *Player) IsInStaleMate() bool {
	return !p.inCheck && !p.hasEscapeMoves()
}

func (p *Player) IsCastled() bool {
	return p.board.castled[p.alliance]
}

func (p *Player) IsKingSideCastleCapable() bool {
	return !p.IsCastled() && p.castleAvailable(castleRules[p.alliance][0])
}

func (p *Player) IsQueenSideCastleCapable() bool {
	return !p.IsCastled() && p.castleAvailable(castleRules[p.alliance][1])
}

// hasEscapeMoves reports whether any listed move can actually be played. Computed once per
// board and stops at the first playable move.
func (p *Player) hasEscapeMoves() bool {
	p.escapeOnce.Do(func() {
		for _, move := range p.legalMoves {
			if p.play(move).status.IsDone() {
				p.hasEscape = true
				return
			}
		}
	})
	return p.hasEscape
}

// MakeMove plays move if it is one of this player's legal moves and does not leave the
// king attacked. Otherwise the transition carries the unchanged board.
func (p *Player) MakeMove(move Move) MoveTransition {
	for _, legal := range p.legalMoves {
		if legal.Equal(move) {
			return p.play(legal)
		}
	}
	return MoveTransition{from: p.board, to: p.board, move: move, status: IllegalMove}
}

func (p *Player) play(move Move) MoveTransition {
	next := move.Execute()
	if next.Player(p.alliance).IsInCheck() {
		return MoveTransition{from: p.board, to: p.board, move: move, status: LeavesPlayerInCheck}
	}
	return MoveTransition{from: p.board, to: next, move: move, status: Done}
}

// UnMakeMove takes back move, which must be the move that produced this player's board and
// must have been played by this player. The restored board carries the en-passant pawn,
// castled flags and transition move of the board the move was generated on.
func (p *Player) UnMakeMove(move Move) MoveTransition {
	last := p.board.TransitionMove()
	if move.IsNull() || last.IsNull() || !last.Equal(move) || move.piece.alliance != p.alliance {
		return MoveTransition{from: p.board, to: p.board, move: move, status: IllegalMove}
	}
	move = last
	origin := move.board

	builder := NewBuilder()
	for _, piece := range p.board.AllPieces() {
		if piece.square == move.to && piece.alliance == p.alliance {
			continue
		}
		if move.IsCastle() && piece.square == move.rookTo {
			continue
		}
		builder.setPiece(piece)
	}
	builder.setPiece(move.piece)
	if move.captured != nil {
		builder.setPiece(move.captured)
	}
	if move.IsCastle() {
		builder.setPiece(move.rook)
	}
	builder.enPassantPawn = origin.enPassantPawn
	builder.castled = origin.castled
	builder.transition = origin.transition
	builder.SetMoveMaker(p.alliance)
	return MoveTransition{from: p.board, to: builder.Build(), move: move, status: Done}
}
