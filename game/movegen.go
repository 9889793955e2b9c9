package game

// generator produces the board-local moves of one piece, ignoring self-check.
type generator func(board *Board, piece *Piece) []Move

var generators = [...]generator{
	Pawn:   pawnMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Rook:   rookMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}

var (
	knightOffsets  = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets    = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopVectors  = []int{-9, -7, 7, 9}
	rookVectors    = []int{-8, -1, 1, 8}
	queenVectors   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	pawnOffsets    = []int{8, 16, 7, 9}
	promotionKinds = []Kind{Queen, Rook, Bishop, Knight}
)

// generateMoves dispatches on the piece kind.
func generateMoves(board *Board, piece *Piece) []Move {
	return generators[piece.kind](board, piece)
}

func knightExcluded(square, offset int) bool {
	switch {
	case isFirstColumn(square) && (offset == -17 || offset == -10 || offset == 6 || offset == 15):
		return true
	case isSecondColumn(square) && (offset == -10 || offset == 6):
		return true
	case isSeventhColumn(square) && (offset == -6 || offset == 10):
		return true
	case isEighthColumn(square) && (offset == -15 || offset == -6 || offset == 10 || offset == 17):
		return true
	}
	return false
}

func kingExcluded(square, offset int) bool {
	if isFirstColumn(square) && (offset == -9 || offset == -1 || offset == 7) {
		return true
	}
	return isEighthColumn(square) && (offset == -7 || offset == 1 || offset == 9)
}

// slidingExcluded stops a ray before it steps off the a- or h-file.
func slidingExcluded(square, vector int) bool {
	if isFirstColumn(square) && (vector == -9 || vector == -1 || vector == 7) {
		return true
	}
	return isEighthColumn(square) && (vector == -7 || vector == 1 || vector == 9)
}

func stepMoves(board *Board, piece *Piece, offsets []int, excluded func(square, offset int) bool) []Move {
	moves := []Move{}
	for _, offset := range offsets {
		if excluded(piece.square, offset) {
			continue
		}
		destination := piece.square + offset
		if !IsValidSquare(destination) {
			continue
		}
		occupant := board.Piece(destination)
		if occupant == nil {
			moves = append(moves, newMajorMove(board, piece, destination))
		} else if occupant.alliance != piece.alliance {
			moves = append(moves, newAttackMove(board, piece, destination, occupant))
		}
	}
	return moves
}

func slidingMoves(board *Board, piece *Piece, vectors []int) []Move {
	moves := []Move{}
	for _, vector := range vectors {
		square := piece.square
		for IsValidSquare(square) {
			if slidingExcluded(square, vector) {
				break
			}
			square += vector
			if !IsValidSquare(square) {
				break
			}
			occupant := board.Piece(square)
			if occupant == nil {
				moves = append(moves, newMajorMove(board, piece, square))
				continue
			}
			if occupant.alliance != piece.alliance {
				moves = append(moves, newAttackMove(board, piece, square, occupant))
			}
			break
		}
	}
	return moves
}

func knightMoves(board *Board, piece *Piece) []Move {
	return stepMoves(board, piece, knightOffsets, knightExcluded)
}

func kingMoves(board *Board, piece *Piece) []Move {
	return stepMoves(board, piece, kingOffsets, kingExcluded)
}

func bishopMoves(board *Board, piece *Piece) []Move {
	return slidingMoves(board, piece, bishopVectors)
}

func rookMoves(board *Board, piece *Piece) []Move {
	return slidingMoves(board, piece, rookVectors)
}

func queenMoves(board *Board, piece *Piece) []Move {
	return slidingMoves(board, piece, queenVectors)
}

func promotions(base Move) []Move {
	moves := make([]Move, 0, len(promotionKinds))
	for _, kind := range promotionKinds {
		moves = append(moves, newPawnPromotion(base, kind))
	}
	return moves
}

func pawnMoves(board *Board, piece *Piece) []Move {
	moves := []Move{}
	alliance := piece.alliance
	for _, offset := range pawnOffsets {
		destination := piece.square + alliance.Direction()*offset
		if !IsValidSquare(destination) {
			continue
		}
		switch offset {
		case 8:
			if board.Piece(destination) != nil {
				continue
			}
			push := newPawnMove(board, piece, destination)
			if alliance.IsPawnPromotionSquare(destination) {
				moves = append(moves, promotions(push)...)
			} else {
				moves = append(moves, push)
			}
		case 16:
			onStartRow := (alliance.IsBlack() && isSecondRow(piece.square)) ||
				(alliance.IsWhite() && isSeventhRow(piece.square))
			if !piece.firstMove || !onStartRow {
				continue
			}
			behind := piece.square + alliance.Direction()*8
			if board.Piece(destination) == nil && board.Piece(behind) == nil {
				moves = append(moves, newPawnJump(board, piece, destination))
			}
		case 7:
			if (isEighthColumn(piece.square) && alliance.IsWhite()) ||
				(isFirstColumn(piece.square) && alliance.IsBlack()) {
				continue
			}
			moves = append(moves, pawnCaptures(board, piece, destination, piece.square+alliance.OppositeDirection())...)
		case 9:
			if (isFirstColumn(piece.square) && alliance.IsWhite()) ||
				(isEighthColumn(piece.square) && alliance.IsBlack()) {
				continue
			}
			moves = append(moves, pawnCaptures(board, piece, destination, piece.square-alliance.OppositeDirection())...)
		}
	}
	return moves
}

// pawnCaptures handles one diagonal: a capture of an enemy on destination, or an
// en-passant capture of the board's en-passant pawn standing on besideSquare.
func pawnCaptures(board *Board, piece *Piece, destination, besideSquare int) []Move {
	occupant := board.Piece(destination)
	if occupant != nil {
		if occupant.alliance == piece.alliance {
			return nil
		}
		capture := newPawnAttackMove(board, piece, destination, occupant)
		if piece.alliance.IsPawnPromotionSquare(destination) {
			return promotions(capture)
		}
		return []Move{capture}
	}
	enPassant := board.EnPassantPawn()
	if enPassant != nil && enPassant.square == besideSquare && enPassant.alliance != piece.alliance {
		return []Move{newPawnEnPassantAttack(board, piece, destination, enPassant)}
	}
	return nil
}
