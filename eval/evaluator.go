package eval

import (
	"fmt"
	"strings"

	"chess/game"
)

const (
	checkMateBonus      = 10000
	checkBonus          = 20
	castleBonus         = 75
	mobilityMultiplier  = 5
	attackMultiplier    = 1
	twoBishopsBonus     = 25
	mobilityRatioFactor = 10
)

// Evaluator scores a board from white's point of view: positive favours white.
// depth is the remaining search depth, used to prefer faster mates.
type Evaluator interface {
	Evaluate(board *game.Board, depth int) int
}

// Func adapts a plain function to Evaluator.
type Func func(board *game.Board, depth int) int

func (f Func) Evaluate(board *game.Board, depth int) int {
	return f(board, depth)
}

// Standard is the composite evaluator: mobility, king threats, attacks, material with
// location bonuses, castling, pawn structure and king tropism. It holds no per-call state
// and can be shared.
type Standard struct {
	rookStructure bool
}

type Option func(*Standard)

// WithRookStructure adds the rook file and connection bonuses to each side's score.
func WithRookStructure() Option {
	return func(s *Standard) {
		s.rookStructure = true
	}
}

func NewStandard(opts ...Option) *Standard {
	s := &Standard{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Standard) Evaluate(board *game.Board, depth int) int {
	return s.score(board.WhitePlayer(), depth) - s.score(board.BlackPlayer(), depth)
}

func (s *Standard) score(player *game.Player, depth int) int {
	score := mobility(player) +
		kingThreats(player, depth) +
		attacks(player) +
		castle(player) +
		pieceEvaluations(player) +
		PawnStructure(player) +
		KingSafety(player)
	if s.rookStructure {
		score += RookStructure(player)
	}
	return score
}

// Details breaks the evaluation down per term and side.
func (s *Standard) Details(board *game.Board, depth int) string {
	var sb strings.Builder
	for i, player := range []*game.Player{board.WhitePlayer(), board.BlackPlayer()} {
		if i > 0 {
			sb.WriteString("---------------------\n")
		}
		side := player.Alliance().String()
		fmt.Fprintf(&sb, "%s Mobility : %d\n", side, mobility(player))
		fmt.Fprintf(&sb, "%s kingThreats : %d\n", side, kingThreats(player, depth))
		fmt.Fprintf(&sb, "%s attacks : %d\n", side, attacks(player))
		fmt.Fprintf(&sb, "%s castle : %d\n", side, castle(player))
		fmt.Fprintf(&sb, "%s pieceEval : %d\n", side, pieceEvaluations(player))
		fmt.Fprintf(&sb, "%s pawnStructure : %d\n", side, PawnStructure(player))
		fmt.Fprintf(&sb, "%s kingSafety : %d\n", side, KingSafety(player))
		if s.rookStructure {
			fmt.Fprintf(&sb, "%s rookStructure : %d\n", side, RookStructure(player))
		}
	}
	fmt.Fprintf(&sb, "\nFinal Score = %d", s.Evaluate(board, depth))
	return sb.String()
}

func mobility(player *game.Player) int {
	return mobilityMultiplier * mobilityRatio(player)
}

// mobilityRatio compares move counts rather than using the raw count. A side facing an
// opponent without moves gets its own count scaled as if the opponent had one.
func mobilityRatio(player *game.Player) int {
	own := len(player.LegalMoves()) * mobilityRatioFactor
	opponent := len(player.Opponent().LegalMoves())
	if opponent == 0 {
		return own
	}
	return own / opponent
}

func kingThreats(player *game.Player, depth int) int {
	if player.Opponent().IsInCheckMate() {
		return checkMateBonus * depthBonus(depth)
	}
	if player.Opponent().IsInCheck() {
		return checkBonus
	}
	return 0
}

// depthBonus favours mates found with more search depth left, i.e. closer to the root.
func depthBonus(depth int) int {
	if depth == 0 {
		return 1
	}
	return 100 * depth
}

// attacks counts captures that do not trade down.
func attacks(player *game.Player) int {
	count := 0
	for _, move := range player.LegalMoves() {
		if move.IsAttack() && move.MovedPiece().Value() <= move.CapturedPiece().Value() {
			count++
		}
	}
	return count * attackMultiplier
}

func castle(player *game.Player) int {
	if player.IsCastled() {
		return castleBonus
	}
	return 0
}

func pieceEvaluations(player *game.Player) int {
	score, bishops := 0, 0
	for _, piece := range player.ActivePieces() {
		score += piece.Value() + piece.LocationBonus()
		if piece.Kind() == game.Bishop {
			bishops++
		}
	}
	if bishops == 2 {
		score += twoBishopsBonus
	}
	return score
}
