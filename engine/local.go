package engine

import (
	"fmt"
	"time"

	"chess/experiments/metrics"
	"chess/game"
	"chess/meta"
	"chess/searcher"
	"chess/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Game plays two strategies against each other on a local board.
type Game struct {
	board      *game.Board
	strategies [2]searcher.Strategy // Indexed by alliance
	maxTurns   int
}

type Option func(g *Game)

// WithMaxTurns ends the game as a draw after turns plies.
func WithMaxTurns(turns int) Option {
	return func(g *Game) {
		if turns < 1 {
			panic("max turns must be at least 1")
		}
		g.maxTurns = turns
	}
}

func LocalEngine(board *game.Board, white, black searcher.Strategy, options ...Option) *Game {
	if board == nil {
		panic("need a starting board")
	}
	if white == nil || black == nil {
		panic("need a strategy for both sides")
	}

	g := &Game{
		board:    board,
		maxTurns: meta.MAX_TURNS,
	}
	g.strategies[game.White] = white
	g.strategies[game.Black] = black
	for _, option := range options {
		option(g)
	}
	return g
}

// Run executes the game loop until a side is mated, the position repeats or the turn limit
// is reached. A strategy proposing an unplayable move aborts the game with ErrRejectedMove.
func (g *Game) Run() (Result, error) {
	result := Result{ID: uuid.New()}
	board := g.board
	seen := utils.Tally[game.StateHash]{}
	seen.Add(board.Hash())

	startTime := time.Now()
	result.GameMetric = metrics.GameMetric{
		StartingPlayer: board.MoveMaker().String(),
		StartTime:      startTime,
	}
	log.Info().Msgf("game %s: %s is starting", result.ID, board.MoveMaker())

	for {
		player := board.CurrentPlayer()
		if player.IsInCheckMate() {
			result.Winner = player.Opponent().Alliance().String()
			result.Reason = Checkmate
			break
		}
		if player.IsInStaleMate() {
			result.Reason = Stalemate
			break
		}
		if len(result.Moves) >= g.maxTurns {
			result.Reason = TurnLimit
			break
		}

		strategy := g.strategies[player.Alliance()]
		move := strategy.Execute(board)
		transition := player.MakeMove(move)
		if !transition.Status().IsDone() {
			log.Warn().Msgf("game %s: %s proposed %s (%s)", result.ID, strategy, move, transition.Status())
			result.Final = board
			return result, fmt.Errorf("%s playing %s on turn %d: %w", strategy, move, len(result.Moves)+1, ErrRejectedMove)
		}

		result.Moves = append(result.Moves, move)
		result.MoveMetrics = append(result.MoveMetrics, metrics.MoveMetric{
			Step:         len(result.Moves),
			Player:       player.Alliance().String(),
			Move:         Notation(move),
			SearchMetric: strategy.Metrics(),
		})
		board = transition.ToBoard()

		if seen.Add(board.Hash()) >= meta.REPETITIONS {
			result.Reason = Repetition
			break
		}
	}

	result.Final = board
	result.GameMetric.Winner = result.Winner
	result.GameMetric.Reason = string(result.Reason)
	result.GameMetric.EndTime = time.Now()
	result.GameMetric.Duration = result.GameMetric.EndTime.Sub(startTime)
	result.GameMetric.TotalMoves = len(result.Moves)

	if result.IsDraw() {
		log.Info().Msgf("game %s: draw by %s after %d moves", result.ID, result.Reason, len(result.Moves))
	} else {
		log.Info().Msgf("game %s: %s wins by %s after %d moves", result.ID, result.Winner, result.Reason, len(result.Moves))
	}
	return result, nil
}
