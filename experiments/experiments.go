package experiments

import (
	"fmt"
	"time"

	"chess/engine"
	"chess/eval"
	"chess/experiments/metrics"
	"chess/game"
	"chess/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames = 4  // Per match up
	MaxTurns = 80 // Plies per game
)

const (
	MiniMax   = "minimax"
	AlphaBeta = "alphabeta"
	Random    = "random"
)

var baseline = metrics.StrategyConfig{ID: 0, Strategy: Random, Seed: 1}

var searchConfigs = []metrics.StrategyConfig{
	{ID: 1, Strategy: AlphaBeta, Depth: 2},
	{ID: 2, Strategy: AlphaBeta, Depth: 3},
	{ID: 3, Strategy: AlphaBeta, Depth: 3, Quiescence: true},
	{ID: 4, Strategy: AlphaBeta, Depth: 3, RookStructure: true},
}

// NewStrategy builds the searcher a config describes. It panics on an unknown strategy.
func NewStrategy(config metrics.StrategyConfig) searcher.Strategy {
	if config.Strategy == Random {
		return searcher.NewRandom(config.Seed)
	}

	evalOptions := []eval.Option{}
	if config.RookStructure {
		evalOptions = append(evalOptions, eval.WithRookStructure())
	}
	options := []searcher.Option{searcher.WithEvaluator(eval.NewStandard(evalOptions...))}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Quiescence {
		options = append(options, searcher.WithQuiescence())
	}

	switch config.Strategy {
	case MiniMax:
		return searcher.NewMiniMax(options...)
	case AlphaBeta:
		return searcher.NewAlphaBeta(options...)
	}
	panic(fmt.Sprintf("unknown strategy %q", config.Strategy))
}

// RunStrengthExperiment pairs every search config against the random baseline.
func RunStrengthExperiment(dir string) error {
	matchUps := [][]metrics.StrategyConfig{}
	for _, config := range searchConfigs {
		matchUps = append(matchUps, []metrics.StrategyConfig{config, baseline})
	}
	_, err := runExperiment(dir, "strength", append(searchConfigs, baseline), matchUps, NumGames)
	return err
}

// RunDepthExperiment pairs the shallowest alpha-beta searcher against the deeper ones.
func RunDepthExperiment(dir string) error {
	shallow := searchConfigs[0]
	matchUps := [][]metrics.StrategyConfig{}
	for _, config := range searchConfigs[1:] {
		matchUps = append(matchUps, []metrics.StrategyConfig{config, shallow})
	}
	_, err := runExperiment(dir, "depth", searchConfigs, matchUps, NumGames)
	return err
}

// runExperiment plays games for each matchup, alternating colours between games, and stores
// configs, game records, move records and a summary.
func runExperiment(dir, name string, configs []metrics.StrategyConfig, matchUps [][]metrics.StrategyConfig, numGames int) (metrics.Summary, error) {
	summary := metrics.Summary{Name: name, Start: time.Now()}

	// Store experiment metadata
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteStrategyConfigs(configs)
	if err != nil {
		return summary, fmt.Errorf("failed to store strategy configs: %w", err)
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between %+v and %+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			white, black := config1, config2
			if i%2 == 1 {
				white, black = config2, config1
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, numGames)

			result, err := runGame(white, black)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         result.ID.String(),
				White:      white.ID,
				Black:      black.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       result.ID.String(),
					MoveMetric: mm,
				})
			}
			summary.Matchups = tally(summary.Matchups, white.ID, black.ID, result)

			log.Info().Msgf("completed game %d with winner: %q (%s)", i+1, result.Winner, result.Reason)
		}
		log.Info().Msg("completed matchup")
	}

	log.Info().Msgf("completed %s experiment", name)
	summary.End = time.Now()

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return summary, fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return summary, nil
}

// runGame plays a single game between fresh searchers built from the configs
func runGame(white, black metrics.StrategyConfig) (engine.Result, error) {
	e := engine.LocalEngine(game.StandardBoard(), NewStrategy(white), NewStrategy(black), engine.WithMaxTurns(MaxTurns))
	return e.Run()
}

// tally adds a game result to the summary of the white/black pairing.
func tally(matchups []metrics.MatchupSummary, white, black int, result engine.Result) []metrics.MatchupSummary {
	i := 0
	for ; i < len(matchups); i++ {
		if matchups[i].White == white && matchups[i].Black == black {
			break
		}
	}
	if i == len(matchups) {
		matchups = append(matchups, metrics.MatchupSummary{White: white, Black: black})
	}

	m := &matchups[i]
	m.Games++
	m.Moves += len(result.Moves)
	switch result.Winner {
	case "":
		m.Draws++
	case game.White.String():
		m.WhiteWins++
	default:
		m.BlackWins++
	}
	return matchups
}
