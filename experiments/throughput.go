package experiments

import (
	"fmt"
	"strings"

	"chess/engine"
	"chess/experiments/metrics"
	"chess/game"

	"github.com/rs/zerolog/log"
)

// Positions searched by the throughput experiment, as move lists from the standard board.
var positions = map[string][]string{
	"start":    {},
	"open":     {"e2e4", "e7e5", "g1f3", "b8c6"},
	"volatile": {"e2e4", "d7d5", "e4d5", "d8d5"},
	"castled":  {"e2e4", "e7e5", "g1f3", "g8f6", "f1c4", "f8c5", "e1g1", "e8g8"},
}

var positionOrder = []string{"start", "open", "volatile", "castled"}

// RunThroughputExperiment searches fixed positions with minimax and alpha-beta at the same
// depth and records boards evaluated, cutoffs and time per search.
func RunThroughputExperiment(dir string, depth int) error {
	configs := []metrics.StrategyConfig{
		{ID: 1, Strategy: MiniMax, Depth: depth},
		{ID: 2, Strategy: AlphaBeta, Depth: depth},
		{ID: 3, Strategy: AlphaBeta, Depth: depth, Quiescence: true},
	}

	writer, err := metrics.NewWriter(dir, "throughput")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteStrategyConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store strategy configs: %w", err)
	}

	records, err := searchPositions(configs)
	if err != nil {
		return err
	}

	err = writer.WriteSearchRecords(records)
	if err != nil {
		return fmt.Errorf("failed to write search records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

func searchPositions(configs []metrics.StrategyConfig) ([]metrics.SearchRecord, error) {
	log.Info().Msg("starting throughput experiment...")
	records := []metrics.SearchRecord{}
	for _, name := range positionOrder {
		board, err := engine.Replay(game.StandardBoard(), positions[name])
		if err != nil {
			return nil, fmt.Errorf("position %s (%s): %w", name, strings.Join(positions[name], " "), err)
		}
		for _, config := range configs {
			strategy := NewStrategy(config)
			move := strategy.Execute(board)
			metric := strategy.Metrics()
			records = append(records, metrics.SearchRecord{
				Config:       config.ID,
				Position:     name,
				Move:         engine.Notation(move),
				SearchMetric: metric,
			})
			log.Info().Msgf("%s on %s: %s, boards: %d, cutoffs: %d, t: %s",
				strategy, name, engine.Notation(move), metric.BoardsEvaluated, metric.Cutoffs, metric.Duration)
		}
	}
	log.Info().Msg("completed throughput experiment")
	return records, nil
}
