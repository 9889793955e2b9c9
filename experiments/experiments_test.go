package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"chess/engine"
	"chess/experiments/metrics"
	"chess/searcher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewStrategy(t *testing.T) {
	require.IsType(t, &searcher.Random{}, NewStrategy(metrics.StrategyConfig{Strategy: Random}), "random builds the baseline")
	require.IsType(t, &searcher.MiniMax{}, NewStrategy(metrics.StrategyConfig{Strategy: MiniMax, Depth: 2}), "minimax builds MiniMax")

	strategy := NewStrategy(metrics.StrategyConfig{Strategy: AlphaBeta, Depth: 2, RookStructure: true})
	require.Equal(t, "AB+MO", strategy.String(), "alphabeta builds AlphaBeta")

	require.Panics(t, func() { NewStrategy(metrics.StrategyConfig{Strategy: "mcts"}) }, "Unknown strategies are a configuration bug")
}

func TestTally(t *testing.T) {
	matchups := tally(nil, 1, 0, engine.Result{ID: uuid.New(), Winner: "White", Moves: nil})
	matchups = tally(matchups, 1, 0, engine.Result{ID: uuid.New()})
	matchups = tally(matchups, 0, 1, engine.Result{ID: uuid.New(), Winner: "Black"})

	require.Len(t, matchups, 2, "Colour pairings are summarised separately")
	require.Equal(t, metrics.MatchupSummary{White: 1, Black: 0, Games: 2, WhiteWins: 1, Draws: 1}, matchups[0], "First pairing")
	require.Equal(t, 1, matchups[1].BlackWins, "Second pairing")
}

func TestRunExperiment(t *testing.T) {
	dir := t.TempDir()
	shallow := metrics.StrategyConfig{ID: 1, Strategy: AlphaBeta, Depth: 1}
	random := metrics.StrategyConfig{ID: 0, Strategy: Random, Seed: 5}

	summary, err := runExperiment(dir, "smoke", []metrics.StrategyConfig{shallow, random},
		[][]metrics.StrategyConfig{{shallow, random}}, 2)
	require.NoError(t, err, "The experiment runs to completion")
	require.Len(t, summary.Matchups, 2, "Colours alternate between games")
	for _, m := range summary.Matchups {
		require.Equal(t, 1, m.Games, "Each colour pairing plays once")
		require.Equal(t, 1, m.WhiteWins+m.BlackWins+m.Draws, "Every game has an outcome")
	}

	runs, err := os.ReadDir(filepath.Join(dir, "smoke"))
	require.NoError(t, err, "The experiment directory exists")
	require.Len(t, runs, 1, "One timestamped run")
	for _, name := range []string{"strategy_configs.csv", "game_records.csv", "move_records.csv", "summary.json"} {
		require.FileExists(t, filepath.Join(dir, "smoke", runs[0].Name(), name), "%s is written", name)
	}
}

func TestSearchPositions(t *testing.T) {
	configs := []metrics.StrategyConfig{
		{ID: 1, Strategy: MiniMax, Depth: 2},
		{ID: 2, Strategy: AlphaBeta, Depth: 2},
	}
	records, err := searchPositions(configs)
	require.NoError(t, err, "All positions replay")
	require.Len(t, records, len(positionOrder)*len(configs), "One record per position and config")

	require.Equal(t, "start", records[0].Position, "Positions are searched in order")
	require.Equal(t, int64(400), records[0].BoardsEvaluated, "MiniMax visits every leaf at depth 2")
	require.Less(t, records[1].BoardsEvaluated, records[0].BoardsEvaluated, "Alpha-beta prunes")
	for _, record := range records {
		require.NotEqual(t, "0000", record.Move, "Every position has a move")
	}
}
