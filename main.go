package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"chess/engine"
	"chess/eval"
	"chess/experiments"
	"chess/experiments/metrics"
	"chess/game"
	"chess/meta"
	"chess/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Flags (env fallbacks)
	mode := flag.String("mode", getenv("CHESS_MODE", "analyze"), "analyze, match or experiment")
	moves := flag.String("moves", getenv("CHESS_MOVES", ""), "comma-separated coordinate moves from the standard board, e.g. e2e4,e7e5")
	strategy := flag.String("strategy", getenv("CHESS_STRATEGY", experiments.AlphaBeta), "searcher for analysis and for white in a match: minimax or alphabeta")
	opponent := flag.String("opponent", getenv("CHESS_OPPONENT", experiments.Random), "searcher for black in a match: random, minimax or alphabeta")
	depth := flag.Int("depth", getenvInt("CHESS_DEPTH", meta.DEFAULT_DEPTH), "search depth in plies")
	quiescence := flag.Bool("quiescence", getenvBool("CHESS_QUIESCENCE", false), "extend volatile lines in alpha-beta")
	rooks := flag.Bool("rooks", getenvBool("CHESS_ROOKS", false), "score rook structure")
	seed := flag.Uint64("seed", uint64(getenvInt("CHESS_SEED", 1)), "seed of the random opponent")
	maxTurns := flag.Int("max-turns", getenvInt("CHESS_MAX_TURNS", meta.MAX_TURNS), "plies before a match is drawn")
	experiment := flag.String("experiment", getenv("CHESS_EXPERIMENT", "strength"), "strength, depth or throughput")
	out := flag.String("out", getenv("CHESS_OUT", "results"), "directory for experiment records")
	level := flag.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "trace, debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	fatalIf(err, "log level")
	zerolog.SetGlobalLevel(logLevel)

	config := metrics.StrategyConfig{ID: 1, Strategy: *strategy, Depth: *depth, Quiescence: *quiescence, RookStructure: *rooks}
	opponentConfig := metrics.StrategyConfig{ID: 2, Strategy: *opponent, Depth: *depth, Seed: *seed}
	fatalIf(validate(config, opponentConfig), "strategy")

	switch *mode {
	case "analyze":
		fatalIf(analyze(config, parseMoves(*moves)), "analyze")
	case "match":
		fatalIf(match(config, opponentConfig, parseMoves(*moves), *maxTurns), "match")
	case "experiment":
		fatalIf(runExperiment(*experiment, *out, *depth), "experiment")
	default:
		fatalIf(fmt.Errorf("unknown mode %q", *mode), "mode")
	}
}

// analyze prints the position after moves, its evaluation breakdown and the searcher's choice.
func analyze(config metrics.StrategyConfig, moves []string) error {
	board, err := engine.Replay(game.StandardBoard(), moves)
	if err != nil {
		return err
	}
	fmt.Println(board)

	evaluator := eval.NewStandard()
	if config.RookStructure {
		evaluator = eval.NewStandard(eval.WithRookStructure())
	}
	fmt.Println(evaluator.Details(board, config.Depth))

	searcher := experiments.NewStrategy(config)
	move := searcher.Execute(board)
	metric := searcher.Metrics()
	fmt.Printf("\n%s plays %s (%s)\n", searcher, engine.Notation(move), move)
	fmt.Printf("boards: %d, cutoffs: %d (%.2f%%), extensions: %d, t: %s\n",
		metric.BoardsEvaluated, metric.Cutoffs, metric.PrunePercent(), metric.Extensions, metric.Duration)
	return nil
}

func match(white, black metrics.StrategyConfig, moves []string, maxTurns int) error {
	board, err := engine.Replay(game.StandardBoard(), moves)
	if err != nil {
		return err
	}
	e := engine.LocalEngine(board, experiments.NewStrategy(white), experiments.NewStrategy(black), engine.WithMaxTurns(maxTurns))
	result, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Println(result.Final)
	fmt.Println(strings.Join(utils.Map(result.Moves, engine.Notation), " "))
	if result.IsDraw() {
		fmt.Printf("draw by %s after %d moves\n", result.Reason, len(result.Moves))
	} else {
		fmt.Printf("%s wins by %s after %d moves\n", result.Winner, result.Reason, len(result.Moves))
	}
	return nil
}

func runExperiment(name, dir string, depth int) error {
	switch name {
	case "strength":
		return experiments.RunStrengthExperiment(dir)
	case "depth":
		return experiments.RunDepthExperiment(dir)
	case "throughput":
		return experiments.RunThroughputExperiment(dir, depth)
	}
	return fmt.Errorf("unknown experiment %q", name)
}

func validate(configs ...metrics.StrategyConfig) error {
	for _, config := range configs {
		switch config.Strategy {
		case experiments.MiniMax, experiments.AlphaBeta, experiments.Random:
		default:
			return fmt.Errorf("unknown strategy %q", config.Strategy)
		}
		if config.Depth < 1 {
			return fmt.Errorf("depth must be at least 1, got %d", config.Depth)
		}
	}
	return nil
}

func parseMoves(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return utils.Map(strings.Split(s, ","), strings.TrimSpace)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatal().Err(err).Msg(label)
	}
}
