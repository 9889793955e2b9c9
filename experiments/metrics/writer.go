package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StrategyConfig describes one searcher setup taking part in an experiment.
type StrategyConfig struct {
	ID            int
	Strategy      string // "minimax", "alphabeta" or "random"
	Depth         int
	Quiescence    bool
	RookStructure bool
	Seed          uint64 // Random only
}

type GameRecord struct {
	ID    string // engine.Result.ID
	White int    // StrategyConfig.ID
	Black int    // StrategyConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

// SearchRecord is one search on a fixed position, outside of any game.
type SearchRecord struct {
	Config   int // StrategyConfig.ID
	Position string
	Move     string
	SearchMetric
}

type MatchupSummary struct {
	White     int `json:"white"`
	Black     int `json:"black"`
	Games     int `json:"games"`
	WhiteWins int `json:"white_wins"`
	BlackWins int `json:"black_wins"`
	Draws     int `json:"draws"`
	Moves     int `json:"moves"`
}

type Summary struct {
	Name     string           `json:"name"`
	Start    time.Time        `json:"start"`
	End      time.Time        `json:"end"`
	Matchups []MatchupSummary `json:"matchups"`
}

type Writer struct {
	baseDir string
}

// NewWriter stores records under dir/name/<timestamp>.
func NewWriter(dir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	header := []string{"id", "strategy", "depth", "quiescence", "rook_structure", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.Itoa(config.Depth),
			strconv.FormatBool(config.Quiescence),
			strconv.FormatBool(config.RookStructure),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("strategy_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "white", "black", "starting_player", "winner", "reason", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.White),
			strconv.Itoa(record.Black),
			record.StartingPlayer,
			record.Winner,
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := append([]string{"game", "step", "player", "move"}, searchHeader...)
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
		}
		rows = append(rows, append(row, searchRow(record.SearchMetric)...))
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := append([]string{"config", "position", "move"}, searchHeader...)
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Config),
			record.Position,
			record.Move,
		}
		rows = append(rows, append(row, searchRow(record.SearchMetric)...))
	}
	return w.writeCSV("search_records.csv", header, rows)
}

func (w *Writer) WriteSummary(summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.json")
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

var searchHeader = []string{"strategy", "depth", "duration", "boards_evaluated", "cutoffs", "prune_percent", "extensions"}

func searchRow(metric SearchMetric) []string {
	return []string{
		metric.Strategy,
		strconv.Itoa(metric.Depth),
		metric.Duration.String(),
		strconv.FormatInt(metric.BoardsEvaluated, 10),
		strconv.FormatInt(metric.Cutoffs, 10),
		strconv.FormatFloat(metric.PrunePercent(), 'f', 2, 64),
		strconv.FormatInt(metric.Extensions, 10),
	}
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows) // Flushes
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
