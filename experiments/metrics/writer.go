package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DecisionRecord captures one measured decision: both searches run on the
// same pre-filled board, nodes are the heuristics' evaluation counts.
type DecisionRecord struct {
	Width           int
	Height          int
	N               int
	Depth           int
	Seed            int
	ColMinimax      int
	ColAlphaBeta    int
	NodesMinimax    int
	NodesAlphaBeta  int
	TimeMinimaxNs   int64
	TimeAlphaBetaNs int64
}

var decisionHeader = []string{
	"width", "height", "n", "depth", "seed",
	"col_minimax", "col_alphabeta",
	"nodes_minimax", "nodes_alphabeta",
	"time_minimax_ns", "time_alphabeta_ns",
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped results directory for one experiment run.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteDecisionRecords stores the records as decision_records.csv.
func (w *Writer) WriteDecisionRecords(records []DecisionRecord) (string, error) {
	path := filepath.Join(w.baseDir, "decision_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create decision records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	err = writer.Write(decisionHeader)
	if err != nil {
		return "", fmt.Errorf("failed to write decision records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Width),
			strconv.Itoa(record.Height),
			strconv.Itoa(record.N),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Seed),
			strconv.Itoa(record.ColMinimax),
			strconv.Itoa(record.ColAlphaBeta),
			strconv.Itoa(record.NodesMinimax),
			strconv.Itoa(record.NodesAlphaBeta),
			strconv.FormatInt(record.TimeMinimaxNs, 10),
			strconv.FormatInt(record.TimeAlphaBetaNs, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return "", fmt.Errorf("failed to write decision record row: %w", err)
		}
	}

	return path, nil
}

// ReadDecisionRecords loads records back from a CSV produced by
// WriteDecisionRecords, for the analysis step.
func ReadDecisionRecords(path string) ([]DecisionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open decision records file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read decision records header: %w", err)
	}

	var records []DecisionRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read decision record row: %w", err)
		}
		if len(row) != len(decisionHeader) {
			return nil, fmt.Errorf("decision record row has %d fields, want %d", len(row), len(decisionHeader))
		}

		fields := make([]int64, len(row))
		for i, cell := range row {
			fields[i], err = strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse decision record field %q: %w", decisionHeader[i], err)
			}
		}
		records = append(records, DecisionRecord{
			Width:           int(fields[0]),
			Height:          int(fields[1]),
			N:               int(fields[2]),
			Depth:           int(fields[3]),
			Seed:            int(fields[4]),
			ColMinimax:      int(fields[5]),
			ColAlphaBeta:    int(fields[6]),
			NodesMinimax:    int(fields[7]),
			NodesAlphaBeta:  int(fields[8]),
			TimeMinimaxNs:   fields[9],
			TimeAlphaBetaNs: fields[10],
		})
	}
	return records, nil
}
