package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Writer stores experiment records as CSV files under a timestamped
// directory, one directory per experiment run.
type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>/ and returns a writer bound
// to it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create experiment directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory this writer stores files in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteGameRecords stores one row per game in games.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "start_time", "end_time", "duration_ms", "turns", "completed", "rewards"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.StartTime.UTC().Format(time.RFC3339Nano),
			record.EndTime.UTC().Format(time.RFC3339Nano),
			strconv.FormatInt(record.Duration.Milliseconds(), 10),
			strconv.Itoa(record.Turns),
			strconv.FormatBool(record.Completed),
			formatRewards(record.Rewards),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record %d: %w", record.ID, err)
		}
	}
	return writer.Error()
}

// formatRewards joins per-seat rewards with ';' so the row stays a single
// CSV field regardless of player count.
func formatRewards(rewards []float64) string {
	parts := make([]string, len(rewards))
	for i, r := range rewards {
		parts[i] = strconv.FormatFloat(r, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}
