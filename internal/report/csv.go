package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"textcorrector/internal/types"
)

// WriteCSV writes the report to a timestamped CSV file under dir and
// returns the path of the written file.
func WriteCSV(dir string, entries []types.ReportEntry) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("report directory not specified")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	filename := fmt.Sprintf("spell_report_%s.csv", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(dir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file %s: %w", filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Rank", "Word", "Count", "Suggestion"}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.Word,
			fmt.Sprintf("%d", entry.Count),
			entry.Suggestion,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return filePath, nil
}
