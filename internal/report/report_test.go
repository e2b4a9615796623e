package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"textcorrector/internal/types"
)

func suggestion(s string) *string { return &s }

func testResult() types.CheckResult {
	return types.CheckResult{
		Misspelled: []string{"helo", "wrold"},
		Suggestions: map[string]*string{
			"helo":  suggestion("hello"),
			"wrold": suggestion("world"),
		},
	}
}

func TestCountOccurrences(t *testing.T) {
	counts := CountOccurrences("Helo helo wrold fine", testResult())

	if counts["helo"] != 2 {
		t.Errorf("Expected 2 occurrences of helo, but got %d", counts["helo"])
	}
	if counts["wrold"] != 1 {
		t.Errorf("Expected 1 occurrence of wrold, but got %d", counts["wrold"])
	}
	if _, ok := counts["fine"]; ok {
		t.Errorf("Expected unflagged words to be absent from the tally")
	}
}

func TestGenerate(t *testing.T) {
	counts := map[string]int{"helo": 2, "wrold": 1}
	entries := Generate(testResult(), counts)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, but got %d", len(entries))
	}
	if entries[0].Word != "helo" || entries[0].Rank != 1 || entries[0].Count != 2 {
		t.Errorf("Expected helo ranked first with count 2, but got %+v", entries[0])
	}
	if entries[0].Suggestion != "hello" {
		t.Errorf("Expected suggestion hello, but got %s", entries[0].Suggestion)
	}
	if entries[1].Word != "wrold" || entries[1].Rank != 2 {
		t.Errorf("Expected wrold ranked second, but got %+v", entries[1])
	}
}

func TestGenerateTieOrder(t *testing.T) {
	result := types.CheckResult{
		Misspelled: []string{"zzz", "aaa"},
		Suggestions: map[string]*string{
			"zzz": nil,
			"aaa": nil,
		},
	}
	entries := Generate(result, map[string]int{"zzz": 1, "aaa": 1})

	if entries[0].Word != "aaa" {
		t.Errorf("Expected equal counts to sort alphabetically, but got %s first", entries[0].Word)
	}
}

func TestWriteCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	entries := Generate(testResult(), map[string]int{"helo": 2, "wrold": 1})

	path, err := WriteCSV(dir, entries)
	if err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 rows, but got %d", len(rows))
	}
	if rows[0][0] != "Rank" {
		t.Errorf("Expected header row, but got %v", rows[0])
	}
	if rows[1][1] != "helo" || rows[1][3] != "hello" {
		t.Errorf("Expected first row for helo, but got %v", rows[1])
	}
}

func TestWriteCSVNoDir(t *testing.T) {
	if _, err := WriteCSV("", nil); err == nil {
		t.Errorf("Expected an error when the report directory is empty")
	}
}
