// Package report renders misspelling summaries to the console and to
// timestamped CSV files.
package report

import (
	"fmt"
	"sort"
	"strings"

	"textcorrector/internal/normalizer"
	"textcorrector/internal/tokenizer"
	"textcorrector/internal/types"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5d5d5d")).
			PaddingLeft(1).
			PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	rankStyle = cellStyle.
			Foreground(lipgloss.Color("#878787"))

	wordStyle = cellStyle.
			Foreground(lipgloss.Color("#ff0000"))

	suggestionStyle = cellStyle.
			Foreground(lipgloss.Color("#00af00"))
)

// CountOccurrences tallies how many times each misspelled word occurs
// in text, using the same normalize+tokenize pipeline as the engine so
// counts line up with the check result.
func CountOccurrences(text string, result types.CheckResult) map[string]int {
	flagged := make(map[string]bool, len(result.Misspelled))
	for _, w := range result.Misspelled {
		flagged[w] = true
	}

	counts := make(map[string]int)
	for _, word := range tokenizer.Words(normalizer.Normalize(text)) {
		lower := strings.ToLower(word)
		if flagged[lower] {
			counts[lower]++
		}
	}
	return counts
}

// Generate builds report rows sorted by occurrence count, most
// frequent first, words alphabetical within equal counts.
func Generate(result types.CheckResult, counts map[string]int) []types.ReportEntry {
	entries := make([]types.ReportEntry, 0, len(result.Misspelled))
	for _, word := range result.Misspelled {
		count := counts[word]
		if count == 0 {
			count = 1
		}
		suggestion := ""
		if s := result.Suggestions[word]; s != nil {
			suggestion = *s
		}
		entries = append(entries, types.ReportEntry{
			Word:       word,
			Count:      count,
			Suggestion: suggestion,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Word < entries[j].Word
		}
		return entries[i].Count > entries[j].Count
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// Print renders the top-N rows of the report.
func Print(entries []types.ReportEntry, topN int) {
	fmt.Println(titleStyle.Render("Misspelling Report - Most Frequent Mistakes"))

	if len(entries) == 0 {
		fmt.Println(cellStyle.Render("No misspellings found."))
		return
	}

	maxEntries := topN
	if len(entries) < maxEntries {
		maxEntries = len(entries)
	}

	for i := 0; i < maxEntries; i++ {
		entry := entries[i]
		rank := rankStyle.Render(fmt.Sprintf("%2d", entry.Rank))
		word := wordStyle.Render(entry.Word)

		if entry.Suggestion != "" {
			suggestion := suggestionStyle.Render(entry.Suggestion)
			fmt.Printf("%s. %s – %d occurrences, suggest: %s\n", rank, word, entry.Count, suggestion)
		} else {
			fmt.Printf("%s. %s – %d occurrences, no suggestion\n", rank, word, entry.Count)
		}
	}
}
