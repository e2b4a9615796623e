package types

// CheckResult is the outcome of a single spell check. Misspelled holds
// the distinct lowercased unknown words in sorted order; Suggestions
// has exactly one entry per misspelled word, nil when the dictionary
// produced no candidate.
type CheckResult struct {
	Misspelled  []string           `json:"misspelled"`
	Suggestions map[string]*string `json:"suggestions"`
}

// NewCheckResult returns an empty result with the suggestions map
// allocated, so empty input serializes as {"misspelled":[], "suggestions":{}}.
func NewCheckResult() CheckResult {
	return CheckResult{
		Misspelled:  []string{},
		Suggestions: make(map[string]*string),
	}
}

// Fix records one replacement made while correcting text.
type Fix struct {
	Wrong string `json:"wrong"`
	Fixed string `json:"fixed"`
}

// Correction is the outcome of the corrected-text mode.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Fixes     []Fix  `json:"fixes"`
	Stats     Stats  `json:"stats"`
}

// Stats summarizes a checked document.
type Stats struct {
	TotalWords   int `json:"total_words"`
	Misspellings int `json:"misspellings"`
	Replacements int `json:"replacements"`
}

// ReportEntry is one row of the misspelling report.
type ReportEntry struct {
	Rank       int
	Word       string
	Count      int
	Suggestion string
}
