package dictionary

import (
	"github.com/sajari/fuzzy"
)

// fuzzyDictionary pairs a plain membership set with a sajari/fuzzy
// model for candidate generation. The model alone cannot answer
// membership queries, so the set is kept alongside it.
type fuzzyDictionary struct {
	words map[string]struct{}
	model *fuzzy.Model
}

func newFuzzyDictionary(words []string, maxDist int) *fuzzyDictionary {
	model := fuzzy.NewModel()
	model.SetDepth(maxDist)
	model.SetThreshold(1)

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := set[w]; ok {
			continue
		}
		set[w] = struct{}{}
		model.TrainWord(w)
	}

	return &fuzzyDictionary{words: set, model: model}
}

func (d *fuzzyDictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

func (d *fuzzyDictionary) Candidates(word string) []string {
	suggestions := d.model.Suggestions(word, false)

	// The model can echo unknown inputs back; a candidate must be a
	// dictionary member.
	out := make([]string, 0, len(suggestions))
	seen := make(map[string]bool, len(suggestions))
	for _, s := range suggestions {
		if !seen[s] && d.Contains(s) {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func (d *fuzzyDictionary) Len() int {
	return len(d.words)
}
