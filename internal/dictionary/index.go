package dictionary

import (
	"fmt"

	"github.com/f1monkey/spellchecker"
)

// Letters the index backend recognizes inside a word. Tokens keep
// interior apostrophes and hyphens, so both are part of the alphabet.
const indexAlphabet = "abcdefghijklmnopqrstuvwxyz'-"

// maxIndexCandidates bounds how many raw suggestions are requested per
// word; the engine only ever keeps one.
const maxIndexCandidates = 10

// indexDictionary is the f1monkey/spellchecker backend. The checker
// keeps its own membership index, but a separate set is still needed
// for Len and to filter candidates consistently with the fuzzy backend.
type indexDictionary struct {
	words   map[string]struct{}
	checker *spellchecker.Spellchecker
}

func newIndexDictionary(words []string, maxDist int) (*indexDictionary, error) {
	checker, err := spellchecker.New(indexAlphabet, spellchecker.WithMaxErrors(maxDist))
	if err != nil {
		return nil, fmt.Errorf("failed to create index backend: %w", err)
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := set[w]; ok {
			continue
		}
		set[w] = struct{}{}
		checker.Add(w)
	}

	return &indexDictionary{words: set, checker: checker}, nil
}

func (d *indexDictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

func (d *indexDictionary) Candidates(word string) []string {
	suggestions, err := d.checker.Suggest(word, maxIndexCandidates)
	if err != nil {
		return nil
	}
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

func (d *indexDictionary) Len() int {
	return len(d.words)
}
