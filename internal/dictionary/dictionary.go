// Package dictionary provides the read-only word-membership and
// candidate-generation resource the spell-check engine queries.
package dictionary

import "fmt"

// Backend names accepted by New and the dictionary-backend config key.
const (
	BackendFuzzy = "fuzzy"
	BackendIndex = "index"
)

// Dictionary answers whether a lowercased word is known and generates
// correction candidates for unknown words. Implementations are
// immutable once built and safe for concurrent readers.
type Dictionary interface {
	Contains(word string) bool
	Candidates(word string) []string
	Len() int
}

// New builds a dictionary over the given lowercased words. maxDist is
// the edit-distance radius for candidate generation (clamped to 1..3).
func New(backend string, words []string, maxDist int) (Dictionary, error) {
	if maxDist < 1 {
		maxDist = 1
	}
	if maxDist > 3 {
		maxDist = 3
	}

	switch backend {
	case BackendFuzzy, "":
		return newFuzzyDictionary(words, maxDist), nil
	case BackendIndex:
		return newIndexDictionary(words, maxDist)
	default:
		return nil, fmt.Errorf("unknown dictionary backend: %s", backend)
	}
}
