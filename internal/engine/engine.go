// Package engine implements the word-level spell check: normalize,
// tokenize, look up distinct lowercased tokens, and produce at most
// one suggestion per unknown word.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hbollon/go-edlib"

	"textcorrector/internal/dictionary"
	"textcorrector/internal/normalizer"
	"textcorrector/internal/tokenizer"
	"textcorrector/internal/types"
)

// ErrNotReady is returned by CheckText before the dictionary has
// finished loading. Checking must fail loudly rather than report a
// misleading empty result.
var ErrNotReady = errors.New("spell check engine is not ready: dictionary not loaded")

// LoadFunc produces the dictionary during initialization.
type LoadFunc func() (dictionary.Dictionary, error)

// Engine is a two-state lifecycle object: Uninitialized until Load
// completes, then permanently Ready (with either a usable dictionary
// or a recorded initialization error). After Ready the dictionary is
// immutable and CheckText is safe for concurrent callers.
type Engine struct {
	// MinWordLength skips tokens shorter than this many runes
	// entirely (not flagged, not checked). Set before Load.
	MinWordLength int

	load  LoadFunc
	once  sync.Once
	ready chan struct{}
	dict  dictionary.Dictionary
	err   error
}

// New returns an engine in the Uninitialized state.
func New(load LoadFunc) *Engine {
	return &Engine{
		MinWordLength: 1,
		load:          load,
		ready:         make(chan struct{}),
	}
}

// Load starts dictionary initialization in the background. It is safe
// to call more than once; only the first call does anything. The
// outcome, success or failure, is published through Ready.
func (e *Engine) Load() {
	e.once.Do(func() {
		go func() {
			dict, err := e.load()
			if err != nil {
				e.err = fmt.Errorf("dictionary unavailable: %w", err)
			} else if dict == nil || dict.Len() == 0 {
				e.err = errors.New("dictionary unavailable: loader returned an empty dictionary")
			} else {
				e.dict = dict
			}
			close(e.ready)
		}()
	})
}

// Ready is closed once initialization finishes, whether it succeeded
// or failed. Check Err after it closes.
func (e *Engine) Ready() <-chan struct{} {
	return e.ready
}

// Err reports the initialization failure, if any. It is meaningful
// only after Ready is closed.
func (e *Engine) Err() error {
	select {
	case <-e.ready:
		return e.err
	default:
		return ErrNotReady
	}
}

// WaitReady blocks until initialization finishes or ctx is done, and
// returns the initialization error if loading failed.
func (e *Engine) WaitReady(ctx context.Context) error {
	select {
	case <-e.ready:
		return e.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dictionary returns the loaded dictionary, or nil before Ready.
func (e *Engine) Dictionary() dictionary.Dictionary {
	select {
	case <-e.ready:
		return e.dict
	default:
		return nil
	}
}

// CheckText normalizes and tokenizes text, partitions the distinct
// lowercased tokens into known and unknown, and picks one
// deterministic suggestion per unknown word. Empty input yields an
// empty result. The misspelled list and suggestion keys are always in
// lockstep.
func (e *Engine) CheckText(text string) (types.CheckResult, error) {
	select {
	case <-e.ready:
		if e.err != nil {
			return types.CheckResult{}, e.err
		}
	default:
		return types.CheckResult{}, ErrNotReady
	}

	result := types.NewCheckResult()

	unique := mapset.NewThreadUnsafeSet[string]()
	for _, word := range tokenizer.Words(normalizer.Normalize(text)) {
		if utf8.RuneCountInString(word) < e.MinWordLength {
			continue
		}
		unique.Add(strings.ToLower(word))
	}

	for _, word := range unique.ToSlice() {
		if !e.dict.Contains(word) {
			result.Misspelled = append(result.Misspelled, word)
		}
	}
	sort.Strings(result.Misspelled)

	for _, word := range result.Misspelled {
		result.Suggestions[word] = e.suggest(word)
	}

	return result, nil
}

// suggest picks the candidate closest to word by Levenshtein distance,
// breaking ties lexicographically so repeated calls always choose the
// same correction. Returns nil when the candidate set is empty.
func (e *Engine) suggest(word string) *string {
	candidates := e.dict.Candidates(word)
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	bestDist := edlib.LevenshteinDistance(word, best)
	for _, c := range candidates[1:] {
		d := edlib.LevenshteinDistance(word, c)
		if d < bestDist || (d == bestDist && c < best) {
			best = c
			bestDist = d
		}
	}
	return &best
}
