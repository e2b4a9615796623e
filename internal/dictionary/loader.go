package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Fallback word list so the tool works out of the box without a
// downloaded dictionary. Replace with a full list built via the
// dictionary builder for real use.
//
//go:embed data/words.txt
var embeddedWords []byte

// Options configures Load.
type Options struct {
	Path            string   // word-list file; empty means the embedded list
	Backend         string   // BackendFuzzy or BackendIndex
	MaxEditDistance int      // candidate radius, 1..3
	CustomWords     []string // extra words merged into the dictionary
	Progress        bool     // show a progress bar while reading
}

// Load reads a word list and builds a dictionary from it. A missing or
// empty word list is an error: the engine must not come up pretending
// an empty dictionary is a loaded one.
func Load(opts Options) (Dictionary, error) {
	var r io.Reader
	var label string

	if opts.Path != "" {
		f, err := os.Open(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dictionary %s: %w", opts.Path, err)
		}
		defer f.Close()
		r = f
		label = opts.Path
	} else {
		r = bytes.NewReader(embeddedWords)
		label = "embedded word list"
	}

	words, err := ReadWordList(r, opts.Progress)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", label, err)
	}
	for _, w := range opts.CustomWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary %s contains no words", label)
	}

	return New(opts.Backend, words, opts.MaxEditDistance)
}

// ReadWordList reads a word-per-line list: lowercased, blank lines and
// # comments skipped.
func ReadWordList(r io.Reader, progress bool) ([]string, error) {
	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(-1, "loading dictionary")
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
