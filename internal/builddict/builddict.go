// Package builddict produces the dictionary word-list file from
// public word lists.
package builddict

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSourceURL is a list of purely alphabetic English words.
const DefaultSourceURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"

// DefaultTarget caps the built dictionary size.
const DefaultTarget = 200000

var alphaRe = regexp.MustCompile(`^[a-z]+$`)

// NFKD, strip combining marks, recompose: "café" becomes "cafe".
var stripDiacritics = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Options configures Build.
type Options struct {
	SourceURL string   // word-list URL; empty means DefaultSourceURL
	Extra     []string // extra local word-list files merged in
	Target    int      // maximum words to keep; <=0 means DefaultTarget
	Output    string   // output file path
	Quiet     bool     // suppress download progress
}

// Build downloads the source word list, merges any extra local lists,
// normalizes and filters the tokens, and writes the sorted result to
// opts.Output. Returns the number of words written.
func Build(opts Options) (int, error) {
	url := opts.SourceURL
	if url == "" {
		url = DefaultSourceURL
	}
	target := opts.Target
	if target <= 0 {
		target = DefaultTarget
	}
	if opts.Output == "" {
		return 0, fmt.Errorf("output path not specified")
	}

	words := make(map[string]struct{})

	resp, err := http.Get(url)
	if err != nil {
		return 0, fmt.Errorf("failed to download word list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to download word list: %s returned %s", url, resp.Status)
	}

	body := io.Reader(resp.Body)
	if !opts.Quiet {
		bar := progressbar.DefaultBytes(resp.ContentLength, "downloading word list")
		body = io.TeeReader(resp.Body, bar)
	}
	if err := Collect(body, words); err != nil {
		return 0, fmt.Errorf("failed to read word list: %w", err)
	}

	for _, path := range opts.Extra {
		f, err := os.Open(path)
		if err != nil {
			return 0, fmt.Errorf("failed to open extra word list %s: %w", path, err)
		}
		err = Collect(f, words)
		f.Close()
		if err != nil {
			return 0, fmt.Errorf("failed to read extra word list %s: %w", path, err)
		}
	}

	if len(words) == 0 {
		return 0, fmt.Errorf("no usable words collected from %s", url)
	}

	final := make([]string, 0, len(words))
	for w := range words {
		final = append(final, w)
	}
	sort.Strings(final)
	if len(final) > target {
		// Trim deterministically so repeated builds agree.
		final = final[:target]
	}

	if err := WriteWords(opts.Output, final); err != nil {
		return 0, err
	}
	return len(final), nil
}

// Collect reads a word-per-line list, normalizing and filtering each
// token into the set.
func Collect(r io.Reader, words map[string]struct{}) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := NormalizeToken(scanner.Text()); w != "" {
			words[w] = struct{}{}
		}
	}
	return scanner.Err()
}

// NormalizeToken lowercases a raw token, strips diacritics, and
// rejects anything that is not a plain alphabetic word. Single letters
// other than "a" and "i" are rejected too. Returns "" for rejected
// tokens.
func NormalizeToken(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return ""
	}
	if stripped, _, err := transform.String(stripDiacritics, t); err == nil {
		t = stripped
	}
	if !alphaRe.MatchString(t) {
		return ""
	}
	if len(t) == 1 && t != "a" && t != "i" {
		return ""
	}
	return t
}

// WriteWords writes the list word-per-line.
func WriteWords(path string, words []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
