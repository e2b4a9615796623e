package dictionary

import (
	"os"
	"strings"
	"testing"
)

var testWords = []string{"hello", "world", "spelling", "poetry", "the", "and"}

func TestNewFuzzyDictionary(t *testing.T) {
	d, err := New(BackendFuzzy, testWords, 2)
	if err != nil {
		t.Fatalf("Failed to create fuzzy dictionary: %v", err)
	}

	if d.Len() != len(testWords) {
		t.Errorf("Expected %d words, but got %d", len(testWords), d.Len())
	}

	for _, w := range testWords {
		if !d.Contains(w) {
			t.Errorf("Expected '%s' to be known", w)
		}
	}

	for _, w := range []string{"helo", "wrold", "zzzzz"} {
		if d.Contains(w) {
			t.Errorf("Expected '%s' to be unknown", w)
		}
	}
}

func TestFuzzyCandidates(t *testing.T) {
	d, err := New(BackendFuzzy, testWords, 2)
	if err != nil {
		t.Fatalf("Failed to create fuzzy dictionary: %v", err)
	}

	candidates := d.Candidates("helo")
	if len(candidates) == 0 {
		t.Fatalf("Expected candidates for 'helo'")
	}
	for _, c := range candidates {
		if !d.Contains(c) {
			t.Errorf("Expected candidate '%s' to be a dictionary member", c)
		}
	}
}

func TestNewIndexDictionary(t *testing.T) {
	d, err := New(BackendIndex, testWords, 2)
	if err != nil {
		t.Fatalf("Failed to create index dictionary: %v", err)
	}

	for _, w := range testWords {
		if !d.Contains(w) {
			t.Errorf("Expected '%s' to be known", w)
		}
	}
	if d.Contains("helo") {
		t.Errorf("Expected 'helo' to be unknown")
	}

	candidates := d.Candidates("helo")
	for _, c := range candidates {
		if !d.Contains(c) {
			t.Errorf("Expected candidate '%s' to be a dictionary member", c)
		}
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New("trie", testWords, 2); err == nil {
		t.Errorf("Expected an error for an unknown backend")
	}
}

func TestReadWordList(t *testing.T) {
	input := "# comment\nHello\n\n  World  \nthe\n"
	words, err := ReadWordList(strings.NewReader(input), false)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"hello", "world", "the"}
	if len(words) != len(want) {
		t.Fatalf("Expected %d words, but got %d", len(want), len(words))
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("Expected word %d to be %s, but got %s", i, w, words[i])
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "dict_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.WriteString("alpha\nbeta\ngamma\n"); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	d, err := Load(Options{Path: tmpfile.Name(), Backend: BackendFuzzy, MaxEditDistance: 2, CustomWords: []string{"Delta"}})
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range []string{"alpha", "beta", "gamma", "delta"} {
		if !d.Contains(w) {
			t.Errorf("Expected '%s' to be known", w)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(Options{Path: "no/such/dictionary.txt"}); err == nil {
		t.Errorf("Expected an error for a missing dictionary file")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "dict_empty")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	tmpfile.Close()

	if _, err := Load(Options{Path: tmpfile.Name()}); err == nil {
		t.Errorf("Expected an error for an empty dictionary file")
	}
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load(Options{Backend: BackendFuzzy, MaxEditDistance: 2})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() == 0 {
		t.Fatal("Expected embedded word list to be non-empty")
	}
	for _, w := range []string{"hello", "world", "don't"} {
		if !d.Contains(w) {
			t.Errorf("Expected embedded list to contain '%s'", w)
		}
	}
}
