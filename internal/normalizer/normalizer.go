package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Smart punctuation folded to its ASCII form before tokenization.
var punctuationFold = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // horizontal ellipsis
	"\u00a0", " ", // no-break space
)

// Zero-width characters stripped entirely.
var zeroWidth = map[rune]bool{
	'\u200b': true, // zero-width space
	'\u200c': true, // zero-width non-joiner
	'\u200d': true, // zero-width joiner
	'\u2060': true, // word joiner
}

// Normalize canonicalizes raw text for spell checking. The steps run
// in a fixed order because later ones assume the earlier folding:
// NFKC, smart-punctuation folding, zero-width stripping, quote-run
// collapsing, whitespace collapsing. Zero-width characters go before
// the run collapse so they cannot split an apostrophe run; the result
// is stable under repeated application. The function is total: any
// input string produces a result, empty in gives empty out.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = punctuationFold.Replace(text)
	text = stripZeroWidth(text)
	text = collapseRuns(text, '\'')
	text = collapseRuns(text, '"')

	var b strings.Builder
	b.Grow(len(text))
	space := false
	wrote := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			space = wrote // leading whitespace is dropped outright
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
		wrote = true
	}
	return b.String()
}

func stripZeroWidth(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return zeroWidth[r] }) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !zeroWidth[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// collapseRuns reduces every run of two or more c to a single c.
// Texts pasted from word processors often carry doubled apostrophes
// left over from smart-quote round trips.
func collapseRuns(s string, c byte) string {
	if !strings.Contains(s, string([]byte{c, c})) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := false
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
