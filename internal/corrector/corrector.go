// Package corrector applies spell-check suggestions back onto the
// original text, preserving the casing of each replaced occurrence.
package corrector

import (
	"strings"

	"textcorrector/internal/tokenizer"
	"textcorrector/internal/types"
)

// CorrectText rewrites text by replacing every occurrence of a
// misspelled word with its suggestion from result. Occurrences with no
// suggestion are left as they are. The original text is re-tokenized
// with the same tokenizer the engine uses, so replacements land on the
// exact original spans even though checking ran on normalized text.
func CorrectText(text string, result types.CheckResult) types.Correction {
	correction := types.Correction{
		Original: text,
		Fixes:    []types.Fix{},
	}

	tokens := tokenizer.Tokenize(text)
	correction.Stats.TotalWords = len(tokens)
	correction.Stats.Misspellings = len(result.Misspelled)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, tok := range tokens {
		suggestion, ok := result.Suggestions[strings.ToLower(tok.Text)]
		if !ok || suggestion == nil {
			continue
		}
		fixed := matchCase(tok.Text, *suggestion)
		if fixed == tok.Text {
			continue
		}
		b.WriteString(text[last:tok.Start])
		b.WriteString(fixed)
		last = tok.End
		correction.Fixes = append(correction.Fixes, types.Fix{Wrong: tok.Text, Fixed: fixed})
		correction.Stats.Replacements++
	}
	b.WriteString(text[last:])
	correction.Corrected = b.String()

	return correction
}

// matchCase shapes the replacement after the original occurrence:
// Title stays Title, ALL-UPPER stays upper, everything else takes the
// suggestion as is (lowercase).
func matchCase(original, replacement string) string {
	if isUpper(original) && len([]rune(original)) > 1 {
		return strings.ToUpper(replacement)
	}
	if isTitle(original) {
		return title(replacement)
	}
	return replacement
}

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
