// Package tokenizer extracts candidate words from text.
//
// A token is a maximal run of letters, optionally followed by a single
// apostrophe-joined group (can't, O'Reilly) and any number of
// hyphen-joined groups (co-operate, state-of-the-art). Digits,
// symbols, and standalone punctuation never join a token.
package tokenizer

import "regexp"

var wordRe = regexp.MustCompile(`\pL+(?:'\pL+)?(?:-\pL+)*`)

// Token is one extracted word with its byte span in the source text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize returns all tokens of text in order, with spans into text.
func Tokenize(text string) []Token {
	idx := wordRe.FindAllStringIndex(text, -1)
	if idx == nil {
		return nil
	}
	tokens := make([]Token, len(idx))
	for i, span := range idx {
		tokens[i] = Token{
			Text:  text[span[0]:span[1]],
			Start: span[0],
			End:   span[1],
		}
	}
	return tokens
}

// Words returns just the token texts, in order, duplicates included.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}
