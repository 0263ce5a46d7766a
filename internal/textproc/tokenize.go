package textproc

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// minTokenLen is the shortest token kept after normalization. Tokens
// at or below this length are noise ("a", "of", initials).
const minTokenLen = 2

// isTokenRune reports whether r can appear inside a token. Besides
// alphanumerics this admits '+', '#', and '.' so that terms like
// "c++", "c#", and "node.js" survive tokenization intact.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// Tokenize lowercases text, splits it into tokens on non-token runes,
// strips sentence punctuation, and drops short tokens and stop-words.
// Token order follows the source text.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	tokens := make([]string, 0, len(lower)/6)

	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := strings.Trim(b.String(), ".")
		b.Reset()
		if len(tok) <= minTokenLen && !strings.ContainsAny(tok, "+#") {
			return
		}
		if IsStopWord(tok) {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range lower {
		if isTokenRune(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// Stem reduces a token to its Porter2 stem. Tokens containing
// non-letter runes (versions, "c++", "node.js") are returned as-is
// since stemming only applies to plain words.
func Stem(token string) string {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return token
		}
	}
	stemmed := english.Stem(token, false)
	if stemmed == "" {
		return token
	}
	return stemmed
}

// Normalize is the full pipeline: Tokenize followed by Stem on every
// surviving token. This is the canonical representation used by the
// term-weighting engine.
func Normalize(text string) []string {
	tokens := Tokenize(text)
	for i, tok := range tokens {
		tokens[i] = Stem(tok)
	}
	return tokens
}
