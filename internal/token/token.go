// Package token provides the tokenization and word matching shared by
// keyword filtering and redaction.
//
// Message content is tokenized two ways in parallel: Split keeps the
// original casing and punctuation, Words keeps only letters and the
// separator, lower-cased. The two sequences are index-aligned, so a
// match found on a word token can be written back into the raw token at
// the same position.
package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split returns the raw tokens of text, split on sep. Empty segments are
// preserved so indexes stay aligned with Words.
func Split(text, sep string) []string {
	return strings.Split(text, sep)
}

// Words returns the lower-cased word tokens of text: every rune that is
// neither a basic Latin letter nor part of sep is stripped before
// splitting on sep. The result has the same length as Split(text, sep),
// element for element.
func Words(text, sep string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isLetter(r) || strings.ContainsRune(sep, r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.Split(b.String(), sep)
}

// SubTokens splits a raw token on every non-letter rune. Trailing empty
// components are dropped, leading and internal ones are kept, so
// "there's" yields ["there", "s"] and "Hello," yields ["Hello"].
func SubTokens(raw string) []string {
	var parts []string
	start := 0
	for i, r := range raw {
		if !isLetter(r) {
			parts = append(parts, raw[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	parts = append(parts, raw[start:])
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// MatchesWord reports whether an already lower-cased word token equals
// the target word.
func MatchesWord(word, target string) bool {
	return word == target
}

// MatchesSubToken reports whether raw contains target as one of several
// sub-components when split on non-letter runes. A token with no
// internal delimiter never sub-matches; the whole-word path covers it.
func MatchesSubToken(raw, target string) bool {
	subs := SubTokens(raw)
	if len(subs) <= 1 {
		return false
	}
	for _, sub := range subs {
		if sub == target {
			return true
		}
	}
	return false
}

// isLetter restricts matching to basic Latin letters, the only script
// the log format guarantees.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
