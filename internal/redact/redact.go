// Package redact replaces forbidden words in message content with a
// fixed marker while leaving surrounding punctuation intact.
package redact

import (
	"regexp"
	"strings"

	"github.com/mholden/chatex/internal/chat"
	"github.com/mholden/chatex/internal/config"
	"github.com/mholden/chatex/internal/token"
)

// Redactor rewrites message content for a fixed forbidden-word list.
// Matching is per token: a word token equal to a forbidden word is
// replaced whole, and a raw token containing a forbidden word as a
// sub-component (a contraction such as "there's") has just that
// sub-component replaced.
type Redactor struct {
	words  []string
	marker string
	sep    string
}

// New builds a Redactor from the configuration. The word list order is
// preserved: the first matching word wins for a whole-token match.
func New(cfg config.Config) *Redactor {
	return &Redactor{
		words:  cfg.HideWords,
		marker: cfg.Marker,
		sep:    cfg.Separator,
	}
}

// Enabled reports whether any forbidden words are configured.
func (r *Redactor) Enabled() bool {
	return len(r.words) > 0
}

// Apply redacts the content of every message in place. Only messages
// that survived filtering are ever passed here; sender fields are never
// touched.
func (r *Redactor) Apply(msgs []chat.Message) {
	if !r.Enabled() {
		return
	}
	for i := range msgs {
		msgs[i].Content = r.Redact(msgs[i].Content)
	}
}

// Redact returns content with every forbidden word replaced by the
// marker. Token count and non-matching punctuation are preserved, and
// the result is stable under repeated application.
func (r *Redactor) Redact(content string) string {
	raw := token.Split(content, r.sep)
	words := token.Words(content, r.sep)

	for i := range words {
		for _, w := range r.words {
			if token.MatchesWord(words[i], w) {
				raw[i] = replaceLiteral(raw[i], words[i], r.marker)
				break
			}
			if token.MatchesSubToken(raw[i], w) {
				for _, sub := range token.SubTokens(raw[i]) {
					if sub == w {
						raw[i] = replaceLiteral(raw[i], sub, r.marker)
					}
				}
			}
		}
	}

	return strings.Join(raw, r.sep)
}

// replaceLiteral substitutes every case-insensitive occurrence of the
// literal word inside tok with the marker.
func replaceLiteral(tok, word, marker string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word))
	return re.ReplaceAllLiteralString(tok, marker)
}
