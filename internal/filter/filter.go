// Package filter decides, per log line, whether a message is kept.
package filter

import (
	"strings"

	"github.com/mholden/chatex/internal/config"
	"github.com/mholden/chatex/internal/token"
)

// Filter is the keep/drop predicate for one run. The mode is fixed at
// construction and dispatched on per line, rather than re-checking which
// optional filters are present.
type Filter struct {
	mode    config.FilterMode
	user    string
	keyword string
	sep     string
}

// New builds the filter for the given configuration.
func New(cfg config.Config) *Filter {
	return &Filter{
		mode:    cfg.Mode(),
		user:    cfg.User,
		keyword: cfg.Keyword,
		sep:     cfg.Separator,
	}
}

// Keep reports whether a message with the given sender and content
// survives the active filter.
func (f *Filter) Keep(sender, content string) bool {
	switch f.mode {
	case config.FilterUser:
		return f.matchesUser(sender)
	case config.FilterKeyword:
		return f.containsKeyword(content)
	case config.FilterUserKeyword:
		return f.matchesUser(sender) && f.containsKeyword(content)
	default:
		return true
	}
}

func (f *Filter) matchesUser(sender string) bool {
	return strings.ToLower(sender) == f.user
}

// containsKeyword reports whether any word token of content equals the
// keyword, or any raw token sub-matches it (so "there's" matches the
// keyword "there").
func (f *Filter) containsKeyword(content string) bool {
	raw := token.Split(content, f.sep)
	words := token.Words(content, f.sep)
	for i := range words {
		if token.MatchesWord(words[i], f.keyword) || token.MatchesSubToken(raw[i], f.keyword) {
			return true
		}
	}
	return false
}
