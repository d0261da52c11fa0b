// Package config provides the per-run exporter configuration.
package config

import (
	"strings"

	"github.com/samber/lo"
)

// Defaults for the viper keys shared by the commands.
const (
	DefaultSeparator = " "
	DefaultMarker    = "*redacted*"
)

// FilterMode identifies which keep/drop predicate is active for a run.
// It is derived once from the configuration and never changes mid-run.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterUser
	FilterKeyword
	FilterUserKeyword
)

// String returns the string representation of a FilterMode.
func (m FilterMode) String() string {
	switch m {
	case FilterUser:
		return "user"
	case FilterKeyword:
		return "keyword"
	case FilterUserKeyword:
		return "user+keyword"
	default:
		return "none"
	}
}

// Config is the immutable per-run configuration consumed by the export
// pipeline.
type Config struct {
	InputPath  string
	OutputPath string

	// User and Keyword are stored lower-cased; matching is
	// case-insensitive everywhere. Whether they are active is tracked
	// separately so "filter by empty string" differs from "no filter".
	User    string
	Keyword string

	// HideWords is the ordered forbidden-word list; the first matching
	// word wins for a whole-token match.
	HideWords []string

	Separator string
	Marker    string

	// Reserved flags: recognized on the command line and carried here,
	// but without pipeline behavior until their semantics are settled.
	HideCCPN       bool
	ObfuscateUsers bool
	Report         bool

	hasUser    bool
	hasKeyword bool
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithUser keeps only messages sent by user. Matching is
// case-insensitive; the empty string is a valid (if unusual) sender.
func WithUser(user string) Option {
	return func(c *Config) {
		c.User = strings.ToLower(user)
		c.hasUser = true
	}
}

// WithKeyword keeps only messages whose content contains keyword.
func WithKeyword(keyword string) Option {
	return func(c *Config) {
		c.Keyword = strings.ToLower(keyword)
		c.hasKeyword = true
	}
}

// WithHideWords sets the forbidden words, preserving list order. Entries
// are trimmed and lower-cased; empty entries are dropped.
func WithHideWords(words []string) Option {
	return func(c *Config) {
		cleaned := lo.Map(words, func(w string, _ int) string {
			return strings.ToLower(strings.TrimSpace(w))
		})
		c.HideWords = lo.Filter(cleaned, func(w string, _ int) bool {
			return w != ""
		})
	}
}

// WithSeparator overrides the field separator used to split log lines
// and rejoin message content.
func WithSeparator(sep string) Option {
	return func(c *Config) {
		if sep != "" {
			c.Separator = sep
		}
	}
}

// WithMarker overrides the redaction marker.
func WithMarker(marker string) Option {
	return func(c *Config) {
		if marker != "" {
			c.Marker = marker
		}
	}
}

// WithReserved carries the flags that are accepted but not implemented.
func WithReserved(hideCCPN, obfuscateUsers, report bool) Option {
	return func(c *Config) {
		c.HideCCPN = hideCCPN
		c.ObfuscateUsers = obfuscateUsers
		c.Report = report
	}
}

// New builds a Config with defaults applied.
func New(inputPath, outputPath string, opts ...Option) Config {
	c := Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Separator:  DefaultSeparator,
		Marker:     DefaultMarker,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Mode reports which filter predicate is active.
func (c Config) Mode() FilterMode {
	switch {
	case c.hasUser && c.hasKeyword:
		return FilterUserKeyword
	case c.hasUser:
		return FilterUser
	case c.hasKeyword:
		return FilterKeyword
	default:
		return FilterNone
	}
}

// UserSet reports whether a user filter was requested.
func (c Config) UserSet() bool {
	return c.hasUser
}

// KeywordSet reports whether a keyword filter was requested.
func (c Config) KeywordSet() bool {
	return c.hasKeyword
}

// Redacts reports whether a forbidden-word list is configured.
func (c Config) Redacts() bool {
	return len(c.HideWords) > 0
}
