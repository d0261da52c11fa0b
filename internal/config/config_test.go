package config

import (
	"reflect"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New("in.txt", "out.json")

	if cfg.Separator != DefaultSeparator {
		t.Errorf("Separator = %q, want %q", cfg.Separator, DefaultSeparator)
	}
	if cfg.Marker != DefaultMarker {
		t.Errorf("Marker = %q, want %q", cfg.Marker, DefaultMarker)
	}
	if cfg.Mode() != FilterNone {
		t.Errorf("Mode() = %v, want FilterNone", cfg.Mode())
	}
	if cfg.Redacts() {
		t.Error("Redacts() = true, want false")
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want FilterMode
	}{
		{"none", nil, FilterNone},
		{"user", []Option{WithUser("Alice")}, FilterUser},
		{"keyword", []Option{WithKeyword("pie")}, FilterKeyword},
		{"both", []Option{WithUser("Alice"), WithKeyword("pie")}, FilterUserKeyword},
		// an explicitly empty user is still a user filter, not "no filter"
		{"empty user", []Option{WithUser("")}, FilterUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New("in", "out", tt.opts...)
			if got := cfg.Mode(); got != tt.want {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserAndKeywordLowerCased(t *testing.T) {
	cfg := New("in", "out", WithUser("Alice"), WithKeyword("PIE"))

	if cfg.User != "alice" {
		t.Errorf("User = %q, want %q", cfg.User, "alice")
	}
	if cfg.Keyword != "pie" {
		t.Errorf("Keyword = %q, want %q", cfg.Keyword, "pie")
	}
}

func TestWithHideWords(t *testing.T) {
	cfg := New("in", "out", WithHideWords([]string{" Alice ", "", "GOOD", " "}))

	want := []string{"alice", "good"}
	if !reflect.DeepEqual(cfg.HideWords, want) {
		t.Errorf("HideWords = %q, want %q", cfg.HideWords, want)
	}
	if !cfg.Redacts() {
		t.Error("Redacts() = false, want true")
	}
}

func TestWithSeparatorEmptyKeepsDefault(t *testing.T) {
	cfg := New("in", "out", WithSeparator(""), WithMarker(""))

	if cfg.Separator != DefaultSeparator {
		t.Errorf("Separator = %q, want default", cfg.Separator)
	}
	if cfg.Marker != DefaultMarker {
		t.Errorf("Marker = %q, want default", cfg.Marker)
	}
}

func TestFilterModeString(t *testing.T) {
	tests := []struct {
		mode FilterMode
		want string
	}{
		{FilterNone, "none"},
		{FilterUser, "user"},
		{FilterKeyword, "keyword"},
		{FilterUserKeyword, "user+keyword"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
