// Package output writes exported conversations and the run summary.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/mholden/chatex/internal/chat"
	"github.com/mholden/chatex/internal/config"
)

// Writer serializes conversations as indented JSON.
type Writer struct {
	w io.Writer
}

// New creates a new output Writer.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// message is the wire form of one chat entry.
type message struct {
	Timestamp chat.UnixTime `json:"timestamp"`
	Sender    string        `json:"sender"`
	Content   string        `json:"content"`
}

// conversation is the wire form of the exported document.
type conversation struct {
	Name     string    `json:"name"`
	Messages []message `json:"messages"`
}

// WriteConversation writes conv to the underlying writer as an indented
// JSON document. Timestamps are numeric epoch seconds, and an empty
// conversation still carries an empty messages array.
func (wr *Writer) WriteConversation(conv chat.Conversation) error {
	doc := conversation{
		Name: conv.Name,
		Messages: lo.Map(conv.Messages, func(m chat.Message, _ int) message {
			return message{Timestamp: m.Timestamp, Sender: m.Sender, Content: m.Content}
		}),
	}

	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteFile creates (or truncates) path and writes conv to it. The file
// is closed on every path; a partially written file after an error is
// not trustworthy.
func WriteFile(path string, conv chat.Conversation) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output file %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("output file %q: %w", path, cerr)
		}
	}()

	if err := New(f).WriteConversation(conv); err != nil {
		return fmt.Errorf("output file %q: %w", path, err)
	}
	return nil
}

// Summary renders the one-line run report naming the paths and active
// filters. It is observational only, not part of the data contract.
func Summary(cfg config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Conversation exported from %q to %q", cfg.InputPath, cfg.OutputPath)
	if cfg.UserSet() {
		fmt.Fprintf(&b, " (user: %s)", cfg.User)
	}
	if cfg.KeywordSet() {
		fmt.Fprintf(&b, " (keyword: %s)", cfg.Keyword)
	}
	if cfg.Redacts() {
		fmt.Fprintf(&b, " (hidden words: %s)", strings.Join(cfg.HideWords, ", "))
	}
	return b.String()
}
