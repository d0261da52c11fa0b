// Package parse reads a conversation log file into the chat model.
//
// The input is line-oriented: the first line is the conversation name,
// every following line is one message of the form
//
//	<epoch-seconds><sep><sender>[<sep><content fields...>]
//
// Malformed lines abort the whole run rather than being skipped, so the
// output always represents the full input minus explicit filtering.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mholden/chatex/internal/chat"
	"github.com/mholden/chatex/internal/config"
	"github.com/mholden/chatex/internal/filter"
)

// ErrEmptyInput is returned for an input file with no name line.
var ErrEmptyInput = errors.New("input file is empty: missing conversation name line")

// LineError describes a structurally invalid message line.
type LineError struct {
	Line   int // 1-based line number in the input file
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Parser reads conversation files with a fixed field separator, dropping
// messages that fail the active filter.
type Parser struct {
	sep    string
	filter *filter.Filter
}

// New creates a Parser for the given configuration.
func New(cfg config.Config) *Parser {
	return &Parser{
		sep:    cfg.Separator,
		filter: filter.New(cfg),
	}
}

// ParseFile opens path and parses the conversation from it.
func (p *Parser) ParseFile(path string) (chat.Conversation, error) {
	f, err := os.Open(path)
	if err != nil {
		return chat.Conversation{}, fmt.Errorf("input file %q: %w", path, err)
	}
	defer f.Close()

	conv, err := p.Parse(f)
	if err != nil {
		return chat.Conversation{}, fmt.Errorf("input file %q: %w", path, err)
	}
	return conv, nil
}

// Parse reads a conversation from r. Surviving messages keep their input
// order.
func (p *Parser) Parse(r io.Reader) (chat.Conversation, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return chat.Conversation{}, err
		}
		return chat.Conversation{}, ErrEmptyInput
	}
	conv := chat.Conversation{Name: scanner.Text()}

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		msg, keep, err := p.parseLine(scanner.Text(), lineNum)
		if err != nil {
			return chat.Conversation{}, err
		}
		if keep {
			conv.Messages = append(conv.Messages, msg)
		}
	}
	if err := scanner.Err(); err != nil {
		return chat.Conversation{}, err
	}

	return conv, nil
}

// parseLine splits one message line into its fields and evaluates the
// filter predicate against them.
func (p *Parser) parseLine(line string, lineNum int) (chat.Message, bool, error) {
	fields := strings.Split(line, p.sep)
	if len(fields) < 2 {
		return chat.Message{}, false, &LineError{
			Line:   lineNum,
			Reason: fmt.Sprintf("expected at least 2 fields, got %d", len(fields)),
		}
	}

	secs, err := strconv.ParseUint(fields[0], 10, 63)
	if err != nil {
		return chat.Message{}, false, &LineError{
			Line:   lineNum,
			Reason: fmt.Sprintf("invalid timestamp %q", fields[0]),
		}
	}

	sender := fields[1]
	content := strings.Join(fields[2:], p.sep)
	if !p.filter.Keep(sender, content) {
		return chat.Message{}, false, nil
	}

	return chat.Message{
		Timestamp: chat.FromEpoch(int64(secs)),
		Sender:    sender,
		Content:   content,
	}, true, nil
}
