package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mholden/chatex/internal/config"
	"github.com/mholden/chatex/internal/parse"
)

const sampleChat = `My Chat
1448470901 bob Hello there, Alice!
1448470905 alice Hi Bob, how's it going?
1448470912 bob I'm good thanks`

type exportedMessage struct {
	Timestamp int64  `json:"timestamp"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
}

type exportedConversation struct {
	Name     string            `json:"name"`
	Messages []exportedMessage `json:"messages"`
}

func writeSample(t *testing.T, content string) (inPath, outPath string) {
	dir := t.TempDir()
	inPath = filepath.Join(dir, "chat.txt")
	outPath = filepath.Join(dir, "chat.json")
	if err := os.WriteFile(inPath, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return inPath, outPath
}

func readExport(t *testing.T, path string) exportedConversation {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var conv exportedConversation
	if err := json.Unmarshal(data, &conv); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return conv
}

func TestRunKeywordFilter(t *testing.T) {
	inPath, outPath := writeSample(t, sampleChat)

	var out bytes.Buffer
	cfg := config.New(inPath, outPath, config.WithKeyword("how"))
	if err := Run(cfg, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	conv := readExport(t, outPath)
	if conv.Name != "My Chat" {
		t.Errorf("Name = %q, want %q", conv.Name, "My Chat")
	}
	if len(conv.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(conv.Messages))
	}
	if conv.Messages[0].Sender != "alice" {
		t.Errorf("Sender = %q, want %q", conv.Messages[0].Sender, "alice")
	}
	if conv.Messages[0].Content != "Hi Bob, how's it going?" {
		t.Errorf("Content = %q, want %q", conv.Messages[0].Content, "Hi Bob, how's it going?")
	}

	if !strings.Contains(out.String(), "(keyword: how)") {
		t.Errorf("summary %q does not mention the keyword filter", out.String())
	}
}

func TestRunRedaction(t *testing.T) {
	inPath, outPath := writeSample(t, sampleChat)

	var out bytes.Buffer
	cfg := config.New(inPath, outPath, config.WithHideWords([]string{"alice", "good"}))
	if err := Run(cfg, &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	conv := readExport(t, outPath)
	want := []string{
		"Hello there, *redacted*!",
		"Hi Bob, how's it going?",
		"I'm *redacted* thanks",
	}
	if len(conv.Messages) != len(want) {
		t.Fatalf("len(Messages) = %d, want %d", len(conv.Messages), len(want))
	}
	for i, w := range want {
		if conv.Messages[i].Content != w {
			t.Errorf("Messages[%d].Content = %q, want %q", i, conv.Messages[i].Content, w)
		}
	}

	// sender is data, not content: never redacted
	if conv.Messages[1].Sender != "alice" {
		t.Errorf("Sender = %q, want %q", conv.Messages[1].Sender, "alice")
	}
}

func TestRunOrderPreserved(t *testing.T) {
	inPath, outPath := writeSample(t, sampleChat)

	var out bytes.Buffer
	if err := Run(config.New(inPath, outPath), &out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	conv := readExport(t, outPath)
	timestamps := []int64{1448470901, 1448470905, 1448470912}
	for i, want := range timestamps {
		if conv.Messages[i].Timestamp != want {
			t.Errorf("Messages[%d].Timestamp = %d, want %d", i, conv.Messages[i].Timestamp, want)
		}
	}
}

func TestRunInputMissing(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.json"))

	var out bytes.Buffer
	err := Run(cfg, &out)
	if err == nil {
		t.Fatal("Run() error = nil, want input-not-found error")
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("error %q does not name the input path", err)
	}
}

func TestRunEmptyInput(t *testing.T) {
	inPath, outPath := writeSample(t, "")

	var out bytes.Buffer
	err := Run(config.New(inPath, outPath), &out)
	if !errors.Is(err, parse.ErrEmptyInput) {
		t.Fatalf("Run() error = %v, want ErrEmptyInput", err)
	}
	if out.Len() != 0 {
		t.Errorf("summary written despite failed run: %q", out.String())
	}
}

func TestRunOutputNotWritable(t *testing.T) {
	inPath, _ := writeSample(t, sampleChat)
	outPath := filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")

	var out bytes.Buffer
	err := Run(config.New(inPath, outPath), &out)
	if err == nil {
		t.Fatal("Run() error = nil, want output write error")
	}
	if !strings.Contains(err.Error(), outPath) {
		t.Errorf("error %q does not name the output path", err)
	}
}
