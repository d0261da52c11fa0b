// Package export runs the full pipeline: parse, redact, write, report.
package export

import (
	"fmt"
	"io"

	"github.com/mholden/chatex/internal/config"
	"github.com/mholden/chatex/internal/output"
	"github.com/mholden/chatex/internal/parse"
	"github.com/mholden/chatex/internal/redact"
)

// Run executes one export described by cfg and prints the run summary to
// out. The pipeline is sequential: read and filter the input, redact the
// surviving messages, write the JSON document. Errors abort the run; a
// partially written output file is not reliable.
func Run(cfg config.Config, out io.Writer) error {
	conv, err := parse.New(cfg).ParseFile(cfg.InputPath)
	if err != nil {
		return err
	}

	redact.New(cfg).Apply(conv.Messages)

	if err := output.WriteFile(cfg.OutputPath, conv); err != nil {
		return err
	}

	fmt.Fprintln(out, output.Colorize(out, output.Summary(cfg)))
	return nil
}
