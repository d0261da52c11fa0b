package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mholden/chatex/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <input> <output>",
	Short: "Re-export a conversation whenever the log file changes",
	Long: `Run an export immediately, then keep watching the input file and
re-export on every change. Useful while a chat log is still being written.

Accepts the same filtering and redaction flags as export.

Examples:
  chatex watch chat.txt chat.json
  chatex watch -u bob -w pie chat.txt chat.json`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	addExportFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd, args)

	w := watch.New(watch.Options{
		Config: cfg,
		Out:    cmd.OutOrStdout(),
		Errs:   cmd.ErrOrStderr(),
	})
	return w.Run(cmd.Context())
}
