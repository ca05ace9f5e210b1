package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/tellint/internal/logger"
	"github.com/pthm/tellint/internal/reporter"
	"github.com/pthm/tellint/internal/ui"
)

var (
	// Global flags
	verbose   bool
	format    string
	logFormat string
)

// RootCmd is the tellint command tree
var RootCmd = &cobra.Command{
	Use:   "tellint",
	Short: "A stylistic linter for Chinese prose",
	Long: `tellint scans Chinese prose for the surface patterns of machine-written
text: quotable "not X but Y" constructs, second-person address, colon
overuse, fragmented paragraphs and stock transition phrases.

Each document gets per-pattern counts with line references and a
PASS/FAIL verdict against fixed thresholds.`,
	SilenceUsage:      true,
	PersistentPreRunE: normalizeFlags,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json, markdown, html)")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format on stderr (text, json)")
}

// normalizeFlags canonicalizes the global flags once, so every command sees
// the same format names.
func normalizeFlags(cmd *cobra.Command, args []string) error {
	f, err := reporter.NormalizeFormat(format)
	if err != nil {
		return err
	}
	format = f

	switch lf := strings.ToLower(strings.TrimSpace(logFormat)); lf {
	case "", "text":
		logFormat = "text"
	case "json":
		logFormat = lf
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", logFormat)
	}
	return nil
}

// newUI builds the UI for the command's output streams
func newUI(cmd *cobra.Command) *ui.UI {
	return ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
}

// newLogger builds the stderr logger; -v lowers the level to debug
func newLogger(cmd *cobra.Command) logger.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		JSON:   logFormat == "json",
	})
}
