package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/reporter"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in configuration presets",
	Long: `List the built-in presets. A preset is selected with --preset or the
"preset" key of a config file, and its values can be overridden by the
config file and by flags.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	RootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	u := newUI(cmd)
	presets := config.Presets()

	// Raw formats get YAML that can be pasted into a config file
	if format != reporter.FormatTerminal {
		enc := yaml.NewEncoder(u.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(presets); err != nil {
			return fmt.Errorf("encoding presets: %w", err)
		}
		return enc.Close()
	}

	s := u.Styles
	for _, p := range presets {
		name := p.Name
		if name == config.DefaultPreset {
			name += " (default)"
		}
		fmt.Fprintln(u.Writer, s.Header.Render(name))
		fmt.Fprintf(u.Writer, "  %s\n", p.Description)
		fmt.Fprintf(u.Writer, "  colon_budget: %d  colon_exceptions_quote_only: %t  skip_title_line: %t\n",
			p.ColonBudget, p.ColonExceptionsQuoteOnly, p.SkipTitleLine)
	}
	return nil
}
