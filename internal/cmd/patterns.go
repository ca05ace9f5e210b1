package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/tellint/internal/patterns"
	"github.com/pthm/tellint/internal/reporter"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the patterns tellint counts",
	Args:  cobra.NoArgs,
	RunE:  runPatterns,
}

func init() {
	RootCmd.AddCommand(patternsCmd)
}

type patternEntry struct {
	ID          string   `json:"id"`
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Phrases     []string `json:"phrases,omitempty"`
	Expr        string   `json:"expr,omitempty"`
}

func runPatterns(cmd *cobra.Command, args []string) error {
	u := newUI(cmd)
	all := patterns.Default().All()

	if format == reporter.FormatJSON {
		entries := make([]patternEntry, 0, len(all))
		for _, p := range all {
			e := patternEntry{
				ID:          string(p.ID),
				Group:       string(p.Group),
				Description: p.Description,
				Phrases:     p.Phrases,
			}
			if len(p.Phrases) == 0 {
				e.Expr = p.Expr
			}
			entries = append(entries, e)
		}
		encoder := json.NewEncoder(u.Writer)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(entries)
	}

	s := u.Styles
	for i, p := range all {
		if i > 0 {
			fmt.Fprintln(u.Writer)
		}
		fmt.Fprintf(u.Writer, "%s %s\n", s.Header.Render(string(p.ID)), s.Muted.Render("["+string(p.Group)+"]"))
		fmt.Fprintf(u.Writer, "  %s\n", p.Description)
		if len(p.Phrases) > 0 {
			fmt.Fprintf(u.Writer, "  %s %s\n", s.Info.Render("phrases:"), strings.Join(p.Phrases, " "))
		} else {
			fmt.Fprintf(u.Writer, "  %s %s\n", s.Info.Render("expr:"), p.Expr)
		}
	}
	return nil
}
