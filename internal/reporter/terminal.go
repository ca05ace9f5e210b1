package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/tellint/internal/analyzer"
	"github.com/pthm/tellint/internal/linter"
	"github.com/pthm/tellint/internal/ui"
)

// TerminalReporter outputs results to the terminal, styled when interactive
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter. A nil styles renders
// plain text.
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	if styles == nil {
		styles = ui.NewStyles(false)
	}
	return &TerminalReporter{w: w, styles: styles}
}

// Report writes one block per document, then a summary when there are several
func (r *TerminalReporter) Report(results []*linter.Result) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.w)
			fmt.Fprintln(r.w, r.styles.Separator.Render(strings.Repeat("─", 40)))
			fmt.Fprintln(r.w)
		}
		r.printResult(res)
	}

	if len(results) > 1 {
		r.printSummary(results)
	}
	return nil
}

func (r *TerminalReporter) printResult(res *linter.Result) {
	s := r.styles
	doc := res.Document

	// Header
	fmt.Fprintln(r.w, s.Header.Render("Document")+" "+s.Path.Render(doc.Path))
	fmt.Fprintf(r.w, "  characters: %d  lines: %d\n", doc.CharCount(), doc.LineCount())

	// Paragraphs
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Section.Render("Paragraphs"))
	fmt.Fprintf(r.w, "  count: %d\n", res.Stats.Count)
	fmt.Fprintf(r.w, "  average length: %d\n", res.Stats.AverageLength)
	fmt.Fprintf(r.w, "  short (under %d characters): %d\n", analyzer.ShortParagraphLength, res.Stats.ShortCount)

	// Pattern counts
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Section.Render("Pattern counts"))
	for _, row := range countRows(res) {
		fmt.Fprintf(r.w, "  %-18s %s\n", row.ID, row)
	}

	// Hit listings
	for _, sec := range sections(res) {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Section.Render(sec.Title))
		if len(sec.Hits) == 0 {
			fmt.Fprintf(r.w, "  %s\n", s.Muted.Render("none"))
			continue
		}
		for _, h := range sec.Hits {
			fmt.Fprintf(r.w, "  %s  %s", s.LineNo.Render(location(h.Hit)), truncate(h.Text))
			if h.Note != "" {
				fmt.Fprintf(r.w, "  %s", s.Muted.Render("("+h.Note+")"))
			}
			fmt.Fprintln(r.w)
		}
	}

	// Verdict
	fmt.Fprintln(r.w)
	if res.Pass() {
		fmt.Fprintln(r.w, s.Pass.Render(r.icon(s.IconPass)+"PASS"))
		return
	}
	fmt.Fprintln(r.w, s.Fail.Render(r.icon(s.IconFail)+"FAIL"))
	for _, issue := range res.Verdict.Issues {
		fmt.Fprintf(r.w, "  %s %s\n", s.IconBullet, issue.Message)
	}
}

// icon returns the icon followed by a space when styling is enabled. Plain
// output keeps the bare PASS/FAIL word.
func (r *TerminalReporter) icon(icon string) string {
	if !r.styles.Enabled() {
		return ""
	}
	return icon + " "
}

func (r *TerminalReporter) printSummary(results []*linter.Result) {
	summary := ComputeSummary(results)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Separator.Render(strings.Repeat("─", 40)))

	passed := r.styles.Pass.Render(fmt.Sprintf("%d passed", summary.Passed))
	failed := fmt.Sprintf("%d failed", summary.Failed)
	if summary.Failed > 0 {
		failed = r.styles.Fail.Render(failed)
	}
	fmt.Fprintf(r.w, "Linted %d documents: %s, %s (%d issues)\n",
		summary.Documents, passed, failed, summary.Issues)
}
