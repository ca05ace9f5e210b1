package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/tellint/internal/analyzer"
	"github.com/pthm/tellint/internal/linter"
)

// MarkdownReporter outputs results as a markdown document
type MarkdownReporter struct {
	w io.Writer
}

// NewMarkdownReporter creates a new markdown reporter
func NewMarkdownReporter(w io.Writer) *MarkdownReporter {
	return &MarkdownReporter{w: w}
}

// Report writes the markdown report
func (r *MarkdownReporter) Report(results []*linter.Result) error {
	_, err := io.WriteString(r.w, renderMarkdown(results))
	return err
}

func renderMarkdown(results []*linter.Result) string {
	var b strings.Builder

	b.WriteString("# Prose lint report\n\n")

	for _, res := range results {
		writeMarkdownResult(&b, res)
	}

	if len(results) > 1 {
		s := ComputeSummary(results)
		b.WriteString("## Summary\n\n")
		fmt.Fprintf(&b, "Linted %d documents: %d passed, %d failed (%d issues)\n", s.Documents, s.Passed, s.Failed, s.Issues)
	}

	return b.String()
}

func writeMarkdownResult(b *strings.Builder, res *linter.Result) {
	doc := res.Document

	verdict := "PASS"
	if !res.Pass() {
		verdict = "FAIL"
	}
	fmt.Fprintf(b, "## %s: %s\n\n", escapeMarkdown(doc.Path), verdict)
	fmt.Fprintf(b, "- Characters: %d\n", doc.CharCount())
	fmt.Fprintf(b, "- Lines: %d\n", doc.LineCount())
	fmt.Fprintf(b, "- Paragraphs: %d (average length %d, %d under %d characters)\n\n",
		res.Stats.Count, res.Stats.AverageLength, res.Stats.ShortCount, analyzer.ShortParagraphLength)

	b.WriteString("### Pattern counts\n\n")
	b.WriteString("| Rule | Count |\n")
	b.WriteString("| --- | --- |\n")
	for _, row := range countRows(res) {
		fmt.Fprintf(b, "| %s | %s |\n", row.ID, row)
	}
	b.WriteString("\n")

	for _, sec := range sections(res) {
		fmt.Fprintf(b, "### %s\n\n", sec.Title)
		if len(sec.Hits) == 0 {
			b.WriteString("None.\n\n")
			continue
		}
		for _, h := range sec.Hits {
			fmt.Fprintf(b, "- `%s` %s", location(h.Hit), escapeMarkdown(truncate(h.Text)))
			if h.Note != "" {
				fmt.Fprintf(b, " _(%s)_", h.Note)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(res.Verdict.Issues) > 0 {
		b.WriteString("### Issues\n\n")
		for _, issue := range res.Verdict.Issues {
			fmt.Fprintf(b, "- **%s**: %s\n", issue.Rule, escapeMarkdown(issue.Message))
		}
		b.WriteString("\n")
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
)

// escapeMarkdown escapes characters that would otherwise be read as markup
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
