package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pthm/tellint/internal/analyzer"
	"github.com/pthm/tellint/internal/linter"
	"github.com/pthm/tellint/internal/patterns"
	"github.com/pthm/tellint/internal/rules"
	"github.com/pthm/tellint/internal/ui"
	"github.com/pthm/tellint/internal/verdict"
)

// Reporter renders already-computed lint results. Reporters contain no rule
// logic.
type Reporter interface {
	Report(results []*linter.Result) error
}

// Format names accepted by New
const (
	FormatTerminal = "terminal"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists the supported output formats
var Formats = []string{FormatTerminal, FormatJSON, FormatMarkdown, FormatHTML}

// Summary holds summary statistics for a lint run
type Summary struct {
	Documents int `json:"documents"`
	Passed    int `json:"passed"`
	Failed    int `json:"failed"`
	Issues    int `json:"issues"`
}

// ComputeSummary computes summary statistics from results
func ComputeSummary(results []*linter.Result) Summary {
	s := Summary{Documents: len(results)}
	for _, r := range results {
		if r.Pass() {
			s.Passed++
		} else {
			s.Failed++
		}
		s.Issues += len(r.Verdict.Issues)
	}
	return s
}

// maxContextRunes bounds how much of an offending line is echoed
const maxContextRunes = 120

// listedHit is a hit as shown in a report section
type listedHit struct {
	rules.Hit
	Note string
}

// section is a line-referenced hit listing
type section struct {
	Title string
	Hits  []listedHit
}

// sections builds the hit listings for a result in report order. Direct
// address and colon listings are always present; short paragraphs and the
// warning listings are present only when they have hits.
func sections(r *linter.Result) []section {
	e := r.Evaluation

	var direct []listedHit
	for _, id := range []patterns.RuleID{patterns.ButRather, patterns.YouWill} {
		for _, h := range e.Result(id).Hits {
			direct = append(direct, listedHit{Hit: h, Note: string(id)})
		}
	}
	sort.SliceStable(direct, func(i, j int) bool {
		if direct[i].Line != direct[j].Line {
			return direct[i].Line < direct[j].Line
		}
		return direct[i].Column < direct[j].Column
	})

	colon := e.Result(patterns.Colon)
	var usage []listedHit
	for _, h := range colon.Hits {
		lh := listedHit{Hit: h}
		if colon.Exemptible && !colon.IsViolation(h) {
			lh.Note = "quoted speech, exempt"
		}
		usage = append(usage, lh)
	}

	out := []section{
		{Title: "Direct address", Hits: direct},
		{Title: "Colon usage", Hits: usage},
		{Title: "Colon violations", Hits: plain(colon.Violations)},
	}

	if short := shortParagraphs(r.Stats); len(short) > 0 {
		out = append(out, section{Title: "Short paragraphs", Hits: short})
	}

	warnings := []struct {
		title string
		id    patterns.RuleID
	}{
		{"Exclamation marks", patterns.Exclamation},
		{"Em-dashes", patterns.EmDash},
		{"Metaphor markers", patterns.MetaphorMarkers},
		{"Double-adjective connectives", patterns.DoubleAdjective},
	}
	for _, w := range warnings {
		res := e.Result(w.id)
		if res.Count() == 0 {
			continue
		}
		out = append(out, section{Title: w.title, Hits: plain(res.Hits)})
	}

	return out
}

// shortParagraphs lists paragraphs under analyzer.ShortParagraphLength by
// their first line, noting their length.
func shortParagraphs(stats analyzer.Stats) []listedHit {
	var out []listedHit
	for _, p := range stats.Paragraphs {
		if !p.IsShort() {
			continue
		}
		out = append(out, listedHit{
			Hit: rules.Hit{
				Rule:   patterns.RuleID(verdict.ShortParagraphRule),
				Line:   p.StartLine,
				Column: 1,
				Text:   firstLine(p.Text),
			},
			Note: fmt.Sprintf("%d characters", p.Length),
		})
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], "\r")
	}
	return s
}

func plain(hits []rules.Hit) []listedHit {
	out := make([]listedHit, len(hits))
	for i, h := range hits {
		out[i] = listedHit{Hit: h}
	}
	return out
}

// countRow is one line of the pattern count table
type countRow struct {
	ID         patterns.RuleID
	Count      int
	Violations int
	Exemptible bool
}

func countRows(r *linter.Result) []countRow {
	rows := make([]countRow, 0, len(r.Evaluation.Results))
	for _, res := range r.Evaluation.Results {
		rows = append(rows, countRow{
			ID:         res.Rule,
			Count:      res.Count(),
			Violations: res.ViolationCount(),
			Exemptible: res.Exemptible,
		})
	}
	return rows
}

func (c countRow) String() string {
	if c.Exemptible {
		return fmt.Sprintf("%d (violations: %d)", c.Count, c.Violations)
	}
	return fmt.Sprintf("%d", c.Count)
}

// truncate shortens s to maxContextRunes characters
func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxContextRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxContextRunes]) + "…"
}

// location formats a hit position as L<line>:<column>
func location(h rules.Hit) string {
	return fmt.Sprintf("L%d:%d", h.Line, h.Column)
}

// NormalizeFormat maps a user-supplied format name to one of Formats.
// Names are case-insensitive, "md" is markdown and empty is terminal.
func NormalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "":
		return FormatTerminal, nil
	case "md":
		return FormatMarkdown, nil
	case FormatTerminal, FormatJSON, FormatMarkdown, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// New returns the reporter for a format name
func New(format string, w io.Writer, styles *ui.Styles) (Reporter, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatJSON:
		return NewJSONReporter(w), nil
	case FormatMarkdown:
		return NewMarkdownReporter(w), nil
	case FormatHTML:
		return NewHTMLReporter(w), nil
	default:
		return NewTerminalReporter(w, styles), nil
	}
}
