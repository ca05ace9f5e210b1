package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/tellint/internal/analyzer"
	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/linter"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Documents []JSONDocument `json:"documents"`
	Summary   Summary        `json:"summary"`
}

// JSONDocument is the report for one document
type JSONDocument struct {
	Path       string         `json:"path"`
	Characters int            `json:"characters"`
	Lines      int            `json:"lines"`
	Config     config.Config  `json:"config"`
	Paragraphs JSONParagraphs `json:"paragraphs"`
	Patterns   []JSONPattern  `json:"patterns"`
	Sections   []JSONSection  `json:"sections"`
	Pass       bool           `json:"pass"`
	Issues     []JSONIssue    `json:"issues"`
}

// JSONParagraphs holds paragraph statistics
type JSONParagraphs struct {
	Count          int `json:"count"`
	AverageLength  int `json:"averageLength"`
	ShortCount     int `json:"shortCount"`
	ShortThreshold int `json:"shortThreshold"`
}

// JSONPattern is one row of the pattern count table
type JSONPattern struct {
	Rule       string `json:"rule"`
	Count      int    `json:"count"`
	Violations *int   `json:"violations,omitempty"`
}

// JSONSection is a line-referenced hit listing
type JSONSection struct {
	Title string    `json:"title"`
	Hits  []JSONHit `json:"hits"`
}

// JSONHit is one pattern match
type JSONHit struct {
	Rule    string `json:"rule"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Context string `json:"context"`
	Note    string `json:"note,omitempty"`
}

// JSONIssue is one failed check
type JSONIssue struct {
	Rule     string `json:"rule"`
	Observed int    `json:"observed"`
	Limit    int    `json:"limit"`
	Message  string `json:"message"`
}

// Report outputs results as JSON
func (r *JSONReporter) Report(results []*linter.Result) error {
	output := JSONOutput{
		Documents: make([]JSONDocument, 0, len(results)),
		Summary:   ComputeSummary(results),
	}

	for _, res := range results {
		output.Documents = append(output.Documents, toJSON(res))
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}

func toJSON(res *linter.Result) JSONDocument {
	doc := JSONDocument{
		Path:       res.Document.Path,
		Characters: res.Document.CharCount(),
		Lines:      res.Document.LineCount(),
		Config:     res.Config,
		Paragraphs: JSONParagraphs{
			Count:          res.Stats.Count,
			AverageLength:  res.Stats.AverageLength,
			ShortCount:     res.Stats.ShortCount,
			ShortThreshold: analyzer.ShortParagraphLength,
		},
		Patterns: []JSONPattern{},
		Sections: []JSONSection{},
		Pass:     res.Pass(),
		Issues:   []JSONIssue{},
	}

	for _, row := range countRows(res) {
		p := JSONPattern{Rule: string(row.ID), Count: row.Count}
		if row.Exemptible {
			v := row.Violations
			p.Violations = &v
		}
		doc.Patterns = append(doc.Patterns, p)
	}

	for _, sec := range sections(res) {
		js := JSONSection{Title: sec.Title, Hits: []JSONHit{}}
		for _, h := range sec.Hits {
			js.Hits = append(js.Hits, JSONHit{
				Rule:    string(h.Rule),
				Line:    h.Line,
				Column:  h.Column,
				Context: h.Text,
				Note:    h.Note,
			})
		}
		doc.Sections = append(doc.Sections, js)
	}

	for _, issue := range res.Verdict.Issues {
		doc.Issues = append(doc.Issues, JSONIssue{
			Rule:     issue.Rule,
			Observed: issue.Observed,
			Limit:    issue.Limit,
			Message:  issue.Message,
		})
	}

	return doc
}
