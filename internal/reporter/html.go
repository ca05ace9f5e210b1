package reporter

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/pthm/tellint/internal/linter"
)

const htmlHeader = `<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; line-height: 1.6; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.75rem; text-align: left; }
code { color: #666; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTMLReporter renders the markdown report to a standalone HTML page
type HTMLReporter struct {
	w  io.Writer
	md goldmark.Markdown
}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter(w io.Writer) *HTMLReporter {
	return &HTMLReporter{
		w:  w,
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Report writes the HTML report
func (r *HTMLReporter) Report(results []*linter.Result) error {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(renderMarkdown(results)), &body); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	title := "Prose lint report"
	if len(results) == 1 {
		title += ": " + results[0].Document.Path
	}

	if _, err := fmt.Fprintf(r.w, htmlHeader, html.EscapeString(title)); err != nil {
		return err
	}
	if _, err := body.WriteTo(r.w); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, htmlFooter)
	return err
}
