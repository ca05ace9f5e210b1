package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/document"
	"github.com/pthm/tellint/internal/linter"
)

var body = strings.Repeat("风吹过山岗，", 20)

func lint(path, text string) *linter.Result {
	return linter.Analyze(document.New(path, text), config.Defaults())
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"terminal", false},
		{"json", false},
		{"JSON", false},
		{"markdown", false},
		{"md", false},
		{"html", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, err := New(tt.format, &bytes.Buffer{}, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", FormatTerminal, false},
		{"TERMINAL", FormatTerminal, false},
		{" Json ", FormatJSON, false},
		{"md", FormatMarkdown, false},
		{"MD", FormatMarkdown, false},
		{"html", FormatHTML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTerminalReporter_Pass(t *testing.T) {
	res := lint("clean.txt", "他说：“走吧。”"+body)

	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf, nil).Report([]*linter.Result{res}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Document clean.txt",
		"Paragraphs",
		"Pattern counts",
		"  colon" + strings.Repeat(" ", 14) + "1 (violations: 0)",
		"Direct address\n  none",
		"Colon usage\n  L1:3",
		"(quoted speech, exempt)",
		"Colon violations\n  none",
		"PASS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	for _, absent := range []string{"Short paragraphs", "Exclamation marks", "Em-dashes", "Metaphor markers", "FAIL"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should not contain %q:\n%s", absent, out)
		}
	}
}

func TestTerminalReporter_Fail(t *testing.T) {
	text := "不是风，而是雨。" + body + "\n\n你会明白的。" + body + "\n\n时间：三点" + body
	res := lint("bad.txt", text)

	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf, nil).Report([]*linter.Result{res}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"L1:1",
		"(but_rather)",
		"(you_will)",
		"Colon violations\n  L5:3",
		"FAIL",
		"- non-quote colon usage detected",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporter_ShortParagraphListing(t *testing.T) {
	text := "第一段。\n\n第二段。\n\n第三段。\n\n第四段。\n\n第五段。"
	res := lint("short.txt", text)

	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf, nil).Report([]*linter.Result{res}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Short paragraphs\n  L1:1  第一段。  (4 characters)",
		"  L3:1  第二段。",
		"  L5:1  第三段。",
		"  L7:1  第四段。",
		"  L9:1  第五段。",
		"FAIL",
		"short paragraph count 5 reaches limit 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporter_EmDashListing(t *testing.T) {
	text := "他来了——又走了——" + body + "\n\n风停了——雨停了——" + body
	res := lint("dash.txt", text)

	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf, nil).Report([]*linter.Result{res}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Em-dashes") {
		t.Fatalf("output missing em-dash section:\n%s", out)
	}
	section := out[strings.Index(out, "Em-dashes"):]
	if got := strings.Count(section, "L1:") + strings.Count(section, "L3:"); got != 4 {
		t.Errorf("listed em-dash hits = %d, want 4:\n%s", got, section)
	}
	if !strings.Contains(out, "FAIL") {
		t.Error("four em-dashes should fail")
	}
}

func TestTerminalReporter_Summary(t *testing.T) {
	results := []*linter.Result{
		lint("a.txt", "他说：“走吧。”"+body),
		lint("b.txt", "时间：三点"+body),
	}

	var buf bytes.Buffer
	if err := NewTerminalReporter(&buf, nil).Report(results); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Linted 2 documents: 1 passed, 1 failed (1 issues)") {
		t.Errorf("missing summary line:\n%s", buf.String())
	}
}

func TestJSONReporter(t *testing.T) {
	results := []*linter.Result{
		lint("a.txt", "他说：“走吧。”"+body),
		lint("b.txt", "时间：三点"+body),
	}

	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(results); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if len(out.Documents) != 2 {
		t.Fatalf("documents = %d, want 2", len(out.Documents))
	}
	if out.Summary != (Summary{Documents: 2, Passed: 1, Failed: 1, Issues: 1}) {
		t.Errorf("summary = %+v", out.Summary)
	}

	a, b := out.Documents[0], out.Documents[1]
	if a.Path != "a.txt" || !a.Pass {
		t.Errorf("first document = %s pass=%v, want a.txt pass", a.Path, a.Pass)
	}
	if b.Pass || len(b.Issues) != 1 || b.Issues[0].Rule != "colon_non_quote" {
		t.Errorf("second document issues = %+v", b.Issues)
	}

	var colon *JSONPattern
	for i := range a.Patterns {
		if a.Patterns[i].Rule == "colon" {
			colon = &a.Patterns[i]
		}
	}
	if colon == nil || colon.Count != 1 || colon.Violations == nil || *colon.Violations != 0 {
		t.Errorf("colon pattern = %+v, want count 1 with 0 violations", colon)
	}
	if a.Config.ColonBudget != 2 || !a.Config.ColonExceptionsQuoteOnly {
		t.Errorf("config = %+v, want defaults", a.Config)
	}
	if !strings.Contains(buf.String(), `"colonBudget": 2`) {
		t.Errorf("config keys should be camelCase:\n%s", buf.String())
	}
	if a.Paragraphs.ShortThreshold != 100 {
		t.Errorf("short threshold = %d, want 100", a.Paragraphs.ShortThreshold)
	}
}

func TestMarkdownReporter(t *testing.T) {
	res := lint("notes_1.txt", "时间：三点"+body)

	var buf bytes.Buffer
	if err := NewMarkdownReporter(&buf).Report([]*linter.Result{res}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`## notes\_1.txt: FAIL`,
		"| Rule | Count |",
		"| colon | 1 (violations: 1) |",
		"### Colon violations",
		"- `L1:3`",
		"- **colon_non_quote**: non-quote colon usage detected",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownReporter_ShortParagraphs(t *testing.T) {
	res := lint("short.txt", "标题\n\n"+body)

	var buf bytes.Buffer
	if err := NewMarkdownReporter(&buf).Report([]*linter.Result{res}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	if !strings.Contains(buf.String(), "### Short paragraphs\n\n- `L1:1` 标题 _(2 characters)_") {
		t.Errorf("markdown missing short paragraph listing:\n%s", buf.String())
	}
}

func TestHTMLReporter(t *testing.T) {
	res := lint("<draft>.txt", "他说：“走吧。”"+body)

	var buf bytes.Buffer
	if err := NewHTMLReporter(&buf).Report([]*linter.Result{res}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Prose lint report: &lt;draft&gt;.txt</title>",
		"<table>",
		"<h3>Pattern counts</h3>",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<draft>") {
		t.Error("document path should be escaped")
	}
}

func TestTruncate(t *testing.T) {
	short := "短句"
	if got := truncate(short); got != short {
		t.Errorf("truncate(%q) = %q", short, got)
	}

	long := strings.Repeat("字", maxContextRunes+5)
	got := truncate(long)
	if want := strings.Repeat("字", maxContextRunes) + "…"; got != want {
		t.Errorf("truncate(long) has %d runes, want %d", len([]rune(got)), maxContextRunes+1)
	}
}
