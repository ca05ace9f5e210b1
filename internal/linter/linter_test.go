package linter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/document"
	"github.com/pthm/tellint/internal/patterns"
	"github.com/pthm/tellint/internal/verdict"
)

func analyze(text string, cfg config.Config) *Result {
	return Analyze(document.New("test.txt", text), cfg)
}

func messages(v verdict.Verdict) []string {
	var out []string
	for _, issue := range v.Issues {
		out = append(out, issue.Message)
	}
	return out
}

// body is a paragraph long enough not to count as short
var body = strings.Repeat("风吹过山岗，", 20)

func TestAnalyze_QuotedColonsPass(t *testing.T) {
	text := "他说：“走吧。”" + body + "\n\n她问：“去哪？”" + body + "\n\n他答：“回家。”" + body

	r := analyze(text, config.Defaults())
	colon := r.Evaluation.Result(patterns.Colon)

	if colon.Count() != 3 {
		t.Errorf("raw colon count = %d, want 3", colon.Count())
	}
	if colon.ViolationCount() != 0 {
		t.Errorf("colon violations = %d, want 0", colon.ViolationCount())
	}
	if !r.Pass() {
		t.Errorf("expected PASS, got %v", messages(r.Verdict))
	}
}

func TestAnalyze_BareColonsFail(t *testing.T) {
	text := "时间：三点" + body + "\n\n地点：操场" + body + "\n\n人物：我们" + body

	r := analyze(text, config.Defaults())
	colon := r.Evaluation.Result(patterns.Colon)

	if colon.ViolationCount() != 3 {
		t.Errorf("colon violations = %d, want 3", colon.ViolationCount())
	}
	if r.Pass() {
		t.Fatal("expected FAIL")
	}
	want := []string{"colon count 3 exceeds budget 2", "non-quote colon usage detected"}
	if got := messages(r.Verdict); !reflect.DeepEqual(got, want) {
		t.Errorf("messages = %q, want %q", got, want)
	}
}

func TestAnalyze_ShortParagraphsFail(t *testing.T) {
	text := "第一段。\n\n第二段。\n\n第三段。\n\n第四段。\n\n第五段。"

	r := analyze(text, config.Defaults())
	if r.Stats.ShortCount != 5 {
		t.Errorf("ShortCount = %d, want 5", r.Stats.ShortCount)
	}
	if r.Pass() {
		t.Fatal("expected FAIL")
	}
	if len(r.Verdict.Issues) != 1 || r.Verdict.Issues[0].Rule != verdict.ShortParagraphRule {
		t.Errorf("issues = %v, want only the short paragraph issue", r.Verdict.Issues)
	}
}

func TestAnalyze_EmDashesFail(t *testing.T) {
	text := body + "\n他停了——\n又停了——\n还停了——\n终于——走了"

	r := analyze(text, config.Defaults())
	dash := r.Evaluation.Result(patterns.EmDash)

	if dash.Count() != 4 {
		t.Fatalf("em-dash count = %d, want 4", dash.Count())
	}
	wantLines := []int{2, 3, 4, 5}
	for i, h := range dash.Hits {
		if h.Line != wantLines[i] {
			t.Errorf("Hits[%d].Line = %d, want %d", i, h.Line, wantLines[i])
		}
	}
	if got := messages(r.Verdict); !reflect.DeepEqual(got, []string{"em-dash count 4 exceeds limit 3"}) {
		t.Errorf("messages = %q, want only the em-dash reason", got)
	}
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	r := analyze("", config.Defaults())

	if !r.Pass() {
		t.Errorf("expected PASS, got %v", messages(r.Verdict))
	}
	if r.Stats.Count != 0 || r.Stats.AverageLength != 0 {
		t.Errorf("Stats = %+v, want zero paragraphs and average 0", r.Stats)
	}
	for _, res := range r.Evaluation.Results {
		if res.Count() != 0 {
			t.Errorf("%s count = %d, want 0", res.Rule, res.Count())
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "标题：开端\n\n他说：“你会明白！”\n\n事实上——不是你，而是我——仿佛而又！"
	for _, cfg := range config.Presets() {
		a := analyze(text, cfg.Config)
		b := analyze(text, cfg.Config)
		if !reflect.DeepEqual(a.Verdict, b.Verdict) {
			t.Errorf("preset %s: verdicts differ: %v vs %v", cfg.Name, a.Verdict, b.Verdict)
		}
		if !reflect.DeepEqual(a.Evaluation.Results, b.Evaluation.Results) {
			t.Errorf("preset %s: hit listings differ", cfg.Name)
		}
	}
}

func TestAnalyze_ColonInvariant(t *testing.T) {
	texts := []string{
		"",
		"他说：“好”\n时间：三点",
		"标题：一\n他问：「谁？」\n注：无",
	}
	for _, text := range texts {
		for _, quoteOnly := range []bool{true, false} {
			for _, skip := range []bool{true, false} {
				cfg := config.Config{ColonBudget: 2, ColonExceptionsQuoteOnly: quoteOnly, SkipTitleLine: skip}
				colon := analyze(text, cfg).Evaluation.Result(patterns.Colon)
				if colon.ViolationCount() > colon.Count() {
					t.Errorf("%q %+v: violations %d > raw %d", text, cfg, colon.ViolationCount(), colon.Count())
				}
				if !quoteOnly && colon.ViolationCount() != colon.Count() {
					t.Errorf("%q %+v: violations %d != raw %d", text, cfg, colon.ViolationCount(), colon.Count())
				}
			}
		}
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write file %s: %v", name, err)
		}
	}
	return dir
}

func TestLintFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"ok.txt": body})

	r, err := LintFile(filepath.Join(dir, "ok.txt"), config.Defaults())
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}
	if !r.Pass() {
		t.Errorf("expected PASS, got %v", messages(r.Verdict))
	}

	_, err = LintFile(filepath.Join(dir, "missing.txt"), config.Defaults())
	if !errors.Is(err, document.ErrNotFound) {
		t.Errorf("LintFile(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLintAll(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt": body,
		"b.txt": body + "！！！",
		"c.txt": "一\n\n二\n\n三\n\n四",
	})

	paths := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "missing.txt"),
		filepath.Join(dir, "b.txt"),
		document.StdinPath,
		filepath.Join(dir, "c.txt"),
	}

	var started, done atomic.Int32
	outcomes, err := LintAll(context.Background(), paths, config.Defaults(), Options{
		Jobs:    2,
		Stdin:   strings.NewReader(body),
		OnStart: func(string) { started.Add(1) },
		OnDone:  func(Outcome) { done.Add(1) },
	})
	if err != nil {
		t.Fatalf("LintAll() error = %v", err)
	}

	if len(outcomes) != len(paths) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(paths))
	}
	if started.Load() != int32(len(paths)) || done.Load() != int32(len(paths)) {
		t.Errorf("callbacks: started %d, done %d, want %d each", started.Load(), done.Load(), len(paths))
	}

	wantPass := []bool{true, false, false, true, false}
	for i, o := range outcomes {
		if o.Path != paths[i] {
			t.Errorf("outcomes[%d].Path = %q, want %q", i, o.Path, paths[i])
		}
		if i == 1 {
			if !errors.Is(o.Err, document.ErrNotFound) || o.Result != nil {
				t.Errorf("outcomes[1] = %+v, want ErrNotFound and no result", o)
			}
			continue
		}
		if o.Err != nil {
			t.Errorf("outcomes[%d].Err = %v", i, o.Err)
			continue
		}
		if o.Result.Pass() != wantPass[i] {
			t.Errorf("outcomes[%d] pass = %v, want %v", i, o.Result.Pass(), wantPass[i])
		}
	}
}

func TestLintAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LintAll(ctx, []string{"a.txt", "b.txt"}, config.Defaults(), Options{Jobs: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LintAll() error = %v, want context.Canceled", err)
	}
}
