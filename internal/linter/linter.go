// Package linter ties the analysis stages together. Analyze is the pure
// entry point: it loads nothing and prints nothing, so the same document and
// configuration always produce the same Result.
package linter

import (
	"context"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pthm/tellint/internal/analyzer"
	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/document"
	"github.com/pthm/tellint/internal/logger"
	"github.com/pthm/tellint/internal/patterns"
	"github.com/pthm/tellint/internal/rules"
	"github.com/pthm/tellint/internal/verdict"
)

// Result is the full analysis of one document
type Result struct {
	Document   *document.Document
	Config     config.Config
	Stats      analyzer.Stats
	Evaluation *rules.Evaluation
	Verdict    verdict.Verdict
}

// Pass reports whether the document passed every check
func (r *Result) Pass() bool {
	return r.Verdict.Pass
}

// Analyze runs segmentation, rule evaluation and aggregation on doc
func Analyze(doc *document.Document, cfg config.Config) *Result {
	stats := analyzer.Segment(doc.Text)
	eval := rules.Evaluate(doc, cfg, patterns.Default())

	return &Result{
		Document:   doc,
		Config:     cfg,
		Stats:      stats,
		Evaluation: eval,
		Verdict:    verdict.Aggregate(eval, stats, cfg),
	}
}

// LintFile loads the document at path and analyzes it
func LintFile(path string, cfg config.Config) (*Result, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return Analyze(doc, cfg), nil
}

// Outcome is the result of linting one path in a batch. Exactly one of
// Result and Err is set.
type Outcome struct {
	Path   string
	Result *Result
	Err    error
}

// Options tunes a batch run
type Options struct {
	// Jobs bounds the number of documents analyzed at once. Zero means GOMAXPROCS.
	Jobs int

	// Stdin is read for the path "-". Defaults to os.Stdin.
	Stdin io.Reader

	// OnStart and OnDone are called from worker goroutines
	OnStart func(path string)
	OnDone  func(o Outcome)
}

// LintAll lints every path. Documents are independent: one that cannot be
// loaded yields an Outcome with Err set and does not stop the others.
// Outcomes are returned in input order. The returned error is non-nil only
// when ctx is cancelled.
func LintAll(ctx context.Context, paths []string, cfg config.Config, opts Options) ([]Outcome, error) {
	log := logger.FromContext(ctx)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	outcomes := make([]Outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if opts.OnStart != nil {
				opts.OnStart(path)
			}

			o := lintOne(path, cfg, stdin)
			if o.Err != nil {
				log.Warn("document skipped", "path", path, "err", o.Err)
			} else {
				log.Debug("document analyzed",
					"path", path,
					"lines", o.Result.Document.LineCount(),
					"paragraphs", o.Result.Stats.Count,
					"pass", o.Result.Pass(),
				)
			}

			outcomes[i] = o
			if opts.OnDone != nil {
				opts.OnDone(o)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func lintOne(path string, cfg config.Config, stdin io.Reader) Outcome {
	var (
		doc *document.Document
		err error
	)
	if path == document.StdinPath {
		doc, err = document.Read(path, stdin)
	} else {
		doc, err = document.Load(path)
	}
	if err != nil {
		return Outcome{Path: path, Err: err}
	}
	return Outcome{Path: path, Result: Analyze(doc, cfg)}
}
