package rules

import (
	"unicode/utf8"

	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/document"
	"github.com/pthm/tellint/internal/patterns"
)

// Evaluation holds the result of every rule, in registry order
type Evaluation struct {
	Results []*Result
	byID    map[patterns.RuleID]*Result
}

// Result returns the result for a rule, or an empty result when the rule
// was not evaluated.
func (e *Evaluation) Result(id patterns.RuleID) *Result {
	if r, ok := e.byID[id]; ok {
		return r
	}
	return &Result{Rule: id}
}

// Evaluate applies every rule built from cfg and reg to doc
func Evaluate(doc *document.Document, cfg config.Config, reg *patterns.Registry) *Evaluation {
	set := Set(cfg, reg)
	e := &Evaluation{
		Results: make([]*Result, 0, len(set)),
		byID:    make(map[patterns.RuleID]*Result, len(set)),
	}
	for _, rule := range set {
		r := Apply(rule, doc)
		e.Results = append(e.Results, r)
		e.byID[r.Rule] = r
	}
	return e
}

// Apply runs a single rule in two stages: collect the hits that are in
// scope, then drop exempt hits to get the violations.
func Apply(rule Rule, doc *document.Document) *Result {
	hits := scan(rule.Pattern, doc)

	if rule.InScope != nil {
		hits = filter(doc, hits, rule.InScope)
	}

	violations := hits
	if rule.Exempt != nil {
		violations = filter(doc, hits, func(d *document.Document, h Hit) bool {
			return !rule.Exempt(d, h)
		})
	}

	return &Result{
		Rule:       rule.ID(),
		Hits:       hits,
		Violations: violations,
		Exemptible: rule.HasExemption(),
	}
}

// scan returns one hit per non-overlapping match on each line
func scan(p *patterns.Pattern, doc *document.Document) []Hit {
	var hits []Hit
	for i, line := range doc.Lines {
		for _, loc := range p.FindAll(line) {
			hits = append(hits, Hit{
				Rule:   p.ID,
				Line:   i + 1,
				Column: utf8.RuneCountInString(line[:loc[0]]) + 1,
				Text:   line,
			})
		}
	}
	return hits
}

func filter(doc *document.Document, hits []Hit, keep Filter) []Hit {
	var out []Hit
	for _, h := range hits {
		if keep(doc, h) {
			out = append(out, h)
		}
	}
	return out
}
