package rules

import (
	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/document"
	"github.com/pthm/tellint/internal/patterns"
)

// Hit is one match of a pattern on one line
type Hit struct {
	Rule patterns.RuleID
	// Line is 1-indexed
	Line int
	// Column is the 1-indexed character (rune) offset of the match
	Column int
	Text   string
}

// Filter decides whether a hit is kept
type Filter func(doc *document.Document, hit Hit) bool

// Rule couples a pattern with the filters that turn its matches into a
// count and a set of violations.
type Rule struct {
	Pattern *patterns.Pattern

	// InScope drops hits that must not be counted at all. Nil keeps every hit.
	InScope Filter

	// Exempt marks hits that are counted but are not violations. Nil means
	// every counted hit is a violation.
	Exempt Filter
}

// ID returns the rule identifier
func (r Rule) ID() patterns.RuleID {
	return r.Pattern.ID
}

// HasExemption reports whether violations can differ from the raw count
func (r Rule) HasExemption() bool {
	return r.Exempt != nil
}

// Result is the outcome of applying one rule to a document
type Result struct {
	Rule patterns.RuleID
	// Hits are all counted matches in line order
	Hits []Hit
	// Violations are the hits that survived the exemption filter
	Violations []Hit
	// Exemptible is true when the rule has an exemption filter
	Exemptible bool
}

// Count returns the raw number of counted matches
func (r *Result) Count() int {
	return len(r.Hits)
}

// ViolationCount returns the number of matches that are violations
func (r *Result) ViolationCount() int {
	return len(r.Violations)
}

// IsViolation reports whether hit is among the result's violations
func (r *Result) IsViolation(hit Hit) bool {
	for _, v := range r.Violations {
		if v.Line == hit.Line && v.Column == hit.Column {
			return true
		}
	}
	return false
}

// Set builds the rules for a configuration. Only the colon rule carries
// filters; every other rule is a plain occurrence count.
func Set(cfg config.Config, reg *patterns.Registry) []Rule {
	all := reg.All()
	rules := make([]Rule, 0, len(all))
	for _, p := range all {
		rule := Rule{Pattern: p}
		if p.ID == patterns.Colon {
			rule = colonRule(p, cfg)
		}
		rules = append(rules, rule)
	}
	return rules
}
