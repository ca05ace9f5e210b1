package verdict

import (
	"fmt"

	"github.com/pthm/tellint/internal/analyzer"
	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/patterns"
	"github.com/pthm/tellint/internal/rules"
)

// Fixed failure limits. A count strictly greater than the limit fails, except
// for short paragraphs, which fail at the limit.
const (
	ButRatherLimit      = 1
	YouWillLimit        = 0
	ShortParagraphLimit = 4
	ExclamationLimit    = 2
	EmDashLimit         = 3
	RoadmarkLimit       = 2
	NonQuoteColonLimit  = 0
)

// Checks that are not backed by a single pattern
const (
	ShortParagraphRule = "short_paragraphs"
	NonQuoteColonRule  = "colon_non_quote"
)

// Issue is one failed check
type Issue struct {
	Rule     string
	Observed int
	Limit    int
	Message  string
}

// Verdict is the aggregated outcome for one document
type Verdict struct {
	Pass   bool
	Issues []Issue
}

// check is one threshold test in reporting order
type check struct {
	rule    string
	enabled func(cfg config.Config) bool
	value   func(e *rules.Evaluation, s analyzer.Stats) int
	limit   func(cfg config.Config) int
	// inclusive fails when value >= limit instead of value > limit
	inclusive bool
	message   func(value, limit int) string
}

func count(id patterns.RuleID) func(*rules.Evaluation, analyzer.Stats) int {
	return func(e *rules.Evaluation, _ analyzer.Stats) int {
		return e.Result(id).Count()
	}
}

func fixed(limit int) func(config.Config) int {
	return func(config.Config) int { return limit }
}

var checks = []check{
	{
		rule:  string(patterns.ButRather),
		value: count(patterns.ButRather),
		limit: fixed(ButRatherLimit),
		message: func(v, l int) string {
			return fmt.Sprintf(`"not X but Y" construct count %d exceeds limit %d`, v, l)
		},
	},
	{
		rule:  string(patterns.YouWill),
		value: count(patterns.YouWill),
		limit: fixed(YouWillLimit),
		message: func(v, l int) string {
			return fmt.Sprintf(`second-person "you will" count %d exceeds limit %d`, v, l)
		},
	},
	{
		rule: string(patterns.Colon),
		value: func(e *rules.Evaluation, _ analyzer.Stats) int {
			return e.Result(patterns.Colon).ViolationCount()
		},
		limit: func(cfg config.Config) int { return cfg.ColonBudget },
		message: func(v, l int) string {
			return fmt.Sprintf("colon count %d exceeds budget %d", v, l)
		},
	},
	{
		rule:    NonQuoteColonRule,
		enabled: func(cfg config.Config) bool { return cfg.ColonExceptionsQuoteOnly },
		value: func(e *rules.Evaluation, _ analyzer.Stats) int {
			return e.Result(patterns.Colon).ViolationCount()
		},
		limit: fixed(NonQuoteColonLimit),
		message: func(int, int) string {
			return "non-quote colon usage detected"
		},
	},
	{
		rule: ShortParagraphRule,
		value: func(_ *rules.Evaluation, s analyzer.Stats) int {
			return s.ShortCount
		},
		limit:     fixed(ShortParagraphLimit),
		inclusive: true,
		message: func(v, l int) string {
			return fmt.Sprintf("short paragraph count %d reaches limit %d (paragraphs under %d characters)",
				v, l, analyzer.ShortParagraphLength)
		},
	},
	{
		rule:  string(patterns.Exclamation),
		value: count(patterns.Exclamation),
		limit: fixed(ExclamationLimit),
		message: func(v, l int) string {
			return fmt.Sprintf("exclamation count %d exceeds limit %d", v, l)
		},
	},
	{
		rule:  string(patterns.EmDash),
		value: count(patterns.EmDash),
		limit: fixed(EmDashLimit),
		message: func(v, l int) string {
			return fmt.Sprintf("em-dash count %d exceeds limit %d", v, l)
		},
	},
	{
		rule:  string(patterns.RoadmarkTerms),
		value: count(patterns.RoadmarkTerms),
		limit: fixed(RoadmarkLimit),
		message: func(v, l int) string {
			return fmt.Sprintf("roadmark term count %d exceeds limit %d", v, l)
		},
	},
}

// Aggregate evaluates every threshold and returns the verdict. Issues are in
// a fixed order independent of the document.
func Aggregate(e *rules.Evaluation, stats analyzer.Stats, cfg config.Config) Verdict {
	var v Verdict

	for _, c := range checks {
		if c.enabled != nil && !c.enabled(cfg) {
			continue
		}

		value := c.value(e, stats)
		limit := c.limit(cfg)

		failed := value > limit
		if c.inclusive {
			failed = value >= limit
		}
		if !failed {
			continue
		}

		v.Issues = append(v.Issues, Issue{
			Rule:     c.rule,
			Observed: value,
			Limit:    limit,
			Message:  c.message(value, limit),
		})
	}

	v.Pass = len(v.Issues) == 0
	return v
}
