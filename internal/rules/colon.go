package rules

import (
	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/document"
	"github.com/pthm/tellint/internal/patterns"
)

// colonRule counts full-width colons. With SkipTitleLine the first line is a
// title and its colons are not counted. With ColonExceptionsQuoteOnly a line
// whose colon introduces quoted speech is exempt from the violation tally.
func colonRule(p *patterns.Pattern, cfg config.Config) Rule {
	rule := Rule{Pattern: p}

	if cfg.SkipTitleLine {
		rule.InScope = notTitleLine
	}
	if cfg.ColonExceptionsQuoteOnly {
		rule.Exempt = introducesQuotedSpeech
	}

	return rule
}

func notTitleLine(_ *document.Document, hit Hit) bool {
	return hit.Line != 1
}

// introducesQuotedSpeech exempts the whole line, so a second colon on a
// dialogue line is exempt as well.
func introducesQuotedSpeech(doc *document.Document, hit Hit) bool {
	return patterns.QuotedSpeechColon.Match(doc.Line(hit.Line))
}
