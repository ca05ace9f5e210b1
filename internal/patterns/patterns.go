// Package patterns holds the fixed registry of lexical patterns that prose
// rules are evaluated against. Patterns are built once at package
// initialization and never modified.
package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleID identifies a pattern and the rule built on it
type RuleID string

const (
	Colon           RuleID = "colon"
	Period          RuleID = "period"
	Semicolon       RuleID = "semicolon"
	Exclamation     RuleID = "exclamation"
	EmDash          RuleID = "em_dash"
	RoadmarkTerms   RuleID = "roadmark_terms"
	AITellPhrases   RuleID = "ai_tell_phrases"
	MetaphorMarkers RuleID = "metaphor_markers"
	DoubleAdjective RuleID = "double_adjective"
	ButRather       RuleID = "but_rather"
	YouWill         RuleID = "you_will"
)

// Group categorizes patterns for listing and reporting
type Group string

const (
	GroupPunctuation   Group = "punctuation"
	GroupTransition    Group = "transition"
	GroupAITell        Group = "ai_tell"
	GroupMetaphor      Group = "metaphor"
	GroupConnective    Group = "connective"
	GroupDirectAddress Group = "direct_address"
)

// Full-width punctuation
const (
	FullWidthColon       = "："
	FullWidthPeriod      = "。"
	FullWidthSemicolon   = "；"
	FullWidthExclamation = "！"
	DoubleEmDash         = "——"
)

var (
	roadmarkPhrases = []string{
		"更重要的是",
		"换句话说",
		"事实上",
		"值得注意的是",
		"值得一提的是",
		"总而言之",
		"与此同时",
		"不仅如此",
	}

	aiTellPhrases = []string{
		"不可否认",
		"毫无疑问",
		"综上所述",
		"总的来说",
		"不言而喻",
	}

	metaphorPhrases = []string{
		"仿佛",
		"似乎",
		"好像",
		"就像",
		"宛如",
		"犹如",
		"如同",
	}

	doubleAdjectivePhrases = []string{"而又"}

	youWillPhrases = []string{"你会", "你将"}
)

// SpeechVerbs introduce quoted speech. A colon directly after one of them and
// followed by an opening quote is dialogue punctuation, not an expository colon.
var SpeechVerbs = []string{"说", "问", "答", "道", "写", "指出", "表示", "强调"}

// OpeningQuotes are the quotation marks that may open quoted speech
var OpeningQuotes = []string{"“", "「", "『", `"`}

// Pattern is a named lexical matcher
type Pattern struct {
	ID          RuleID
	Group       Group
	Description string
	// Phrases lists the literal alternatives; empty for expression patterns.
	Phrases []string
	Expr    string

	re *regexp.Regexp
}

// FindAll returns the byte ranges of all non-overlapping matches in s
func (p *Pattern) FindAll(s string) [][]int {
	return p.re.FindAllStringIndex(s, -1)
}

// Count returns the number of non-overlapping matches in s
func (p *Pattern) Count(s string) int {
	return len(p.re.FindAllStringIndex(s, -1))
}

// Match reports whether s contains a match
func (p *Pattern) Match(s string) bool {
	return p.re.MatchString(s)
}

func literal(id RuleID, group Group, description string, phrases ...string) *Pattern {
	expr := alternation(phrases)
	return &Pattern{
		ID:          id,
		Group:       group,
		Description: description,
		Phrases:     phrases,
		Expr:        expr,
		re:          regexp.MustCompile(expr),
	}
}

func expression(id RuleID, group Group, description, expr string) *Pattern {
	return &Pattern{
		ID:          id,
		Group:       group,
		Description: description,
		Expr:        expr,
		re:          regexp.MustCompile(expr),
	}
}

// QuotedSpeechColon matches a speech verb, a colon and an opening quote, with
// optional whitespace (including the ideographic space) around the colon.
var QuotedSpeechColon = expression("quoted_speech_colon", GroupPunctuation,
	"Colon introducing quoted speech",
	fmt.Sprintf(`(?:%s)[\s\p{Zs}]*%s[\s\p{Zs}]*(?:%s)`,
		alternation(SpeechVerbs), FullWidthColon, alternation(OpeningQuotes)))

func alternation(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = regexp.QuoteMeta(item)
	}
	return strings.Join(quoted, "|")
}

// Registry is an ordered, read-only set of patterns
type Registry struct {
	patterns []*Pattern
	byID     map[RuleID]*Pattern
}

// NewRegistry builds a registry from patterns, keeping their order.
// It panics on duplicate ids.
func NewRegistry(patterns ...*Pattern) *Registry {
	r := &Registry{
		patterns: patterns,
		byID:     make(map[RuleID]*Pattern, len(patterns)),
	}
	for _, p := range patterns {
		if _, dup := r.byID[p.ID]; dup {
			panic(fmt.Sprintf("patterns: duplicate rule id %q", p.ID))
		}
		r.byID[p.ID] = p
	}
	return r
}

// All returns the patterns in registration order
func (r *Registry) All() []*Pattern {
	out := make([]*Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Get returns the pattern with the given id, or nil
func (r *Registry) Get(id RuleID) *Pattern {
	return r.byID[id]
}

// Len returns the number of patterns
func (r *Registry) Len() int {
	return len(r.patterns)
}

var defaultRegistry = NewRegistry(
	literal(Colon, GroupPunctuation, "Full-width colon", FullWidthColon),
	literal(Period, GroupPunctuation, "Full-width period", FullWidthPeriod),
	literal(Semicolon, GroupPunctuation, "Full-width semicolon", FullWidthSemicolon),
	literal(Exclamation, GroupPunctuation, "Full-width exclamation mark", FullWidthExclamation),
	literal(EmDash, GroupPunctuation, "Doubled em-dash", DoubleEmDash),
	literal(RoadmarkTerms, GroupTransition, "Cliched transition signposts", roadmarkPhrases...),
	literal(AITellPhrases, GroupAITell, "Formulaic summary and certainty markers", aiTellPhrases...),
	literal(MetaphorMarkers, GroupMetaphor, "Comparison-introducing metaphor markers", metaphorPhrases...),
	literal(DoubleAdjective, GroupConnective, "Double-adjective connective", doubleAdjectivePhrases...),
	expression(ButRather, GroupDirectAddress, `"Not X but Y" construct`, `不是[^。！？\n]*?而是`),
	literal(YouWill, GroupDirectAddress, `Second-person "you will"`, youWillPhrases...),
)

// Default returns the process-wide pattern registry
func Default() *Registry {
	return defaultRegistry
}
