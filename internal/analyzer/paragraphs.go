package analyzer

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ShortParagraphLength is the length (in characters) below which a paragraph
// counts as short.
const ShortParagraphLength = 100

// paragraphBreak matches two or more consecutive line breaks
var paragraphBreak = regexp.MustCompile(`(?:\r?\n){2,}`)

// Paragraph is a trimmed, non-empty block of text between blank lines
type Paragraph struct {
	Text      string
	Length    int
	StartLine int
}

// IsShort reports whether the paragraph is shorter than ShortParagraphLength
func (p Paragraph) IsShort() bool {
	return p.Length < ShortParagraphLength
}

// Stats contains paragraph statistics for a document
type Stats struct {
	Paragraphs    []Paragraph
	Count         int
	TotalLength   int
	AverageLength int
	ShortCount    int
}

// Segment splits text into paragraphs and computes their statistics.
func Segment(text string) Stats {
	var s Stats

	start := 0
	for _, loc := range paragraphBreak.FindAllStringIndex(text, -1) {
		s.add(text, start, loc[0])
		start = loc[1]
	}
	s.add(text, start, len(text))

	s.Count = len(s.Paragraphs)
	s.AverageLength = averageLength(s.TotalLength, s.Count)
	return s
}

func (s *Stats) add(text string, start, end int) {
	raw := text[start:end]
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	offset := start + strings.Index(raw, trimmed)
	p := Paragraph{
		Text:      trimmed,
		Length:    utf8.RuneCountInString(trimmed),
		StartLine: strings.Count(text[:offset], "\n") + 1,
	}

	s.Paragraphs = append(s.Paragraphs, p)
	s.TotalLength += p.Length
	if p.IsShort() {
		s.ShortCount++
	}
}

// averageLength rounds half to even, so 2.5 becomes 2 and 3.5 becomes 4.
func averageLength(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(total) / float64(count)))
}

// Join rebuilds text from paragraphs, separated by a blank line
func Join(paragraphs []Paragraph) string {
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n\n")
}
