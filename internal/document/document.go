package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned when a path does not resolve to a readable text resource.
var ErrNotFound = errors.New("resource not found")

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Document is a loaded text resource. It is never modified after loading.
type Document struct {
	Path  string
	Text  string
	Lines []string
}

// New builds a Document from in-memory text
func New(path, text string) *Document {
	text = norm.NFC.String(text)
	return &Document{
		Path:  path,
		Text:  text,
		Lines: splitLines(text),
	}
}

// Load reads the document at path. A leading byte order mark is removed and
// UTF-16 input with a BOM is transcoded to UTF-8.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	defer f.Close()

	return Read(path, f)
}

// Read decodes a document from r
func Read(path string, r io.Reader) (*Document, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	content, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	return New(path, string(content)), nil
}

// LineCount returns the number of lines
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// CharCount returns the number of characters (runes) in the full text
func (d *Document) CharCount() int {
	return utf8.RuneCountInString(d.Text)
}

// Line returns the 1-indexed line n, or "" when n is out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// splitLines splits on \n and drops a trailing \r from each line. A trailing
// newline does not start a new line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
