package ui

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode determines how output should be formatted
type OutputMode int

const (
	// OutputModeInteractive enables colors and progress display
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors and progress (for piped output)
	OutputModePlain
	// OutputModeRaw writes a machine-readable or document format (json, markdown, html)
	OutputModeRaw
)

// UI provides a unified interface for terminal output with TTY detection
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a new UI instance with automatic TTY detection
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

// detectMode determines the output mode based on TTY and format flags
func detectMode(w io.Writer, format string) OutputMode {
	if format != "" && !strings.EqualFold(format, "terminal") {
		return OutputModeRaw
	}

	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return OutputModeInteractive
		}
	}

	return OutputModePlain
}

// canShowProgress reports whether the error stream is a terminal. Progress is
// drawn on stderr, so it can be shown even when stdout is redirected to a file.
func (ui *UI) canShowProgress() bool {
	f, ok := ui.ErrWriter.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
