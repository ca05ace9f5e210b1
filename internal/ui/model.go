package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of a lint run
type Stage int

const (
	StageResolveConfig Stage = iota
	StageLint
	StageDone
)

// Message types for updating the model
type (
	StageMsg         Stage
	DocumentCountMsg int
	DocumentStartMsg string
	DocumentDoneMsg  struct{ Failed bool }
	DoneMsg          struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage    Stage
	spinner  spinner.Model
	progress progress.Model
	current  string
	total    int
	done     int
	failed   int
	quitting bool
	err      error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageResolveConfig,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		return m, nil

	case DocumentCountMsg:
		m.total = int(msg)
		return m, nil

	case DocumentStartMsg:
		m.current = string(msg)
		return m, nil

	case DocumentDoneMsg:
		m.done++
		if msg.Failed {
			m.failed++
		}
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.stage = StageDone
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageResolveConfig:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Resolving configuration...")

	case StageLint:
		if m.total > 0 {
			pct := float64(m.done) / float64(m.total)
			sb.WriteString(m.progress.ViewAs(pct))
			sb.WriteString("\n")
		}
		sb.WriteString(m.spinner.View())
		sb.WriteString(fmt.Sprintf(" %d/%d documents", m.done, m.total))
		if m.failed > 0 {
			sb.WriteString(fmt.Sprintf(", %d failing", m.failed))
		}
		if m.current != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", filepath.Base(m.current)))
		}
	}

	return sb.String()
}
