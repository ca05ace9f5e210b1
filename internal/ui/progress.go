package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display.
// A nil *ProgressController is valid and does nothing.
type ProgressController struct {
	program *tea.Program
	done    chan struct{}
}

// StartProgress starts the progress display on the error stream if it is a
// terminal and the output is interactive. Returns nil otherwise.
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode == OutputModePlain || !ui.canShowProgress() {
		return nil
	}

	p := tea.NewProgram(NewModel(), tea.WithOutput(ui.ErrWriter), tea.WithInput(nil))
	ctrl := &ProgressController{
		program: p,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(ctrl.done)
		// Progress is cosmetic; a failing renderer must not fail the run
		_, _ = p.Run()
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetDocumentCount sets the total number of documents to lint
func (pc *ProgressController) SetDocumentCount(count int) {
	if pc != nil {
		pc.program.Send(DocumentCountMsg(count))
	}
}

// DocumentStart indicates a document is being analyzed
func (pc *ProgressController) DocumentStart(path string) {
	if pc != nil {
		pc.program.Send(DocumentStartMsg(path))
	}
}

// DocumentDone indicates a document has been analyzed
func (pc *ProgressController) DocumentDone(failed bool) {
	if pc != nil {
		pc.program.Send(DocumentDoneMsg{Failed: failed})
	}
}

// Done stops the display and waits for it to clear
func (pc *ProgressController) Done(err error) {
	if pc != nil {
		pc.program.Send(DoneMsg{Err: err})
		<-pc.done
	}
}
