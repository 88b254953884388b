package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/satchel/internal/core/domain"
	"go.trai.ch/satchel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProgressRenderer = (*Renderer)(nil)

// Renderer wraps the TUI Bubble Tea model as a ports.ProgressRenderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated. Quitting from the keyboard is
// reported as a canceled enumeration.
func (r *Renderer) Wait() error {
	if err := <-r.errCh; err != nil {
		return err
	}
	if r.model.Interrupted {
		return zerr.Wrap(domain.ErrEnumerationCanceled, "stopped from the progress view")
	}
	return nil
}

// OnRoundStart forwards round start events to the TUI.
func (r *Renderer) OnRoundStart(round, frontier int) {
	r.program.Send(MsgRoundStart{Round: round, Frontier: frontier})
}

// OnRoundComplete forwards round completion events to the TUI.
func (r *Renderer) OnRoundComplete(round, discovered, total int) {
	r.program.Send(MsgRoundComplete{Round: round, Discovered: discovered, Total: total})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
