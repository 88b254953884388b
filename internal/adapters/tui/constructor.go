// Package tui provides an interactive terminal view of enumeration progress.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/satchel/internal/ui/output"
)

// NewModel creates a new TUI model for the given amount. Styles follow the
// color profile of w.
func NewModel(w io.Writer, amount int) Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Amount:     amount,
		Rounds:     make([]*RoundNode, 0),
		FollowMode: true,
	}
}
