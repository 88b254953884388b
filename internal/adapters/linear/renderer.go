// Package linear provides a line-per-round progress renderer for CI and
// other non-interactive environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/satchel/internal/core/ports"
	"go.trai.ch/satchel/internal/ui/output"
	"go.trai.ch/satchel/internal/ui/style"
)

var _ ports.ProgressRenderer = (*Renderer)(nil)

// Renderer implements ports.ProgressRenderer by printing one line per
// completed round.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu       sync.Mutex
	frontier map[int]int
}

// NewRenderer creates a new linear Renderer writing to w, or stderr if w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:        w,
		output:   output.NewWithProfile(w, output.ColorProfileANSI),
		frontier: make(map[int]int),
	}
}

// Start is a no-op for linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op for linear renderer (synchronous).
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op for linear renderer (synchronous).
func (r *Renderer) Wait() error {
	return nil
}

// OnRoundStart records the frontier size for the completion line.
func (r *Renderer) OnRoundStart(round, frontier int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frontier[round] = frontier
}

// OnRoundComplete prints the round summary.
func (r *Renderer) OnRoundComplete(round, discovered, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frontier := r.frontier[round]
	delete(r.frontier, round)

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "%s round %d: expanded %d %s %d new, %d found\n",
		symbol, round, frontier, style.Arrow, discovered, total)
}
