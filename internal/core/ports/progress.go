package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

// RoundObserver receives enumeration progress. Calls arrive from the
// goroutine running the enumeration, one start/complete pair per round.
type RoundObserver interface {
	// OnRoundStart is called before a frontier of the given size is expanded.
	OnRoundStart(round, frontier int)
	// OnRoundComplete reports how many new satchels the round discovered and
	// how many results are known so far.
	OnRoundComplete(round, discovered, total int)
}

// ProgressRenderer presents enumeration progress while it runs.
// The same event stream drives either the interactive view or plain lines.
type ProgressRenderer interface {
	RoundObserver

	// Start begins the renderer's lifecycle.
	Start(ctx context.Context) error
	// Stop signals that no further rounds will be reported.
	Stop() error
	// Wait blocks until the renderer has terminated.
	Wait() error
}
