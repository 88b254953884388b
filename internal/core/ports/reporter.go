package ports

import "go.trai.ch/satchel/internal/core/domain"

// Reporter defines the interface for writing enumeration results.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// WriteReport writes a sorted report in the given format.
	WriteReport(report *domain.Report, format domain.Format) error

	// WriteMoves writes the outcome of every exchange tried on one satchel.
	WriteMoves(moves []domain.Move) error

	// SetStyled toggles terminal styling of text reports.
	SetStyled(enabled bool)
}
