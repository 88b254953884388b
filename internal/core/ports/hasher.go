package ports

import "go.trai.ch/satchel/internal/core/domain"

// Hasher defines the interface for fingerprinting a result set.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable digest of the set of satchels.
	// The digest does not depend on the order of the slice.
	Fingerprint(satchels []domain.Satchel) string
}
