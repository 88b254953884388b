// Package digest fingerprints enumeration results with xxhash.
package digest

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/satchel/internal/core/domain"
	"go.trai.ch/satchel/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes order-independent fingerprints of satchel sets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the satchels in ascending key order, each as four
// little-endian uint64 counts.
func (h *Hasher) Fingerprint(satchels []domain.Satchel) string {
	sorted := slices.Clone(satchels)
	slices.SortFunc(sorted, domain.Compare)

	hasher := xxhash.New()
	buf := make([]byte, 0, 8*domain.NumCoins)
	for _, s := range sorted {
		buf = buf[:0]
		for _, c := range domain.Coins() {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Get(c))) //nolint:gosec // counts are validated non-negative
		}
		_, _ = hasher.Write(buf)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
