package digest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/satchel/internal/core/ports"
)

// NodeID is the unique identifier for the digest Graft node.
const NodeID graft.ID = "adapter.digest"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
