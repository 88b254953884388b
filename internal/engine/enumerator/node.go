package enumerator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/satchel/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/satchel/internal/core/ports"
)

// NodeID is the unique identifier for the enumerator Graft node.
const NodeID graft.ID = "engine.enumerator"

func init() {
	graft.Register(graft.Node[*Enumerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Enumerator, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(tracer), nil
		},
	})
}
