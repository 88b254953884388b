package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/satchel/internal/adapters/logger" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/satchel/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer used by the application.
const InstrumentationName = "satchel"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tp := Setup(log)
			return NewOTelTracerWithProvider(tp, InstrumentationName), nil
		},
	})
}
