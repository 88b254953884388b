package report

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/satchel/internal/adapters/detector" //nolint:depguard // Wired in adapter layer
	"go.trai.ch/satchel/internal/core/ports"
)

// NodeID is the unique identifier for the report Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			w := NewWriter(os.Stdout)
			w.SetStyled(detector.DetectEnvironment() == detector.ModeStyled)
			return w, nil
		},
	})
}
