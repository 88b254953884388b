package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/satchel/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/satchel/internal/adapters/digest" //nolint:depguard // Wired in app layer
	"go.trai.ch/satchel/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/satchel/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/satchel/internal/core/ports"
	"go.trai.ch/satchel/internal/engine/enumerator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			digest.NodeID,
			report.NodeID,
			enumerator.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	enum, err := graft.Dep[*enumerator.Enumerator](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, hasher, reporter, enum), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
