package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/toolset" //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/evaluation"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft
	// node the entry point resolves.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application objects handed to the CLI
// entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			evaluation.TrackerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracker, err := graft.Dep[*evaluation.Tracker](ctx)
			if err != nil {
				return nil, err
			}
			readerFor := func(path string) ports.ToolsetReader {
				return toolset.NewFileReader(path, log)
			}
			return New(log, tracker, readerFor), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
