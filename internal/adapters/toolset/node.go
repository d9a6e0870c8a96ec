package toolset

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the toolset reader Graft node.
const NodeID graft.ID = "adapter.toolset.reader"

// DefaultFilename is the toolset definition file read when the caller does
// not name one.
const DefaultFilename = "toolsets.yaml"

func init() {
	graft.Register(graft.Node[ports.ToolsetReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolsetReader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileReader(DefaultFilename, log), nil
		},
	})
}
