package evaluation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/sdk"
	"go.trai.ch/memo/internal/adapters/telemetry"
	"go.trai.ch/memo/internal/core/ports"
)

const (
	// TrackerNodeID is the unique identifier for the tracker Graft node.
	TrackerNodeID graft.ID = "engine.evaluation.tracker"
	// ServiceNodeID is the unique identifier for the SDK resolver service
	// Graft node.
	ServiceNodeID graft.ID = "engine.evaluation.sdk_service"
)

func init() {
	// Tracker Node (default isolation: no originating context)
	graft.Register(graft.Node[*Tracker]{
		ID:        TrackerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Tracker, error) {
			return NewTracker(nil), nil
		},
	})

	// SDK Resolver Service Node
	graft.Register(graft.Node[*SdkResolverService]{
		ID:        ServiceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{sdk.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*SdkResolverService, error) {
			resolver, err := graft.Dep[ports.SdkResolver](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewSdkResolverService(resolver, tracer), nil
		},
	})
}
