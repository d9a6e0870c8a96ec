package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.telemetry.tracer"

func init() {
	// The no-op tracer is the default; callers that want OTel spans swap in
	// NewOTelTracer after configuring a tracer provider.
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			return NewNoOpTracer(), nil
		},
	})
}
