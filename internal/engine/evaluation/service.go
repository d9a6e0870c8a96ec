package evaluation

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// SdkResolverService routes SDK lookups through an evaluation context's
// resolution cache. It is a thin façade over the external resolver: the
// service owns which resolver is consulted, the context owns the memoized
// outcomes.
type SdkResolverService struct {
	resolver ports.SdkResolver
	tracer   ports.Tracer
}

// NewSdkResolverService creates a service over resolver. A nil tracer
// disables span emission.
func NewSdkResolverService(resolver ports.SdkResolver, tracer ports.Tracer) *SdkResolverService {
	return &SdkResolverService{resolver: resolver, tracer: tracer}
}

// Resolve looks up (name, version) through evalCtx's SDK cache, delegating
// to the wrapped resolver on the first request per context lifetime.
func (s *SdkResolverService) Resolve(ctx context.Context, evalCtx *Context, name, version string) (*domain.SdkResult, error) {
	if s.tracer == nil {
		return evalCtx.Sdks().Resolve(name, version, s.resolver)
	}

	_, span := s.tracer.Start(ctx, "sdk.resolve")
	defer span.End()

	span.SetAttribute("sdk_name", name)
	span.SetAttribute("sdk_version", version)
	span.SetAttribute("cache_hit", evalCtx.Sdks().Contains(name, version))

	result, err := evalCtx.Sdks().Resolve(name, version, s.resolver)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}
