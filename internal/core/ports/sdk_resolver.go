package ports

import "go.trai.ch/memo/internal/core/domain"

// SdkResolver locates SDKs by name and version. The cache layer wraps calls
// to it and memoizes both successes and failures, so implementations are
// invoked at most once per (name, version) pair per context lifetime.
// Cancellation, if needed, is the implementation's own concern; the cache
// adds no timeout layer around the call.
//
//go:generate go run go.uber.org/mock/mockgen -source=sdk_resolver.go -destination=mocks/mock_sdk_resolver.go -package=mocks
type SdkResolver interface {
	// Resolve locates the SDK identified by name and version. An empty
	// version leaves the choice of version to the resolver.
	Resolve(name, version string) (*domain.SdkResult, error)
}
