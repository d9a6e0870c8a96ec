package evaluation

import (
	"sync"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

type sdkKey struct {
	name    domain.InternedString
	version domain.InternedString
}

// sdkOutcome memoizes one resolution outcome, success or failure.
type sdkOutcome struct {
	result *domain.SdkResult
	err    error
}

// SdkCache memoizes SDK resolution outcomes keyed by (name, version) for the
// lifetime of its owning context. A failed resolution stays failed for that
// lifetime; a fresh context gives the pair a fresh chance. Concurrent first
// requests for the same pair invoke the resolver exactly once, and every
// caller observes the outcome published by that one call.
type SdkCache struct {
	group singleflight.Group

	mu       sync.RWMutex
	outcomes map[sdkKey]sdkOutcome
}

func newSdkCache() *SdkCache {
	return &SdkCache{
		outcomes: make(map[sdkKey]sdkOutcome),
	}
}

// Resolve returns the memoized outcome for (name, version), delegating the
// first request to resolver.
func (c *SdkCache) Resolve(name, version string, resolver ports.SdkResolver) (*domain.SdkResult, error) {
	key := sdkKey{
		name:    domain.NewInternedString(name),
		version: domain.NewInternedString(version),
	}

	c.mu.RLock()
	outcome, ok := c.outcomes[key]
	c.mu.RUnlock()
	if ok {
		return outcome.result, outcome.err
	}

	res, _, _ := c.group.Do(name+"\x00"+version, func() (any, error) {
		c.mu.RLock()
		outcome, ok := c.outcomes[key]
		c.mu.RUnlock()
		if ok {
			return outcome, nil
		}

		result, err := resolver.Resolve(name, version)
		outcome = sdkOutcome{result: result, err: err}

		c.mu.Lock()
		c.outcomes[key] = outcome
		c.mu.Unlock()
		return outcome, nil
	})

	outcome = res.(sdkOutcome)
	return outcome.result, outcome.err
}

// Contains reports whether an outcome for (name, version) is already
// memoized.
func (c *SdkCache) Contains(name, version string) bool {
	key := sdkKey{
		name:    domain.NewInternedString(name),
		version: domain.NewInternedString(version),
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.outcomes[key]
	return ok
}
