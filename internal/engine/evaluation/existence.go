package evaluation

import (
	"sync"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// directoryListing is a memoized DirectoryEntries outcome. Failures are
// memoized the same as successes.
type directoryListing struct {
	names []string
	err   error
}

// ExistenceCache memoizes file existence and directory enumeration for the
// lifetime of its owning context. Results are never refreshed: a path probed
// once keeps its answer even when the disk changes underneath, which is the
// intended trade-off for re-evaluation speed. Only a fresh context observes
// fresh state.
//
// Concurrent first access to an uncached path is collapsed so the underlying
// probe runs exactly once per distinct path.
type ExistenceCache struct {
	fs    ports.FileSystem
	group singleflight.Group

	mu       sync.RWMutex
	exists   map[string]bool
	listings map[string]directoryListing
}

func newExistenceCache(fs ports.FileSystem) *ExistenceCache {
	return &ExistenceCache{
		fs:       fs,
		exists:   make(map[string]bool),
		listings: make(map[string]directoryListing),
	}
}

// Exists reports whether a file or directory exists at path, memoized per
// canonical path.
func (c *ExistenceCache) Exists(path string) bool {
	key := domain.NormalizePath(path)

	c.mu.RLock()
	found, ok := c.exists[key]
	c.mu.RUnlock()
	if ok {
		return found
	}

	res, _, _ := c.group.Do("exists\x00"+key, func() (any, error) {
		c.mu.RLock()
		found, ok := c.exists[key]
		c.mu.RUnlock()
		if ok {
			return found, nil
		}

		found = c.fs.Exists(path)

		c.mu.Lock()
		c.exists[key] = found
		c.mu.Unlock()
		return found, nil
	})
	return res.(bool)
}

// DirectoryEntries returns the memoized entry names of the directory at
// path. An enumeration failure (missing path, not a directory) is memoized
// too and replayed on every subsequent call. The returned slice is shared
// cache state and must not be mutated.
func (c *ExistenceCache) DirectoryEntries(path string) ([]string, error) {
	key := domain.NormalizePath(path)

	c.mu.RLock()
	listing, ok := c.listings[key]
	c.mu.RUnlock()
	if ok {
		return listing.names, listing.err
	}

	res, _, _ := c.group.Do("entries\x00"+key, func() (any, error) {
		c.mu.RLock()
		listing, ok := c.listings[key]
		c.mu.RUnlock()
		if ok {
			return listing, nil
		}

		names, err := c.fs.DirectoryEntries(path)
		listing = directoryListing{names: names, err: err}

		c.mu.Lock()
		c.listings[key] = listing
		c.mu.Unlock()
		return listing, nil
	})

	listing = res.(directoryListing)
	return listing.names, listing.err
}
