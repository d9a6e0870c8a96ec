package evaluation

import (
	"path"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/memo/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// globEntry is one memoized expansion: the ordered matches and their digest.
type globEntry struct {
	matches     []string
	fingerprint string
}

// GlobCache memoizes recursive wildcard expansion for the lifetime of its
// owning context. Entries are keyed by the normalized (fixed directory root,
// pattern remainder) pair, so a relative pattern is never confused with the
// textually identical pattern of another project cone, while a
// fully-qualified pattern that resolves into a cone shares that cone's
// entry. Item-include and import patterns go through the same cache.
//
// The directory traversal on a miss runs through the owning context's
// ExistenceCache, so the enumeration cost is itself cached.
type GlobCache struct {
	existence *ExistenceCache
	group     singleflight.Group

	mu      sync.RWMutex
	entries map[domain.GlobKey]globEntry
}

func newGlobCache(existence *ExistenceCache) *GlobCache {
	return &GlobCache{
		existence: existence,
		entries:   make(map[domain.GlobKey]globEntry),
	}
}

// Expand returns the ordered matches of pattern evaluated from baseDir,
// memoized per derived key. On a hit the stored sequence is returned
// unmodified, even when the disk has changed since; the slice is shared
// cache state and must not be mutated. A malformed pattern is an error and
// is not cached.
func (c *GlobCache) Expand(pattern, baseDir string) ([]string, error) {
	entry, err := c.expand(pattern, baseDir)
	if err != nil {
		return nil, err
	}
	return entry.matches, nil
}

// Fingerprint returns the digest of the ordered matches of pattern evaluated
// from baseDir, expanding on first use. Comparing fingerprints across
// contexts is a cheap way to detect that an expansion drifted.
func (c *GlobCache) Fingerprint(pattern, baseDir string) (string, error) {
	entry, err := c.expand(pattern, baseDir)
	if err != nil {
		return "", err
	}
	return entry.fingerprint, nil
}

func (c *GlobCache) expand(pattern, baseDir string) (globEntry, error) {
	key, err := domain.NewGlobKey(baseDir, pattern)
	if err != nil {
		return globEntry{}, err
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	res, _, _ := c.group.Do(key.Root+"\x00"+key.Remainder, func() (any, error) {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return entry, nil
		}

		matches := c.walk(key)
		entry = globEntry{
			matches:     matches,
			fingerprint: domain.FingerprintPaths(matches),
		}

		c.mu.Lock()
		c.entries[key] = entry
		c.mu.Unlock()
		return entry, nil
	})

	return res.(globEntry), nil
}

// walk performs the actual traversal under the fixed root, matching files
// against the pattern remainder. Matches are collected in traversal order:
// directory order per level, depth first. A child is classified by asking
// the existence cache for its entries, so file-versus-directory knowledge is
// memoized alongside the listings themselves.
func (c *GlobCache) walk(key domain.GlobKey) []string {
	var matches []string

	var visit func(dir, rel string)
	visit = func(dir, rel string) {
		names, err := c.existence.DirectoryEntries(dir)
		if err != nil {
			return
		}

		for _, name := range names {
			child := dir + "/" + name
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}

			if _, err := c.existence.DirectoryEntries(child); err == nil {
				visit(child, childRel)
				continue
			}

			if matched, err := doublestar.Match(key.Remainder, childRel); err == nil && matched {
				matches = append(matches, path.Clean(child))
			}
		}
	}
	visit(key.Root, "")

	return matches
}
