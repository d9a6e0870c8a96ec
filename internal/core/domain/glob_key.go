package domain

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
)

// NormalizePath returns the canonical absolute slash-separated form of p.
// Relative paths are resolved against the current working directory.
func NormalizePath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = filepath.Clean(p)
	}
	return filepath.ToSlash(abs)
}

// GlobKey disambiguates glob cache entries across project cones. Two
// textually identical relative patterns rooted at different directories get
// different keys, while a fully-qualified pattern that reaches into another
// cone collides with that cone's own relative-pattern key, because both
// resolve to the same fixed root.
type GlobKey struct {
	// Root is the fixed directory root: the longest non-wildcard directory
	// prefix of the pattern, resolved to an absolute slash-separated path.
	Root string
	// Remainder is the rest of the pattern: wildcard segments and the
	// filename pattern, slash-separated.
	Remainder string
}

// NewGlobKey derives the cache key for pattern evaluated from baseDir.
// The filename segment always stays in the remainder, even when it carries
// no wildcard, so a literal pattern still yields a non-empty remainder.
func NewGlobKey(baseDir, pattern string) (GlobKey, error) {
	pattern = filepath.ToSlash(pattern)
	for len(pattern) > 1 && strings.HasSuffix(pattern, "/") {
		pattern = strings.TrimSuffix(pattern, "/")
	}
	if pattern == "" || pattern == "/" || !doublestar.ValidatePattern(pattern) {
		return GlobKey{}, zerr.With(ErrMalformedPattern, "pattern", pattern)
	}

	root := NormalizePath(baseDir)
	if strings.HasPrefix(pattern, "/") {
		root = "/"
		pattern = strings.TrimPrefix(pattern, "/")
	}

	segments := strings.Split(pattern, "/")
	fixed := 0
	for fixed < len(segments)-1 && !isWildcardSegment(segments[fixed]) {
		fixed++
	}

	if fixed > 0 {
		// path.Join cleans "." and ".." in the fixed prefix, so a pattern that
		// climbs out of its own cone keys under the cone it lands in.
		root = path.Join(root, path.Join(segments[:fixed]...))
	}

	return GlobKey{Root: root, Remainder: strings.Join(segments[fixed:], "/")}, nil
}

func isWildcardSegment(seg string) bool {
	return strings.ContainsAny(seg, "*?[{")
}
