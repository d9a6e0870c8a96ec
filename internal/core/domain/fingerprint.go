package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// FingerprintPaths computes a stable digest over an ordered list of paths.
// The order of the input is significant: two lists with the same elements in
// a different order produce different fingerprints. Paths are separated by a
// NUL byte so that concatenation ambiguity cannot produce collisions.
func FingerprintPaths(paths []string) string {
	h := xxhash.New()
	for _, p := range paths {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
