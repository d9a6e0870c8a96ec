// Package ports defines the core interfaces for the evaluation cache.
package ports

// FileSystem is the pluggable filesystem abstraction evaluation probes go
// through. Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool

	// DirectoryEntries returns the names of the entries in the directory at
	// path, in directory order. It returns an error when path is not a
	// readable directory.
	DirectoryEntries(path string) ([]string, error)
}
