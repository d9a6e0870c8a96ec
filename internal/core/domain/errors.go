package domain

import "go.trai.ch/zerr"

var (
	// ErrFileSystemNotShared is returned when a file system override is supplied
	// to a context whose sharing policy is not Shared.
	ErrFileSystemNotShared = zerr.New("file system override requires shared policy")

	// ErrUnknownSharingPolicy is returned when a context is created with a policy
	// that is neither Shared nor Isolated.
	ErrUnknownSharingPolicy = zerr.New("unknown sharing policy")

	// ErrMalformedPattern is returned when a glob pattern cannot be parsed.
	ErrMalformedPattern = zerr.New("malformed glob pattern")

	// ErrInvalidToolsetDefinition is returned when a recognized toolset setting
	// carries a value of the wrong kind.
	ErrInvalidToolsetDefinition = zerr.New("invalid toolset definition")

	// ErrSdkNotFound is returned when an SDK cannot be located by the resolver.
	ErrSdkNotFound = zerr.New("sdk not found")
)
