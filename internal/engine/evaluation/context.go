// Package evaluation implements the evaluation context cache: per-policy
// pooling of filesystem probes, glob expansions and SDK resolution results
// across project evaluations.
package evaluation

import (
	"go.trai.ch/memo/internal/adapters/fs"        //nolint:depguard // Default probe path when no override is supplied
	"go.trai.ch/memo/internal/adapters/telemetry" //nolint:depguard // Default tracer when none is supplied
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Context owns one instance of each evaluation cache and carries the sharing
// policy chosen at creation. Identity is significant: under the shared
// policy the context handed out for every new project is the receiver
// itself, so cache instances are literally the same objects. No two
// contexts ever share a cache instance under the isolated policy.
//
// Policy and filesystem override are immutable after construction; a
// Context is safe to hand to multiple evaluations without synchronization.
type Context struct {
	policy   domain.SharingPolicy
	override ports.FileSystem // non-nil only under the shared policy
	tracer   ports.Tracer

	existence *ExistenceCache
	sdks      *SdkCache
	globs     *GlobCache
}

type contextOptions struct {
	fileSystem ports.FileSystem
	tracer     ports.Tracer
}

// Option configures a Context at creation.
type Option func(*contextOptions)

// WithFileSystem routes every probe of the context through fsys instead of
// the real filesystem. Valid only under the shared policy; creation fails
// otherwise.
func WithFileSystem(fsys ports.FileSystem) Option {
	return func(o *contextOptions) {
		o.fileSystem = fsys
	}
}

// WithTracer makes the context's caches emit spans through tracer.
func WithTracer(tracer ports.Tracer) Option {
	return func(o *contextOptions) {
		o.tracer = tracer
	}
}

// New creates a context with the given sharing policy and empty caches.
func New(policy domain.SharingPolicy, opts ...Option) (*Context, error) {
	if !policy.Valid() {
		return nil, zerr.With(domain.ErrUnknownSharingPolicy, "policy", string(policy))
	}

	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.fileSystem != nil && policy != domain.SharingPolicyShared {
		return nil, zerr.With(domain.ErrFileSystemNotShared, "policy", string(policy))
	}
	if o.tracer == nil {
		o.tracer = telemetry.NewNoOpTracer()
	}

	return newContext(policy, o.fileSystem, o.tracer), nil
}

// newContext is the non-validating constructor shared by New,
// ContextForNewProject and the tracker's default path.
func newContext(policy domain.SharingPolicy, override ports.FileSystem, tracer ports.Tracer) *Context {
	probes := override
	if probes == nil {
		probes = fs.New()
	}

	c := &Context{
		policy:   policy,
		override: override,
		tracer:   tracer,
	}
	c.existence = newExistenceCache(probes)
	c.sdks = newSdkCache()
	c.globs = newGlobCache(c.existence)
	return c
}

// ContextForNewProject returns the context a new, previously-unseen project
// evaluates with. Under the shared policy that is the receiver itself; under
// the isolated policy it is a fresh context with empty caches, the same
// policy and no filesystem override. Re-evaluation of a project already
// associated with a context must not go through here; see Tracker.
func (c *Context) ContextForNewProject() *Context {
	if c.policy == domain.SharingPolicyShared {
		return c
	}
	return newContext(c.policy, nil, c.tracer)
}

// Policy returns the sharing policy the context was created with.
func (c *Context) Policy() domain.SharingPolicy {
	return c.policy
}

// Existence returns the context's existence cache.
func (c *Context) Existence() *ExistenceCache {
	return c.existence
}

// Sdks returns the context's SDK resolution cache.
func (c *Context) Sdks() *SdkCache {
	return c.sdks
}

// Globs returns the context's glob expansion cache.
func (c *Context) Globs() *GlobCache {
	return c.globs
}
