package evaluation

import (
	"sync"

	"go.trai.ch/memo/internal/adapters/telemetry" //nolint:depguard // Default tracer when none is supplied
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// Tracker associates evaluation units with the context used for their last
// evaluation. Re-evaluating a unit always reuses that context, regardless of
// policy; only a previously-unseen unit gets a context from the originating
// context's policy. When no originating context was supplied, every new unit
// receives its own fresh isolated context, so unrelated units never pool
// caches incidentally.
type Tracker struct {
	root   *Context // optional caller-supplied originating context
	tracer ports.Tracer

	mu     sync.Mutex
	byUnit map[domain.InternedString]*Context
}

// NewTracker creates a tracker over the optional originating context. A nil
// root selects the default behavior: fresh isolated contexts per unit.
func NewTracker(root *Context) *Tracker {
	tracer := ports.Tracer(telemetry.NewNoOpTracer())
	if root != nil {
		tracer = root.tracer
	}
	return &Tracker{
		root:   root,
		tracer: tracer,
		byUnit: make(map[domain.InternedString]*Context),
	}
}

// ContextFor returns the context the unit at unitPath evaluates with,
// creating and recording one on first sight.
func (t *Tracker) ContextFor(unitPath string) *Context {
	key := domain.NewInternedString(domain.NormalizePath(unitPath))

	t.mu.Lock()
	defer t.mu.Unlock()

	if c, ok := t.byUnit[key]; ok {
		return c
	}

	var c *Context
	if t.root != nil {
		c = t.root.ContextForNewProject()
	} else {
		c = newContext(domain.SharingPolicyIsolated, nil, t.tracer)
	}
	t.byUnit[key] = c
	return c
}

// Evict drops the association for the unit at unitPath. The next request for
// that unit is treated as a first sight.
func (t *Tracker) Evict(unitPath string) {
	key := domain.NewInternedString(domain.NormalizePath(unitPath))

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.byUnit, key)
}
