package discover

import (
	"reflect"
	"sync"
)

// Entry is one marked service: an implementation type and its marker.
type Entry struct {
	Impl   reflect.Type
	Marker Marker
}

// Module is an ordered collection of marked services, the stand-in for "the
// publicly visible classes of one module, filtered to the marked ones".
// Services are added with [Module.Mark], typically from an init function in
// the package that defines them; anything never marked simply never appears.
type Module struct {
	name string

	mu      sync.Mutex
	entries []Entry
}

// NewModule creates an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{name: name}
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Mark adds a service to the module. prototype is a throwaway value of the
// implementation type (usually a nil-field pointer literal like &Clock{});
// only its type is kept.
//
//	m.Mark(&Clock{}, discover.WithLifetime(discover.Singleton))
func (m *Module) Mark(prototype any, opts ...Option) {
	entry := Entry{
		Impl:   reflect.TypeOf(prototype),
		Marker: NewMarker(opts...),
	}
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()
}

// Entries returns the marked services in the order they were marked.
func (m *Module) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// ── Process-wide module table ────────────────────────────────────────────────

var (
	modulesMu sync.Mutex
	modules   []*Module
)

// RegisterModule adds a module to the process-wide table consumed by
// [RegisterAll]. Call it once per module, usually from the same init function
// that marks the module's services.
func RegisterModule(m *Module) {
	modulesMu.Lock()
	modules = append(modules, m)
	modulesMu.Unlock()
}

// Modules returns the registered modules in registration order.
func Modules() []*Module {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	out := make([]*Module, len(modules))
	copy(out, modules)
	return out
}

// ResetModules clears the process-wide table. Hosts that run more than one
// registration pass (and tests) use it to start from a clean slate.
func ResetModules() {
	modulesMu.Lock()
	modules = nil
	modulesMu.Unlock()
}
