package container

import (
	"reflect"
	"sync"
)

// Scope is one unit of work — typically one HTTP request. Scoped bindings
// resolve to a single instance per Scope, isolated from every other Scope;
// singleton and transient bindings pass through to the root container.
//
// A Scope is not meant to be shared between goroutines serving different
// units of work. Create one per request, drop it when the request ends.
type Scope struct {
	root *Container

	mu        sync.Mutex
	instances map[reflect.Type]any
}

// NewScope opens a fresh scope over the container.
func (c *Container) NewScope() *Scope {
	return &Scope{
		root:      c,
		instances: make(map[reflect.Type]any),
	}
}

// Resolve returns the value bound to t, caching scoped instances in this
// scope.
func (s *Scope) Resolve(t reflect.Type) (any, error) {
	return s.root.resolve(t, s, nil)
}

// resolveScoped returns the scope's cached instance for t, constructing it
// on first use. Construction runs outside the lock so scoped bindings may
// depend on other scoped bindings.
func (s *Scope) resolveScoped(b *binding, t reflect.Type, stack []reflect.Type) (any, error) {
	s.mu.Lock()
	inst, ok := s.instances[t]
	s.mu.Unlock()
	if ok {
		return inst, nil
	}

	inst, err := s.root.construct(b, t, s, stack)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if prev, ok := s.instances[t]; ok {
		inst = prev
	} else {
		s.instances[t] = inst
	}
	s.mu.Unlock()
	return inst, nil
}
