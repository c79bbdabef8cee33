package container

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value, resolving any
// dependencies it needs through r.
type Factory func(r Resolver) (any, error)

// Resolver resolves values by type. Both *Container and *Scope implement it,
// as do the resolvers handed to factories during construction.
type Resolver interface {
	Resolve(t reflect.Type) (any, error)
}

// lifetime is the container's internal instancing policy.
type lifetime int

const (
	singleton lifetime = iota
	scoped
	transient
)

// binding holds a registered factory and its instancing policy.
type binding struct {
	factory Factory
	life    lifetime
	impl    reflect.Type // nil for hand-wired factories
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is a type-keyed IoC container. Services are registered under a
// key type (usually an interface) with one of three lifetimes, and resolved
// back by that key:
//
//   - singleton: one shared instance, cached on first resolution
//   - scoped: one instance per [Scope] (per unit of work)
//   - transient: a fresh instance per resolution
//
// Registering the same key again replaces the previous binding; the last
// registration wins. The container guards its tables with a lock, but the
// registration pass itself is expected to run once, at startup, before any
// concurrent traffic.
type Container struct {
	mu sync.RWMutex

	// key type → binding
	bindings map[reflect.Type]*binding

	// key type → resolved singleton instance
	instances map[reflect.Type]any
}

// New creates an empty container.
func New() *Container {
	return &Container{
		bindings:  make(map[reflect.Type]*binding),
		instances: make(map[reflect.Type]any),
	}
}

// ── Registration primitives ───────────────────────────────────────────────────

// RegisterSingleton binds key to impl with a single shared instance.
func (c *Container) RegisterSingleton(key, impl reflect.Type) error {
	return c.registerType(key, impl, singleton)
}

// RegisterScoped binds key to impl with one instance per [Scope].
func (c *Container) RegisterScoped(key, impl reflect.Type) error {
	return c.registerType(key, impl, scoped)
}

// RegisterTransient binds key to impl with a fresh instance per resolution.
func (c *Container) RegisterTransient(key, impl reflect.Type) error {
	return c.registerType(key, impl, transient)
}

// registerType validates the (key, impl) pair and installs a reflective
// factory for impl. Validation happens here, at registration time — callers
// of the registration primitives get the failure immediately, not at first
// resolution.
func (c *Container) registerType(key, impl reflect.Type, life lifetime) error {
	if key == nil || impl == nil {
		return fmt.Errorf("%w: nil type", ErrInvalidBinding)
	}
	if !satisfies(key, impl) {
		return fmt.Errorf("%w: %s as %s", ErrInvalidBinding, impl, key)
	}
	if structType(impl) == nil {
		return fmt.Errorf("%w: %s", ErrNotConstructible, impl)
	}

	c.bind(key, &binding{
		factory: func(r Resolver) (any, error) { return buildStruct(impl, r) },
		life:    life,
		impl:    impl,
	})
	return nil
}

// ── Factory registration ──────────────────────────────────────────────────────

// Bind registers a transient factory under the key type.
//
//	c.Bind(reflect.TypeFor[Mailer](), func(r container.Resolver) (any, error) {
//	    return NewSMTPMailer(), nil
//	})
func (c *Container) Bind(key reflect.Type, f Factory) {
	c.bind(key, &binding{factory: f, life: transient})
}

// Singleton registers a factory whose result is cached after first
// resolution.
func (c *Container) Singleton(key reflect.Type, f Factory) {
	c.bind(key, &binding{factory: f, life: singleton})
}

// Scoped registers a factory whose result is cached per [Scope].
func (c *Container) Scoped(key reflect.Type, f Factory) {
	c.bind(key, &binding{factory: f, life: scoped})
}

// Instance registers a pre-built value as a singleton for the key type.
func (c *Container) Instance(key reflect.Type, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = &binding{
		factory: func(Resolver) (any, error) { return value, nil },
		life:    singleton,
	}
	c.instances[key] = value
}

// bind installs a binding, dropping any cached singleton so the key is
// rebuilt with the new factory.
func (c *Container) bind(key reflect.Type, b *binding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, key)
	c.bindings[key] = b
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve returns the value bound to t. Scoped bindings cannot be resolved
// from the root container; open a [Scope] for those.
func (c *Container) Resolve(t reflect.Type) (any, error) {
	return c.resolve(t, nil, nil)
}

// resolve is the shared resolution path. sc is the active scope (nil at the
// root) and stack the chain of types currently under construction, used for
// cycle detection.
func (c *Container) resolve(t reflect.Type, sc *Scope, stack []reflect.Type) (any, error) {
	c.mu.RLock()
	b, ok := c.bindings[t]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}

	for _, s := range stack {
		if s == t {
			return nil, circularError(t, stack)
		}
	}

	switch b.life {
	case singleton:
		c.mu.RLock()
		inst, cached := c.instances[t]
		c.mu.RUnlock()
		if cached {
			return inst, nil
		}
		inst, err := c.construct(b, t, sc, stack)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if prev, ok := c.instances[t]; ok {
			inst = prev
		} else {
			c.instances[t] = inst
		}
		c.mu.Unlock()
		return inst, nil

	case scoped:
		if sc == nil {
			return nil, fmt.Errorf("%w: %s", ErrScopedOnRoot, t)
		}
		return sc.resolveScoped(b, t, stack)

	default:
		return c.construct(b, t, sc, stack)
	}
}

// construct runs the binding's factory with t pushed onto the build stack.
func (c *Container) construct(b *binding, t reflect.Type, sc *Scope, stack []reflect.Type) (any, error) {
	r := stackedResolver{c: c, sc: sc, stack: append(stack, t)}
	return b.factory(r)
}

// stackedResolver threads the active scope and build stack through factory
// calls so nested resolutions keep cycle detection and scoping intact.
type stackedResolver struct {
	c     *Container
	sc    *Scope
	stack []reflect.Type
}

func (r stackedResolver) Resolve(t reflect.Type) (any, error) {
	return r.c.resolve(t, r.sc, r.stack)
}

func circularError(t reflect.Type, stack []reflect.Type) error {
	chain := make([]string, 0, len(stack)+1)
	for _, s := range stack {
		chain = append(chain, s.String())
	}
	chain = append(chain, t.String())
	return fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(chain, " -> "))
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound reports whether a binding exists for t.
func (c *Container) Bound(t reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[t]
	return ok
}

// Keys returns the registered key types (order unspecified), for diagnostics.
func (c *Container) Keys() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]reflect.Type, 0, len(c.bindings))
	for t := range c.bindings {
		out = append(out, t)
	}
	return out
}

// satisfies reports whether impl can stand in for key: it implements key when
// key is an interface, or is assignable to it otherwise.
func satisfies(key, impl reflect.Type) bool {
	if key.Kind() == reflect.Interface {
		return impl.Implements(key)
	}
	return impl.AssignableTo(key)
}

// structType returns the underlying struct type of impl (struct or pointer
// to struct), or nil when impl cannot be built reflectively.
func structType(impl reflect.Type) reflect.Type {
	if impl.Kind() == reflect.Pointer {
		impl = impl.Elem()
	}
	if impl.Kind() == reflect.Struct {
		return impl
	}
	return nil
}

// buildStruct constructs a new impl value, resolving every field carrying an
// `inject` tag through r. Untagged fields are left at their zero value.
func buildStruct(impl reflect.Type, r Resolver) (any, error) {
	elem := structType(impl)
	v := reflect.New(elem)

	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		if _, ok := field.Tag.Lookup("inject"); !ok {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("container: inject tag on unexported field %s.%s", elem.Name(), field.Name)
		}
		dep, err := r.Resolve(field.Type)
		if err != nil {
			return nil, fmt.Errorf("building %s, field %s: %w", impl, field.Name, err)
		}
		v.Elem().Field(i).Set(reflect.ValueOf(dep))
	}

	if impl.Kind() == reflect.Pointer {
		return v.Interface(), nil
	}
	return v.Elem().Interface(), nil
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that resolves T from any Resolver and
// type-asserts the result.
//
//	mailer, err := container.Resolve[Mailer](scope)
func Resolve[T any](r Resolver) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()

	v, err := r.Resolve(t)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("container: %s resolved to %T", t, v)
	}
	return typed, nil
}

// MustResolve is like [Resolve] but panics on error. Meant for wiring code
// that runs at startup, where a missing binding is a programming error.
func MustResolve[T any](r Resolver) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}
