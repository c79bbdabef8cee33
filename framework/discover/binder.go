package discover

import "reflect"

// Binder is the container contract the registrar consumes: three
// registration primitives, one per lifetime. Each call associates a key type
// with an implementation type in the container's table, or fails with a
// container-defined error (for example when impl does not satisfy key —
// that check belongs to the container, not to the registrar).
//
// framework/container implements Binder; any other container can be slotted
// in behind the same three methods.
type Binder interface {
	// RegisterSingleton binds key to impl with one shared instance for the
	// container's lifetime.
	RegisterSingleton(key, impl reflect.Type) error

	// RegisterScoped binds key to impl with one instance per unit of work.
	RegisterScoped(key, impl reflect.Type) error

	// RegisterTransient binds key to impl with a fresh instance per
	// resolution.
	RegisterTransient(key, impl reflect.Type) error
}
