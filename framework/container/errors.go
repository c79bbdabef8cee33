package container

import "errors"

var (
	// ErrNotRegistered is returned when no binding exists for the requested
	// type.
	ErrNotRegistered = errors.New("container: no binding registered")

	// ErrInvalidBinding is returned at registration time when the
	// implementation type does not satisfy the key type.
	ErrInvalidBinding = errors.New("container: implementation does not satisfy key")

	// ErrNotConstructible is returned at registration time when the
	// implementation type is not a struct or pointer to struct.
	ErrNotConstructible = errors.New("container: implementation is not constructible")

	// ErrScopedOnRoot is returned when a scoped binding is resolved directly
	// from the root container instead of through a Scope.
	ErrScopedOnRoot = errors.New("container: scoped binding resolved outside a scope")

	// ErrCircularDependency is returned when construction loops back on a
	// type already being built. The message carries the full chain.
	ErrCircularDependency = errors.New("container: circular dependency detected")
)
