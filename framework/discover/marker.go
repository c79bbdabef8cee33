package discover

import "reflect"

// Marker is the declarative metadata attached to a marked service: the
// lifetime it should be registered with and the keys it should be registered
// under. A Marker is read once during the registration pass and never
// mutated.
type Marker struct {
	// Lifetime of every registration issued for the service.
	// The zero value is Scoped.
	Lifetime Lifetime

	// Keys are the types the service is registered under, in declaration
	// order. Empty means "register under the implementation's own type" —
	// which is not the same as listing the implementation type explicitly
	// alongside others.
	Keys []reflect.Type
}

// Option configures a Marker.
type Option func(*Marker)

// WithLifetime sets the lifetime. The default is [Scoped].
func WithLifetime(l Lifetime) Option {
	return func(m *Marker) {
		m.Lifetime = l
	}
}

// As sets the registration keys, usually interface types obtained via [Key].
// The marker does not verify that the implementation satisfies them; the
// container checks that when the registration call is issued.
func As(keys ...reflect.Type) Option {
	return func(m *Marker) {
		m.Keys = append(m.Keys, keys...)
	}
}

// NewMarker builds a Marker. With no options the marker means "scoped, under
// the service's own type".
func NewMarker(opts ...Option) Marker {
	var m Marker
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Key returns the reflect.Type of T, the usual way to name an interface as a
// registration key:
//
//	discover.As(discover.Key[PaymentGateway]())
func Key[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
