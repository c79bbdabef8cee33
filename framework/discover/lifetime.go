package discover

import "strings"

// Lifetime selects how many instances of a marked service the container
// produces.
type Lifetime int

const (
	// Scoped is the default lifetime: one instance per unit of work
	// (typically one HTTP request).
	Scoped Lifetime = iota

	// Singleton produces one shared instance for the lifetime of the
	// container.
	Singleton

	// Transient produces a fresh instance on every resolution.
	Transient
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Scoped:
		return "scoped"
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// LifetimeFrom converts an external string representation (config value,
// struct tag) into a Lifetime. Unrecognized input, including the empty
// string, falls back to Transient rather than failing.
func LifetimeFrom(s string) Lifetime {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scoped":
		return Scoped
	case "singleton":
		return Singleton
	default:
		return Transient
	}
}
