package discover

import "reflect"

// RegisterMarked issues the container calls for a list of marked services,
// in entry order. Each entry produces one call per registration key — or a
// single call under the implementation's own type when the marker lists no
// keys — all sharing the entry's lifetime. Lifetime values outside the three
// known ones dispatch as transient.
//
// The registrar performs no validation and no recovery: the first error a
// primitive returns is propagated unchanged, and calls already issued stay
// applied. The binder is returned to allow chaining.
func RegisterMarked(entries []Entry, b Binder) (Binder, error) {
	for _, e := range entries {
		keys := e.Marker.Keys
		if len(keys) == 0 {
			keys = []reflect.Type{e.Impl}
		}
		for _, key := range keys {
			var err error
			switch e.Marker.Lifetime {
			case Singleton:
				err = b.RegisterSingleton(key, e.Impl)
			case Scoped:
				err = b.RegisterScoped(key, e.Impl)
			default:
				err = b.RegisterTransient(key, e.Impl)
			}
			if err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

// Register runs [RegisterMarked] over the module's entries.
func (m *Module) Register(b Binder) (Binder, error) {
	return RegisterMarked(m.Entries(), b)
}

// RegisterAll runs [RegisterMarked] over every module in the process-wide
// table, in module registration order. With no modules registered it issues
// zero calls and returns b unchanged.
func RegisterAll(b Binder) (Binder, error) {
	for _, m := range Modules() {
		if _, err := RegisterMarked(m.Entries(), b); err != nil {
			return b, err
		}
	}
	return b, nil
}
