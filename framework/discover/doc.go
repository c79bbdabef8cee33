// Package discover provides marker-driven service registration for a
// dependency-injection container.
//
// Nothing is registered unless it is marked. Instead of "load everything by
// default" (or "everything except an exclusion list"), each service is marked
// explicitly with the lifetime it wants and, optionally, the keys it should
// be registered under. A registrar then walks the marked entries and issues
// one container call per (key, implementation) pair.
//
// # Marking services
//
// Go has no class attributes, so the marker is an explicit side table: a
// Module collects (implementation, Marker) entries, typically from an init
// function next to the services themselves.
//
//	var Module = discover.NewModule("billing")
//
//	func init() {
//	    // scoped (the default), registered under its own type
//	    Module.Mark(&InvoiceBuilder{})
//
//	    // singleton
//	    Module.Mark(&RateTable{}, discover.WithLifetime(discover.Singleton))
//
//	    // transient, registered under two interface keys
//	    Module.Mark(&SMTPNotifier{},
//	        discover.WithLifetime(discover.Transient),
//	        discover.As(discover.Key[Mailer](), discover.Key[Texter]()))
//
//	    discover.RegisterModule(Module)
//	}
//
// # Running the registration pass
//
// The registrar only consumes the three [Binder] primitives, so any container
// exposing them will do. framework/container implements Binder.
//
//	c := container.New()
//	if _, err := discover.RegisterAll(c); err != nil {
//	    log.Fatal(err)
//	}
//
// RegisterMarked registers an explicit entry list, Module.Register a single
// module, RegisterAll every module in the process table. The pass is meant to
// run once, at startup, before any request traffic.
package discover
