// Package container provides a type-keyed IoC container with three
// lifetimes: singleton, scoped and transient.
//
// It is the concrete collaborator behind framework/discover's Binder
// interface — the registrar issues RegisterSingleton / RegisterScoped /
// RegisterTransient calls against it — but it is also usable on its own.
//
// # Registering
//
//	c := container.New()
//
//	// type-based: the container constructs *RateTable reflectively
//	err := c.RegisterSingleton(reflect.TypeFor[*RateTable](), reflect.TypeFor[*RateTable]())
//
//	// interface-keyed
//	err = c.RegisterTransient(reflect.TypeFor[Mailer](), reflect.TypeFor[*SMTPMailer]())
//
//	// hand-wired factory
//	c.Singleton(reflect.TypeFor[*sql.DB](), func(r container.Resolver) (any, error) {
//	    return sql.Open("mysql", dsn)
//	})
//
// The (key, implementation) relationship is validated at registration time:
// an implementation that does not satisfy its key fails the registration
// call with [ErrInvalidBinding].
//
// Type-registered implementations are built with reflect.New plus field
// injection: every exported field carrying an `inject:""` tag is resolved
// from the container by its type.
//
//	type Checkout struct {
//	    Gateway PaymentGateway `inject:""`
//	    Clock   *Clock         `inject:""`
//	}
//
// # Resolving
//
//	// untyped
//	v, err := c.Resolve(reflect.TypeFor[Mailer]())
//
//	// generic (preferred — no type assertion required)
//	mailer, err := container.Resolve[Mailer](c)
//
// # Scopes
//
// Scoped bindings resolve only inside a [Scope], one instance per scope:
//
//	sc := c.NewScope()
//	tracer, err := container.Resolve[*RequestTracer](sc)
//
// Resolving a scoped binding from the root container returns
// [ErrScopedOnRoot].
package container
