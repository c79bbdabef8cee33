package app

import "github.com/km-arc/go-discover/framework/discover"

// Module holds this package's marked services. Everything not marked here
// stays out of the container.
var Module = discover.NewModule("app")

func init() {
	Module.Mark(&Clock{}, discover.WithLifetime(discover.Singleton))
	Module.Mark(&RequestTracer{}) // scoped, the default
	Module.Mark(&WelcomeService{})
	Module.Mark(&Notifier{},
		discover.WithLifetime(discover.Transient),
		discover.As(discover.Key[Mailer](), discover.Key[Texter]()))

	discover.RegisterModule(Module)
}
