package greeting

import "go.uber.org/fx"

// Module provides the greeting handler.
func Module() fx.Option {
	return fx.Module(
		"greeting",

		// provide greeting handler
		fx.Provide(NewGreetingHandler),
	)
}
