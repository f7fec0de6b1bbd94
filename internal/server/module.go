package server

import "go.uber.org/fx"

// Module serves the routes in the "handlers" group for the
// lifetime of the fx application.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// start server
		fx.Invoke(func(*HttpServer) {}),
	)
}
