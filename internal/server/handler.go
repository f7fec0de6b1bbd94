package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a route served by the HTTP server. Name is a
// net/http ServeMux pattern.
type HttpHandler struct {
	Name    string
	Handler http.Handler
}

// HttpHandlerResult adds a route to the "handlers" value group.
type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

// AsHttpHandler registers handler for the given pattern.
func AsHttpHandler(pattern string, handler http.Handler) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    pattern,
			Handler: handler,
		},
	}
}

// NewRootHandler combines the routes into a single handler. A lone
// catch-all route is returned as-is, so its requests reach it with
// the raw path instead of being cleaned and redirected by a mux.
func NewRootHandler(handlers []*HttpHandler) http.Handler {
	if len(handlers) == 1 && handlers[0].Name == "/" {
		return handlers[0].Handler
	}

	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Name, handler.Handler)
	}

	return mux
}
