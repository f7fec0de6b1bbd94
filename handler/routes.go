package handler

import (
	"github.com/lambda-feedback/hostgreet/internal/server"
)

// NewGreetingRoute serves every path, /health included, through
// the greeting handler, which dispatches on the raw path itself.
func NewGreetingRoute(handler *GreetingHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}
