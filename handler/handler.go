package handler

import (
	"net/http"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/hostgreet/greeting"
)

type GreetingHandlerParams struct {
	fx.In

	Handler greeting.Handler
	Log     *zap.Logger
}

func NewGreetingHandler(params GreetingHandlerParams) *GreetingHandler {
	return &GreetingHandler{
		handler: params.Handler,
		log:     params.Log,
	}
}

// GreetingHandler adapts a greeting.Handler to net/http.
type GreetingHandler struct {
	handler greeting.Handler
	log     *zap.Logger
}

func (h *GreetingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	log.Debug("handling request")

	request := greeting.Request{
		Path:   r.URL.Path,
		Method: strings.ToUpper(r.Method),
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
