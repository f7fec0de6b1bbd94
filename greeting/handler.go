package greeting

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/hostgreet/internal/env"
)

const (
	// HealthPath is the path of the liveness route.
	HealthPath = "/health"

	// EnvVariable is the variable reported in the greeting.
	EnvVariable = "APP_ENV"

	// DefaultEnv is reported when EnvVariable is not set.
	DefaultEnv = "dev"

	// UnknownHost is reported when the host name cannot be resolved.
	UnknownHost = "unknown"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported method")
)

var wellKnownErrors = map[error]int{
	ErrUnsupportedMethod: http.StatusNotImplemented,
}

// HandlerParams defines the dependencies for the greeting handler.
type HandlerParams struct {
	fx.In

	Env env.Provider

	Log *zap.Logger
}

// Request represents an incoming request.
type Request struct {
	Path   string
	Method string
}

// Response represents an outgoing response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Handler is the interface for handling greeting requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// GreetingHandler answers liveness probes and greets every
// other request with the host name and environment.
type GreetingHandler struct {
	env env.Provider

	log *zap.Logger
}

var _ Handler = (*GreetingHandler)(nil)

// NewGreetingHandler creates a new greeting handler.
func NewGreetingHandler(params HandlerParams) Handler {
	return &GreetingHandler{
		env: params.Env,
		log: params.Log,
	}
}

// Handle handles a greeting request.
func (h *GreetingHandler) Handle(ctx context.Context, req Request) Response {
	log := h.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	if req.Method != http.MethodGet {
		log.Debug("unsupported method")
		return newErrorResponse(fmt.Errorf("%w ('%s')", ErrUnsupportedMethod, req.Method))
	}

	if req.Path == HealthPath {
		return newResponse(http.StatusOK, []byte("OK\n"))
	}

	hostname, err := h.env.Hostname()
	if err != nil || hostname == "" {
		log.Warn("failed to resolve hostname", zap.Error(err))
		hostname = UnknownHost
	}

	value := h.env.Get(EnvVariable, DefaultEnv)

	body := fmt.Sprintf("Hello from %s | ENV=%s\n", hostname, value)

	return newResponse(http.StatusOK, []byte(body))
}
