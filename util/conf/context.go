package conf

import (
	"context"
	"errors"
)

var (
	ErrNoConfigInContext  = errors.New("config not found in context")
	ErrInvalidConfigValue = errors.New("invalid config in context")
)

type contextKey struct{}

func GetConfigFromContext[C any](ctx context.Context) (C, error) {
	var c C

	value := ctx.Value(contextKey{})
	if value == nil {
		return c, ErrNoConfigInContext
	}

	config, ok := value.(C)
	if !ok {
		return c, ErrInvalidConfigValue
	}

	return config, nil
}

func ContextWithConfig[C any](ctx context.Context, config C) context.Context {
	return context.WithValue(ctx, contextKey{}, config)
}
