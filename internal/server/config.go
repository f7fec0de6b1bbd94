package server

import (
	"errors"
	"fmt"
)

var ErrInvalidPort = errors.New("invalid port")

type HttpConfig struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// Validate rejects ports outside 1-65535. An empty PORT variable
// decodes to 0 and is rejected as well.
func (c HttpConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	return nil
}

// DefaultHttpConfig holds the default listener settings.
var DefaultHttpConfig = map[string]any{
	"host": "",
	"port": 8080,
	"h2c":  false,
}
