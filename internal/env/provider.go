package env

import (
	"os"

	"go.uber.org/fx"
)

// Provider exposes the host name and named configuration
// variables of the running process.
type Provider interface {
	// Hostname returns the network name of the host.
	Hostname() (string, error)

	// Get returns the value of the variable key, or fallback
	// if the variable is not set.
	Get(key, fallback string) string
}

// Overlay holds variables loaded from an env file.
type Overlay map[string]string

// Params defines the dependencies for the system provider.
type Params struct {
	fx.In

	// Overlay is consulted for variables missing from the
	// process environment.
	Overlay Overlay `optional:"true"`
}

// SystemProvider reads from the operating system and the
// process environment.
type SystemProvider struct {
	overlay Overlay

	hostname func() (string, error)
	lookup   func(string) (string, bool)
}

var _ Provider = (*SystemProvider)(nil)

// NewSystemProvider creates a new system provider.
func NewSystemProvider(params Params) Provider {
	return &SystemProvider{
		overlay:  params.Overlay,
		hostname: os.Hostname,
		lookup:   os.LookupEnv,
	}
}

func (p *SystemProvider) Hostname() (string, error) {
	return p.hostname()
}

func (p *SystemProvider) Get(key, fallback string) string {
	// a variable set to the empty string is still set
	if value, ok := p.lookup(key); ok {
		return value
	}

	if value, ok := p.overlay[key]; ok {
		return value
	}

	return fallback
}
