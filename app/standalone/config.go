package standalone

import (
	"github.com/lambda-feedback/hostgreet/internal/server"
	"github.com/lambda-feedback/hostgreet/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

func (c Config) Validate() error {
	return c.HttpConfig.Validate()
}

var DefaultConfig = conf.DefaultConfig(server.DefaultHttpConfig)

// EnvKeys are the bare env vars read into Config. Every other
// setting comes from defaults, the config file or flags.
var EnvKeys = []string{"PORT"}
