package config

import "github.com/lambda-feedback/hostgreet/util/conf"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// EnvFile is an optional dotenv file. Its variables are used
	// when they are missing from the process environment.
	EnvFile string `conf:"env_file"`
}

var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
	"env_file":   "",
}
