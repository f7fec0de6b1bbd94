package conf

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/hostgreet/util/cliflags"
)

// DefaultConfig is a flat or nested map of default values.
type DefaultConfig map[string]any

type ParseOptions struct {
	// Cli is the cli.Context from urfave/cli
	Cli *cli.Context

	// CliMap is a map of cli flag names to config keys
	CliMap map[string]string

	// Defaults is a map of default values
	Defaults DefaultConfig

	// EnvPrefix is the prefix for env vars
	EnvPrefix string

	// EnvKeys restricts the env layer to the listed variables,
	// compared after the prefix. A nil slice loads every variable,
	// an empty one none.
	EnvKeys []string

	// FileName is the name of the JSON configuration file to load
	FileName string

	// Log is the logger to use
	Log *zap.Logger
}

func Parse[C any](opt ParseOptions) (C, error) {
	var log *zap.Logger
	if opt.Log != nil {
		log = opt.Log
	} else {
		log = zap.NewNop()
	}

	var config C

	k := koanf.New(".")

	if opt.Defaults != nil {
		if err := k.Load(confmap.Provider(opt.Defaults, "."), nil); err != nil {
			log.Error("error loading defaults", zap.Error(err))
			return config, err
		}
	}

	if opt.FileName != "" {
		if err := k.Load(file.Provider(opt.FileName), json.Parser()); err != nil {
			log.Error("error parsing file",
				zap.Error(err),
				zap.String("file", opt.FileName),
			)
			return config, fmt.Errorf("config file %s: %w", opt.FileName, err)
		}
	}

	transformPrefixedEnv := func(key, value string) (string, any) {
		if !allowEnv(key, opt) {
			return "", nil
		}

		return transformEnv(key, opt.EnvPrefix), value
	}

	if err := k.Load(env.ProviderWithValue(opt.EnvPrefix, ".", transformPrefixedEnv), nil); err != nil {
		log.Error("error parsing env vars", zap.Error(err))
		return config, err
	}

	if opt.Cli != nil {
		transformFlag := func(s string) string {
			if opt.CliMap != nil {
				if name, ok := opt.CliMap[s]; ok {
					return name
				}
			}

			// replace - with _
			return strings.ReplaceAll(strings.ToLower(s), "-", "_")
		}

		if err := k.Load(cliflags.Provider(opt.Cli, ".", transformFlag), nil); err != nil {
			log.Error("error parsing cli flags", zap.Error(err))
			return config, err
		}
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		log.Error("error unmarshalling config", zap.Error(err))
		return config, err
	}

	if v, ok := any(config).(validator); ok {
		if err := v.Validate(); err != nil {
			log.Error("invalid config", zap.Error(err))
			return config, err
		}
	}

	return config, nil
}

// validator is implemented by configs that check their own values
// after all layers have been merged.
type validator interface {
	Validate() error
}

func allowEnv(key string, opt ParseOptions) bool {
	if opt.EnvKeys == nil {
		return true
	}

	name := strings.TrimPrefix(key, opt.EnvPrefix)
	for _, allowed := range opt.EnvKeys {
		if name == allowed {
			return true
		}
	}

	return false
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file. Keys are
// returned verbatim.
func LoadEnvFile(path string) (map[string]string, error) {
	// a delimiter that cannot occur in env keys keeps them flat
	k := koanf.New("\x00")

	if err := k.Load(file.Provider(path), dotenv.Parser()); err != nil {
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}

	vars := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		vars[key] = k.String(key)
	}

	return vars, nil
}

func transformEnv(s, prefix string) string {
	// allow specifying nested env vars w/ __
	normalized := strings.ReplaceAll(strings.ToLower(s), "__", ".")
	// split normalized env var by separator
	parts := strings.Split(normalized, ".")
	// pop prefix if it is set
	if prefix != "" {
		_, parts = parts[0], parts[1:]
	}
	// create final string
	return strings.Join(parts, ".")
}
