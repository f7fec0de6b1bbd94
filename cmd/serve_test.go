package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/hostgreet/app/standalone"
	"github.com/lambda-feedback/hostgreet/internal/server"
)

// parseServeArgs runs a serve command line and returns the parsed
// http config.
func parseServeArgs(t *testing.T, args ...string) (standalone.Config, error) {
	var (
		cfg standalone.Config
		err error
	)

	testApp := &cli.App{
		Name: appName,
		Flags: []cli.Flag{
			&cli.PathFlag{Name: "config"},
		},
		Commands: []*cli.Command{
			{
				Name: "serve",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "host", Aliases: []string{"H"}},
					&cli.IntFlag{Name: "port", Aliases: []string{"P"}},
					&cli.BoolFlag{Name: "h2c"},
				},
				Action: func(ctx *cli.Context) error {
					cfg, err = parseServeConfig(ctx, zaptest.NewLogger(t))
					return nil
				},
			},
		},
	}

	require.NoError(t, testApp.Run(append([]string{appName}, args...)))

	return cfg, err
}

func unsetEnv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParseServeConfig_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "HOST")

	cfg, err := parseServeArgs(t, "serve")
	require.NoError(t, err)

	assert.Equal(t, server.HttpConfig{Host: "", Port: 8080}, cfg.HttpConfig)
}

func TestParseServeConfig_Port(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := parseServeArgs(t, "serve")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HttpConfig.Port)
}

func TestParseServeConfig_IgnoresHost(t *testing.T) {
	unsetEnv(t, "PORT")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("H2C", "true")

	cfg, err := parseServeArgs(t, "serve")
	require.NoError(t, err)

	assert.Equal(t, server.HttpConfig{Host: "", Port: 8080}, cfg.HttpConfig)
}

func TestParseServeConfig_EmptyPort(t *testing.T) {
	t.Setenv("PORT", "")

	_, err := parseServeArgs(t, "serve")
	assert.ErrorIs(t, err, server.ErrInvalidPort)
}

func TestParseServeConfig_NonNumericPort(t *testing.T) {
	t.Setenv("PORT", "http")

	_, err := parseServeArgs(t, "serve")
	assert.Error(t, err)
}

func TestParseServeConfig_FlagOverridesPort(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := parseServeArgs(t, "serve", "--port", "7070", "--host", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, server.HttpConfig{Host: "127.0.0.1", Port: 7070}, cfg.HttpConfig)
}

func TestParseServeConfig_ConfigFile(t *testing.T) {
	unsetEnv(t, "PORT")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9191, "log_level": "debug"}`), 0o600))

	cfg, err := parseServeArgs(t, "--config", path, "serve")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.HttpConfig.Port)
}
