package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_InvalidConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	code := run(context.Background(), []string{appName, "--config", missing, "serve"})

	assert.Equal(t, 1, code)
}

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

func TestRunCommand_InheritsFlags(t *testing.T) {
	names := map[string]bool{}
	for _, flag := range runCmd.Flags {
		names[flag.Names()[0]] = true
	}

	for _, name := range []string{"host", "port", "h2c", "lambda-proxy-source"} {
		assert.True(t, names[name], name)
	}
}
