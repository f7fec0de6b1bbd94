package env

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemProvider_Hostname(t *testing.T) {
	expected, err := os.Hostname()
	require.NoError(t, err)

	p := NewSystemProvider(Params{})

	actual, err := p.Hostname()
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestSystemProvider_Hostname_Error(t *testing.T) {
	p := &SystemProvider{
		hostname: func() (string, error) { return "", assert.AnError },
		lookup:   os.LookupEnv,
	}

	_, err := p.Hostname()
	assert.True(t, errors.Is(err, assert.AnError))
}

func TestSystemProvider_Get_Unset(t *testing.T) {
	t.Setenv("HOSTGREET_TEST_VAR", "")
	os.Unsetenv("HOSTGREET_TEST_VAR")

	p := NewSystemProvider(Params{})

	assert.Equal(t, "dev", p.Get("HOSTGREET_TEST_VAR", "dev"))
}

func TestSystemProvider_Get_Set(t *testing.T) {
	t.Setenv("HOSTGREET_TEST_VAR", "staging")

	p := NewSystemProvider(Params{})

	assert.Equal(t, "staging", p.Get("HOSTGREET_TEST_VAR", "dev"))
}

func TestSystemProvider_Get_SetEmpty(t *testing.T) {
	t.Setenv("HOSTGREET_TEST_VAR", "")

	p := NewSystemProvider(Params{})

	assert.Equal(t, "", p.Get("HOSTGREET_TEST_VAR", "dev"))
}

func TestSystemProvider_Get_Overlay(t *testing.T) {
	t.Setenv("HOSTGREET_TEST_VAR", "")
	os.Unsetenv("HOSTGREET_TEST_VAR")

	p := NewSystemProvider(Params{
		Overlay: map[string]string{"HOSTGREET_TEST_VAR": "prod"},
	})

	assert.Equal(t, "prod", p.Get("HOSTGREET_TEST_VAR", "dev"))
}

func TestSystemProvider_Get_EnvBeatsOverlay(t *testing.T) {
	t.Setenv("HOSTGREET_TEST_VAR", "staging")

	p := NewSystemProvider(Params{
		Overlay: map[string]string{"HOSTGREET_TEST_VAR": "prod"},
	})

	assert.Equal(t, "staging", p.Get("HOSTGREET_TEST_VAR", "dev"))
}
