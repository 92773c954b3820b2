package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/ttl-cache/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeFile(t, "greeting: hello\nanswer: 42\nenabled: true\n")

	seed, err := config.LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"greeting": "hello",
		"answer":   42,
		"enabled":  true,
	}, seed)
}

func TestLoadSeedEmpty(t *testing.T) {
	seed, err := config.LoadSeed("")
	require.NoError(t, err)
	assert.Empty(t, seed)

	seed, err = config.LoadSeed(writeFile(t, ""))
	require.NoError(t, err)
	assert.NotNil(t, seed)
	assert.Empty(t, seed)
}

func TestLoadSeedErrors(t *testing.T) {
	_, err := config.LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = config.LoadSeed(writeFile(t, "- just\n- a list\n"))
	assert.Error(t, err)
}
