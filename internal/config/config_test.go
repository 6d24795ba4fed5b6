package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	prev := stderrIsTerminal
	stderrIsTerminal = func() bool { return tty }
	t.Cleanup(func() { stderrIsTerminal = prev })
}

// chdir is equivalent to testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	withTerminal(t, true)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.ASCII)
}

func TestLoadDebugDefaultsOnWhenRedirected(t *testing.T) {
	chdir(t, t.TempDir())
	withTerminal(t, false)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	withTerminal(t, false)
	t.Setenv("BLACKJACK_SEED", "42")
	t.Setenv("BLACKJACK_DEBUG", "false")
	t.Setenv("BLACKJACK_ASCII", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.ASCII)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	withTerminal(t, true)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BLACKJACK_SEED=7\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BLACKJACK_SEED") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadInvalidSeed(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BLACKJACK_SEED", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
