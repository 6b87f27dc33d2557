package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	tmp := t.TempDir()

	p := filepath.Join(tmp, "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(`
ApplicationConfiguration:
  ChiaCLI: "ssh farm chia"
  LogLevel: debug
`), 0o644))

	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, "ssh farm chia", cfg.ApplicationConfiguration.ChiaCLI)
	require.Equal(t, "debug", cfg.ApplicationConfiguration.LogLevel)

	// Unset CLI falls back to the default.
	require.NoError(t, os.WriteFile(p, []byte(`
ApplicationConfiguration:
  LogLevel: info
`), 0o644))
	cfg, err = LoadFile(p)
	require.NoError(t, err)
	require.Equal(t, DefaultCLI, cfg.ApplicationConfiguration.ChiaCLI)

	_, err = LoadFile(filepath.Join(tmp, "missing.yml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(p, []byte("{invalid"), 0o644))
	_, err = LoadFile(p)
	require.Error(t, err)
}
