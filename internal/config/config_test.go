package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "neogov.yaml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0600))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, &Config{Timeout: DefaultTimeout}, cfg)
	})

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
rpc: http://localhost:30333
timeout: 3s
contracts:
  rolemanager: NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP
  governance: 0x0102030405060708090a0b0c0d0e0f1011121314
`))
		require.NoError(t, err)
		require.Equal(t, &Config{
			RPCEndpoint: "http://localhost:30333",
			Timeout:     3 * time.Second,
			Contracts: Contracts{
				RoleManager: "NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP",
				Governance:  "0x0102030405060708090a0b0c0d0e0f1011121314",
			},
		}, cfg)
	})

	t.Run("timeout kept", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "rpc: http://localhost:30333\n"))
		require.NoError(t, err)
		require.Equal(t, DefaultTimeout, cfg.Timeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "rpc: [\n"))
		require.ErrorContains(t, err, "parse config file")
	})

	t.Run("negative timeout", func(t *testing.T) {
		_, err := Load(writeConfig(t, "timeout: -1s\n"))
		require.Error(t, err)
	})
}

func TestContext(t *testing.T) {
	require.Nil(t, FromContext(context.Background()))

	cfg := &Config{RPCEndpoint: "http://localhost:30333"}
	require.Same(t, cfg, FromContext(WithContext(context.Background(), cfg)))
}
