package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/buildersig/config/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newContext(t *testing.T, values map[string]string) *cli.Context {
	app := cli.App{}
	set := flag.NewFlagSet("test", 0)
	for _, f := range []*cli.StringFlag{ConfigFileFlag, ChainFlag, SecretKeyFileFlag, PasswordFileFlag} {
		set.String(f.Name, f.Value, "")
	}
	for k, v := range values {
		require.NoError(t, set.Set(k, v))
	}
	return cli.NewContext(&app, set, nil)
}

func TestSignerSettings_Flags(t *testing.T) {
	cfg, err := SignerSettings(newContext(t, map[string]string{
		ChainFlag.Name:         "Holesky",
		SecretKeyFileFlag.Name: "/tmp/key",
	}))
	require.NoError(t, err)
	assert.Equal(t, params.Holesky, cfg.Chain)
	assert.Equal(t, "/tmp/key", cfg.SecretKeyFile)

	cfg, err = SignerSettings(newContext(t, nil))
	require.NoError(t, err)
	assert.Equal(t, params.Mainnet, cfg.Chain)
}

func TestSignerSettings_UnknownChain(t *testing.T) {
	_, err := SignerSettings(newContext(t, map[string]string{ChainFlag.Name: "goerli"}))
	assert.ErrorIs(t, err, params.ErrUnknownChain)
}

func TestSignerSettings_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("CHAIN: sepolia\nSECRET_KEY_FILE: /keys/a\n"), 0600))

	cfg, err := SignerSettings(newContext(t, map[string]string{ConfigFileFlag.Name: path}))
	require.NoError(t, err)
	assert.Equal(t, params.Sepolia, cfg.Chain)
	assert.Equal(t, "/keys/a", cfg.SecretKeyFile)

	cfg, err = SignerSettings(newContext(t, map[string]string{
		ConfigFileFlag.Name:    path,
		SecretKeyFileFlag.Name: "/keys/b",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/keys/b", cfg.SecretKeyFile)
	assert.Empty(t, cfg.PasswordFile)

	cfg, err = SignerSettings(newContext(t, map[string]string{
		ConfigFileFlag.Name:   path,
		PasswordFileFlag.Name: "/keys/pass",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/keys/a", cfg.SecretKeyFile)
	assert.Equal(t, "/keys/pass", cfg.PasswordFile)

	_, err = SignerSettings(newContext(t, map[string]string{ConfigFileFlag.Name: filepath.Join(t.TempDir(), "missing.yaml")}))
	assert.Error(t, err)
}

func TestSignerSettings_ChainFlagWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("CHAIN: sepolia\nSECRET_KEY_FILE: /keys/a\n"), 0600))

	cfg, err := SignerSettings(newContext(t, map[string]string{
		ConfigFileFlag.Name: path,
		ChainFlag.Name:      "sepolia",
	}))
	require.NoError(t, err)
	assert.Equal(t, params.Sepolia, cfg.Chain)

	_, err = SignerSettings(newContext(t, map[string]string{
		ConfigFileFlag.Name: path,
		ChainFlag.Name:      "mainnet",
	}))
	assert.ErrorIs(t, err, ErrChainConflict)

	_, err = SignerSettings(newContext(t, map[string]string{
		ConfigFileFlag.Name: path,
		ChainFlag.Name:      "goerli",
	}))
	assert.ErrorIs(t, err, params.ErrUnknownChain)
}
