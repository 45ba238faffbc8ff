package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func lookupIn(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupIn(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupIn(map[string]string{
		EnvPrimitive:         "mimc",
		EnvBackend:           "sponge",
		EnvFlavor:            "debug",
		EnvLogLevel:          "",
		EnvLogFormat:         "json",
		EnvBootloaderVersion: "0x2",
	}))
	require.NoError(t, err)
	require.Equal(t, Config{
		Primitive:         "mimc",
		Backend:           "sponge",
		Flavor:            "debug",
		LogLevel:          "info",
		LogFormat:         "json",
		BootloaderVersion: 2,
	}, cfg)

	_, err = FromEnv(lookupIn(map[string]string{EnvBootloaderVersion: "-1"}))
	require.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(EnvBackend+"=sponge\n"+EnvBootloaderVersion+"=7\n"), 0644))

	t.Setenv(EnvBackend, "")
	t.Setenv(EnvBootloaderVersion, "")
	os.Unsetenv(EnvBackend)
	os.Unsetenv(EnvBootloaderVersion)

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "sponge", cfg.Backend)
	require.Equal(t, uint64(7), cfg.BootloaderVersion)
}
