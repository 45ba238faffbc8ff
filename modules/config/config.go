package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

// Environment variables read by FromEnv.
const (
	EnvPrimitive         = "PROGRAMHASH_PRIMITIVE"
	EnvBackend           = "PROGRAMHASH_BACKEND"
	EnvFlavor            = "PROGRAMHASH_FLAVOR"
	EnvLogLevel          = "PROGRAMHASH_LOG_LEVEL"
	EnvLogFormat         = "PROGRAMHASH_LOG_FORMAT"
	EnvBootloaderVersion = "PROGRAMHASH_BOOTLOADER_VERSION"
)

// Config holds the defaults of the command line flags. Values are kept as
// names and parsed by the packages owning them.
type Config struct {
	Primitive         string
	Backend           string
	Flavor            string
	LogLevel          string
	LogFormat         string
	BootloaderVersion uint64
}

// Default is the configuration with nothing set.
func Default() Config {
	return Config{
		Primitive: "pedersen",
		Backend:   "chain",
		Flavor:    "Release",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads the given env files (".env" when none) into the process
// environment and returns FromEnv(os.LookupEnv). Missing files are skipped,
// variables already set are not overridden.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := gotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv overlays the variables found by lookup on Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	for name, dst := range map[string]*string{
		EnvPrimitive: &cfg.Primitive,
		EnvBackend:   &cfg.Backend,
		EnvFlavor:    &cfg.Flavor,
		EnvLogLevel:  &cfg.LogLevel,
		EnvLogFormat: &cfg.LogFormat,
	} {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvBootloaderVersion); ok && v != "" {
		version, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvBootloaderVersion, err)
		}
		cfg.BootloaderVersion = version
	}

	return cfg, nil
}
