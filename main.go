package main

import (
	"fmt"
	"os"

	"CairoProgramHash/modules/config"
	"CairoProgramHash/modules/cryptolib"
	"CairoProgramHash/modules/logging"
	"CairoProgramHash/modules/programhash"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	primitiveName     string
	backendName       string
	flavorName        string
	bootloaderVersion uint64
	requireData       bool

	logLevel  string
	logFormat string

	log = zerolog.Nop()
)

func registerRootFlags(cfg config.Config) {
	flags := programHashCmd.PersistentFlags()
	flags.StringVar(&primitiveName, "primitive", cfg.Primitive, "The compression primitive suite - one of pedersen/poseidon/mimc/keccak.")
	flags.StringVar(&backendName, "backend", cfg.Backend, "The commitment backend - one of chain/sponge.")
	flags.StringVar(&flavorName, "flavor", cfg.Flavor, "The crypto context flavor - one of Debug/Release/RelWithDebInfo.")
	flags.Uint64Var(&bootloaderVersion, "bootloader-version", cfg.BootloaderVersion, "The version tag placed first in the hash chain input.")
	flags.BoolVar(&requireData, "require-data", false, "Reject programs without data.")
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel, "The log level, logs go to stderr.")
	flags.StringVar(&logFormat, "log-format", cfg.LogFormat, "The log format - one of console/json.")
}

var programHashCmd = &cobra.Command{
	Use:          "programhash",
	Short:        "Compute program commitments and the facts of their executions",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format, err := logging.ParseFormat(logFormat)
		if err != nil {
			return err
		}
		if log, err = logging.New(os.Stderr, logLevel, format); err != nil {
			return err
		}
		logging.Install(log)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

// openContext opens the crypto context selected by the root flags, with
// primitive overriding --primitive when set.
func openContext(primitive string) (*cryptolib.Context, error) {
	if primitive == "" {
		primitive = primitiveName
	}

	p, err := cryptolib.ParsePrimitive(primitive)
	if err != nil {
		return nil, err
	}
	flavor, err := cryptolib.ParseFlavor(flavorName)
	if err != nil {
		return nil, err
	}

	return cryptolib.Open(cryptolib.Config{Primitive: p, Flavor: flavor, Logger: log})
}

func hashOptions() []programhash.Option {
	opts := []programhash.Option{programhash.WithBootloaderVersion(bootloaderVersion)}
	if requireData {
		opts = append(opts, programhash.RequireNonEmptyData())
	}
	return opts
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	registerRootFlags(cfg)

	if err := programHashCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
