package main

import (
	"fmt"

	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/program"
	"CairoProgramHash/modules/programhash"

	"github.com/spf13/cobra"
)

var (
	programFiles []string
	jobs         int
)

func init() {
	programHashCmd.AddCommand(programCmd)
	programCmd.Flags().StringSliceVar(&programFiles, "program", nil, "The compiled program files to commit to.")
	programCmd.Flags().IntVar(&jobs, "jobs", 0, "The number of programs hashed concurrently, 0 for no limit.")

	programCmd.MarkFlagRequired("program")
}

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Print the commitment of compiled programs",
	Long: `
Print the commitment of compiled programs, one per line. With several
programs every line is followed by the program file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := programhash.ParseBackend(backendName)
		if err != nil {
			return err
		}

		lib, err := openContext("")
		if err != nil {
			return err
		}
		defer lib.Close()

		programs := make([]*program.Program, len(programFiles))
		for i, path := range programFiles {
			if programs[i], err = program.ReadProgramFile(path, lib.Field()); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}

		log.Info().
			Int("programs", len(programs)).
			Str("primitive", lib.Primitive().String()).
			Str("backend", backend.String()).
			Msg("computing program hashes")

		digests, err := programhash.ComputeMany(cmd.Context(), lib, programs, backend, jobs, hashOptions()...)
		if err != nil {
			return err
		}

		for i, digest := range digests {
			if len(digests) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), fields.FormatHex32(digest))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", fields.FormatHex32(digest), programFiles[i])
			}
		}
		return nil
	},
}
