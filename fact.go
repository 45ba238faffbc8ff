package main

import (
	"fmt"

	"CairoProgramHash/modules/fact"
	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/programhash"

	"github.com/spf13/cobra"
)

var artifactFile string

func init() {
	programHashCmd.AddCommand(factCmd)
	factCmd.Flags().StringVar(&artifactFile, "artifact", "", "The execution artifact: program, program_output and optional output builtin pages.")

	factCmd.MarkFlagRequired("artifact")
}

var factCmd = &cobra.Command{
	Use:   "fact",
	Short: "Print the fact of a program execution",
	Args:  cobra.NoArgs,
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

		artifact, err := fact.ReadArtifactFile(artifactFile, lib.Field())
		if err != nil {
			return err
		}

		commitment, err := programhash.Compute(lib, artifact.Program, backend, hashOptions()...)
		if err != nil {
			return err
		}

		info, err := fact.KeccakFactProvider{}.FactInfo(commitment, artifact)
		if err != nil {
			return err
		}

		log.Info().
			Str("program_hash", fields.FormatHex32(commitment)).
			Uints64("page_sizes", info.FactTopology.PageSizes).
			Uints64("tree_structure", info.FactTopology.TreeStructure).
			Msg("fact derived")

		fmt.Fprintln(cmd.OutOrStdout(), info.Fact.Hex())
		return nil
	},
}
