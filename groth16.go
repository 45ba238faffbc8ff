package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"CairoProgramHash/modules/circuit"
	"CairoProgramHash/modules/cryptolib"
	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/program"
	"CairoProgramHash/modules/programhash"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/spf13/cobra"
)

var (
	groth16ProgramFile string
	groth16CRSFile     string
	groth16VKFile      string
	groth16ProofFile   string
	groth16Mode        string
)

var groth16Cmd = &cobra.Command{
	Use:   "groth16",
	Short: "Prove the MiMC commitment of a program with Groth16",
	Long: `
Recompute the MiMC commitment of a program inside a gnark circuit and
setup, prove or verify it with Groth16 over BN254. The program data stays
private, the commitment is the only public input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Groth16Impl(cmd.OutOrStdout())
	},
}

func init() {
	programHashCmd.AddCommand(groth16Cmd)
	groth16Cmd.Flags().StringVar(&groth16ProgramFile, "program", "", "The compiled program the commitment is proven for.")
	groth16Cmd.Flags().StringVar(&groth16CRSFile, "groth16-crs", "", "The Groth16 proving key file.")
	groth16Cmd.Flags().StringVar(&groth16VKFile, "groth16-vk", "", "The Groth16 verifying key file.")
	groth16Cmd.Flags().StringVar(&groth16ProofFile, "groth16-proof", "", "The Groth16 proof file.")
	groth16Cmd.Flags().StringVar(&groth16Mode, "groth16-mode", "", "The Groth16 work mode - one of prove/verify/setup.")

	groth16Cmd.MarkFlagRequired("program")
	groth16Cmd.MarkFlagRequired("groth16-mode")
}

func writeTo(path string, w io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = w.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readFrom(path string, r io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = r.ReadFrom(f)
	return err
}

func Groth16Impl(out io.Writer) error {
	backend, err := programhash.ParseBackend(backendName)
	if err != nil {
		return err
	}

	lib, err := openContext(cryptolib.MiMC.String())
	if err != nil {
		return err
	}
	defer lib.Close()

	p, err := program.ReadProgramFile(groth16ProgramFile, lib.Field())
	if err != nil {
		return err
	}

	assignment, err := circuit.Assign(lib, p, backend, hashOptions()...)
	if err != nil {
		return err
	}

	cs, err := circuit.Compile(len(assignment.Input), backend)
	if err != nil {
		return err
	}

	log.Info().
		Int("constraints", cs.GetNbConstraints()).
		Int("internal", cs.GetNbInternalVariables()).
		Int("secret", cs.GetNbSecretVariables()).
		Int("public", cs.GetNbPublicVariables()).
		Msg("circuit compiled")

	pk := groth16.NewProvingKey(ecc.BN254)
	vk := groth16.NewVerifyingKey(ecc.BN254)
	proof := groth16.NewProof(ecc.BN254)

	switch groth16Mode {
	case "setup":
		log.Info().Msg("Groth16 generating setup from scratch")
		if pk, vk, err = groth16.Setup(cs); err != nil {
			return err
		}
		if err = writeTo(groth16CRSFile, pk); err != nil {
			return fmt.Errorf("write proving key: %w", err)
		}
		if err = writeTo(groth16VKFile, vk); err != nil {
			return fmt.Errorf("write verifying key: %w", err)
		}
	case "prove":
		log.Info().Msg("Groth16 reading CRS from file")
		if err = readFrom(groth16CRSFile, pk); err != nil {
			return fmt.Errorf("read proving key: %w", err)
		}
		if proof, err = circuit.Prove(cs, pk, assignment); err != nil {
			return err
		}
		if err = writeTo(groth16ProofFile, proof); err != nil {
			return fmt.Errorf("write proof: %w", err)
		}
	case "verify":
		log.Info().Msg("Groth16 reading vk from file")
		if err = readFrom(groth16VKFile, vk); err != nil {
			return fmt.Errorf("read verifying key: %w", err)
		}
		if err = readFrom(groth16ProofFile, proof); err != nil {
			return fmt.Errorf("read proof: %w", err)
		}
		if err = circuit.Verify(proof, vk, assignment); err != nil {
			return err
		}
	default:
		return fmt.Errorf(`unknown groth16 mode "%s", expected one of prove/verify/setup`, groth16Mode)
	}

	fmt.Fprintln(out, fields.FormatHex32(assignment.Digest.(*big.Int)))
	return nil
}
