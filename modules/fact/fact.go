package fact

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FactInfo is the statement a verifier registers: the program output, how it
// is paged, and the fact binding both to the program commitment.
type FactInfo struct {
	ProgramOutput []*big.Int
	FactTopology  FactTopology
	OutputRoot    *FactNode
	Fact          common.Hash
}

// FactInfoProvider turns a program commitment and the artifact of one
// execution into a fact. Implementations own the fact algorithm; the
// commitment is taken as given.
type FactInfoProvider interface {
	FactInfo(commitment *big.Int, artifact *Artifact) (*FactInfo, error)
}

// KeccakFactProvider computes
//
//	fact = keccak(uint256(commitment) || uint256(output_root))
//
// with the output root built by OutputRoot.
type KeccakFactProvider struct{}

// ProgramFact computes the fact of a program output under a topology.
func ProgramFact(commitment *big.Int, programOutput []*big.Int, ft FactTopology) (common.Hash, *FactNode, error) {
	root, err := OutputRoot(programOutput, ft)
	if err != nil {
		return common.Hash{}, nil, err
	}

	fact, err := KeccakWords([]*big.Int{commitment, root.NodeHash.Big()})
	if err != nil {
		return common.Hash{}, nil, err
	}
	return fact, root, nil
}

func (KeccakFactProvider) FactInfo(commitment *big.Int, artifact *Artifact) (*FactInfo, error) {
	if artifact == nil {
		return nil, artifactf("missing artifact")
	}

	ft, err := artifact.Topology()
	if err != nil {
		return nil, err
	}

	fact, root, err := ProgramFact(commitment, artifact.ProgramOutput, ft)
	if err != nil {
		return nil, err
	}

	return &FactInfo{
		ProgramOutput: artifact.ProgramOutput,
		FactTopology:  ft,
		OutputRoot:    root,
		Fact:          fact,
	}, nil
}

// DeriveFact runs the default provider.
func DeriveFact(commitment *big.Int, artifact *Artifact) (common.Hash, error) {
	info, err := KeccakFactProvider{}.FactInfo(commitment, artifact)
	if err != nil {
		return common.Hash{}, err
	}
	return info.Fact, nil
}
