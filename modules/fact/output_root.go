package fact

import (
	"math/big"

	"CairoProgramHash/modules/primitives/keccak"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var two256 = new(big.Int).Lsh(big.NewInt(1), 256)

// FactNode is a node of the output Merkle-like tree. Leaves are pages.
type FactNode struct {
	NodeHash  common.Hash
	EndOffset uint64
	Size      uint64
	Children  []*FactNode
}

// KeccakWords hashes values packed as big-endian uint256 words, the layout
// of a solidity uint256[] passed to abi.encodePacked.
func KeccakWords(values []*big.Int) (common.Hash, error) {
	packed, err := keccak.Words(values)
	if err != nil {
		return common.Hash{}, artifactf("%s", err.Error())
	}
	return crypto.Keccak256Hash(packed), nil
}

func mergeNodes(children []*FactNode) (*FactNode, error) {
	nodeData := make([]*big.Int, 0, 2*len(children))
	var size uint64
	for _, child := range children {
		nodeData = append(nodeData,
			child.NodeHash.Big(),
			new(big.Int).SetUint64(child.EndOffset),
		)
		size += child.Size
	}

	digest, err := KeccakWords(nodeData)
	if err != nil {
		return nil, err
	}

	// inner node hashes are the raw keccak plus one
	nodeHash := digest.Big()
	nodeHash.Add(nodeHash, big.NewInt(1))
	nodeHash.Mod(nodeHash, two256)

	return &FactNode{
		NodeHash:  common.BigToHash(nodeHash),
		EndOffset: children[len(children)-1].EndOffset,
		Size:      size,
		Children:  children,
	}, nil
}

// OutputRoot builds the output tree of programOutput following ft and
// returns its root. Every page and every output element must be consumed and
// exactly one node must remain.
func OutputRoot(programOutput []*big.Int, ft FactTopology) (*FactNode, error) {
	if err := ft.Validate(); err != nil {
		return nil, err
	}

	var nodeStack []*FactNode
	var offset uint64
	nextPageIndex := 0
	outputSize := uint64(len(programOutput))

	for i := 0; i < len(ft.TreeStructure); i += 2 {
		nPages, nNodes := ft.TreeStructure[i], ft.TreeStructure[i+1]

		if nPages > uint64(len(ft.PageSizes)-nextPageIndex) {
			return nil, topologyf("tree structure asks for %d pages, %d left", nPages, len(ft.PageSizes)-nextPageIndex)
		}

		for range nPages {
			pageSize := ft.PageSizes[nextPageIndex]
			if pageSize > outputSize-offset {
				return nil, topologyf("page %d of size %d overruns the output", nextPageIndex, pageSize)
			}

			pageHash, err := KeccakWords(programOutput[offset : offset+pageSize])
			if err != nil {
				return nil, err
			}

			nodeStack = append(nodeStack, &FactNode{
				NodeHash:  pageHash,
				EndOffset: offset + pageSize,
				Size:      pageSize,
			})
			offset += pageSize
			nextPageIndex++
		}

		if nNodes > uint64(len(nodeStack)) {
			return nil, topologyf("cannot merge %d nodes, stack holds %d", nNodes, len(nodeStack))
		}

		if nNodes > 0 {
			split := len(nodeStack) - int(nNodes)
			children := append([]*FactNode(nil), nodeStack[split:]...)
			nodeStack = nodeStack[:split]

			node, err := mergeNodes(children)
			if err != nil {
				return nil, err
			}
			nodeStack = append(nodeStack, node)
		}
	}

	if len(nodeStack) != 1 {
		return nil, topologyf("%d nodes left on the stack, expected 1", len(nodeStack))
	}
	if nextPageIndex != len(ft.PageSizes) {
		return nil, topologyf("%d of %d pages used", nextPageIndex, len(ft.PageSizes))
	}
	if offset != outputSize {
		return nil, topologyf("%d of %d output elements used", offset, outputSize)
	}

	return nodeStack[0], nil
}
