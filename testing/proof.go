package ibctesting

import (
	"testing"

	ics23 "github.com/confio/ics23/go"
	"github.com/stretchr/testify/require"
)

// CommitmentTree is a two leaf simple merkle tree built with the tendermint
// proof spec. It commits to an upgraded client state and consensus state the
// way the upgrade module of a counterparty does.
type CommitmentTree struct {
	t      *testing.T
	leaves [2]*ics23.ExistenceProof
}

// NewCommitmentTree commits to value0 under key0 and value1 under key1.
func NewCommitmentTree(t *testing.T, key0, value0, key1, value1 []byte) *CommitmentTree {
	t.Helper()

	spec := ics23.TendermintSpec
	leaf0, err := spec.LeafSpec.Apply(key0, value0)
	require.NoError(t, err)
	leaf1, err := spec.LeafSpec.Apply(key1, value1)
	require.NoError(t, err)

	// inner nodes of the tendermint spec hash 0x01 || left || right
	return &CommitmentTree{
		t: t,
		leaves: [2]*ics23.ExistenceProof{
			{
				Key:   key0,
				Value: value0,
				Leaf:  spec.LeafSpec,
				Path:  []*ics23.InnerOp{{Hash: spec.InnerSpec.Hash, Prefix: []byte{1}, Suffix: leaf1}},
			},
			{
				Key:   key1,
				Value: value1,
				Leaf:  spec.LeafSpec,
				Path:  []*ics23.InnerOp{{Hash: spec.InnerSpec.Hash, Prefix: append([]byte{1}, leaf0...)}},
			},
		},
	}
}

// Root returns the root hash of the tree.
func (tree *CommitmentTree) Root() []byte {
	root, err := tree.leaves[0].Calculate()
	require.NoError(tree.t, err)
	return root
}

// Proof returns the encoded existence proof of leaf i.
func (tree *CommitmentTree) Proof(i int) []byte {
	proof := &ics23.CommitmentProof{
		Proof: &ics23.CommitmentProof_Exist{Exist: tree.leaves[i]},
	}
	bz, err := proof.Marshal()
	require.NoError(tree.t, err)
	return bz
}
