package ibctesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto"
	cryptoenc "github.com/tendermint/tendermint/crypto/encoding"
	"github.com/tendermint/tendermint/crypto/tmhash"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmprotoversion "github.com/tendermint/tendermint/proto/tendermint/version"
	tmtypes "github.com/tendermint/tendermint/types"
	tmversion "github.com/tendermint/tendermint/version"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	ibctm "github.com/ibc-validity/ibc-vp/modules/light-clients/07-tendermint"
)

// TestChainTendermint simulates the tendermint counterparty of a 07-tendermint
// client. The chain starts with a single validator and commits one block per
// call to NextBlock.
type TestChainTendermint struct {
	t *testing.T

	ChainID string
	Vals    *tmtypes.ValidatorSet
	Signers []tmtypes.PrivValidator // ordered as Vals.Validators

	privVals    map[string]tmtypes.PrivValidator
	valsHistory map[int64]*tmtypes.ValidatorSet

	// CurrentTime is the time of the next block.
	CurrentTime time.Time
	// AppHash is committed to by the next block.
	AppHash []byte

	LastHeader *ibctm.Header // header for last block height committed
}

// NewTestChainTendermint creates a chain with a single validator whose first
// block is produced at startTime.
func NewTestChainTendermint(t *testing.T, chainID string, startTime time.Time) *TestChainTendermint {
	t.Helper()

	privVal := tmtypes.NewMockPV()
	pubKey, err := privVal.GetPubKey()
	require.NoError(t, err)

	validator := tmtypes.NewValidator(pubKey, 1)
	valSet := tmtypes.NewValidatorSet([]*tmtypes.Validator{validator})

	chain := &TestChainTendermint{
		t:           t,
		ChainID:     chainID,
		Vals:        valSet,
		Signers:     []tmtypes.PrivValidator{privVal},
		privVals:    map[string]tmtypes.PrivValidator{pubKey.Address().String(): privVal},
		valsHistory: make(map[int64]*tmtypes.ValidatorSet),
		CurrentTime: startTime.UTC(),
		AppHash:     tmhash.Sum([]byte("app_hash")),
	}
	chain.NextBlock()
	return chain
}

// NextBlock commits a block at the next height and advances the clock by a minute.
func (chain *TestChainTendermint) NextBlock() *ibctm.Header {
	height := int64(1)
	if chain.LastHeader != nil {
		height = chain.LastHeader.Header.Height + 1
	}

	chain.LastHeader = chain.CreateTMClientHeader(
		chain.ChainID, height, clienttypes.ZeroHeight(), chain.CurrentTime, chain.Vals, nil, chain.Signers,
	)
	chain.valsHistory[height] = chain.Vals
	chain.CurrentTime = chain.CurrentTime.Add(time.Minute)
	return chain.LastHeader
}

// LastHeight returns the height of the last committed block.
func (chain *TestChainTendermint) LastHeight() clienttypes.Height {
	return chain.LastHeader.GetHeight().(clienttypes.Height)
}

// ClientState returns a client state tracking the chain at its last height.
func (chain *TestChainTendermint) ClientState(cfg *TendermintConfig) *ibctm.ClientState {
	return ibctm.NewClientState(
		chain.ChainID, cfg.TrustLevel, cfg.TrustingPeriod, cfg.UnbondingPeriod, cfg.MaxClockDrift,
		chain.LastHeight(), ibctm.GetProofSpecs(), cfg.UpgradePath,
	)
}

// ConsensusState returns the consensus state of the last committed block.
func (chain *TestChainTendermint) ConsensusState() *ibctm.ConsensusState {
	return chain.LastHeader.ConsensusState()
}

// UpdateHeader commits the next block and returns its header trusted from
// trustedHeight. The trusted validators are the ones that signed the block at
// trustedHeight, or the current ones if the chain never committed it.
func (chain *TestChainTendermint) UpdateHeader(trustedHeight clienttypes.Height) *ibctm.Header {
	header := chain.NextBlock()

	vals, ok := chain.valsHistory[int64(trustedHeight.RevisionHeight)]
	if !ok {
		vals = chain.Vals
	}
	trustedVals, err := vals.ToProto()
	require.NoError(chain.t, err)

	return &ibctm.Header{
		SignedHeader:      header.SignedHeader,
		ValidatorSet:      header.ValidatorSet,
		TrustedHeight:     trustedHeight,
		TrustedValidators: trustedVals,
	}
}

// AddValidator adds a new validator with the given voting power. It signs the
// blocks committed from now on.
func (chain *TestChainTendermint) AddValidator(power int64) {
	privVal := tmtypes.NewMockPV()
	pubKey, err := privVal.GetPubKey()
	require.NoError(chain.t, err)

	chain.privVals[pubKey.Address().String()] = privVal
	chain.applyValSetChange(pubKey.Address(), power)
}

// SetValidatorPower changes the voting power of the validator at index in the
// current set. A zero power removes it.
func (chain *TestChainTendermint) SetValidatorPower(index int, power int64) {
	require.Less(chain.t, index, chain.Vals.Size())
	_, val := chain.Vals.GetByIndex(int32(index))
	chain.applyValSetChange(val.Address, power)
}

func (chain *TestChainTendermint) applyValSetChange(address crypto.Address, power int64) {
	pubKey, err := chain.privVals[address.String()].GetPubKey()
	require.NoError(chain.t, err)
	pk, err := cryptoenc.PubKeyToProto(pubKey)
	require.NoError(chain.t, err)

	chain.Vals = ApplyValSetChanges(chain.t, chain.Vals, []abci.ValidatorUpdate{{PubKey: pk, Power: power}})

	// commits are signed in validator set order
	chain.Signers = make([]tmtypes.PrivValidator, 0, chain.Vals.Size())
	for _, val := range chain.Vals.Validators {
		chain.Signers = append(chain.Signers, chain.privVals[val.Address.String()])
	}
}

// CreateTMClientHeader creates a TM header to update the TM client. Args are passed in to allow
// caller flexibility to use params that differ from the chain.
func (chain *TestChainTendermint) CreateTMClientHeader(chainID string, blockHeight int64, trustedHeight clienttypes.Height, timestamp time.Time, tmValSet, tmTrustedVals *tmtypes.ValidatorSet, signers []tmtypes.PrivValidator) *ibctm.Header {
	var (
		valSet      *tmproto.ValidatorSet
		trustedVals *tmproto.ValidatorSet
	)
	require.NotNil(chain.t, tmValSet)

	vsetHash := tmValSet.Hash()

	tmHeader := tmtypes.Header{
		Version:            tmprotoversion.Consensus{Block: tmversion.BlockProtocol, App: 2},
		ChainID:            chainID,
		Height:             blockHeight,
		Time:               timestamp,
		LastBlockID:        MakeBlockID(make([]byte, tmhash.Size), 10_000, make([]byte, tmhash.Size)),
		LastCommitHash:     tmhash.Sum([]byte("last_commit_hash")),
		DataHash:           tmhash.Sum([]byte("data_hash")),
		ValidatorsHash:     vsetHash,
		NextValidatorsHash: vsetHash,
		ConsensusHash:      tmhash.Sum([]byte("consensus_hash")),
		AppHash:            chain.AppHash,
		LastResultsHash:    tmhash.Sum([]byte("last_results_hash")),
		EvidenceHash:       tmhash.Sum([]byte("evidence_hash")),
		ProposerAddress:    tmValSet.GetProposer().Address,
	}

	hhash := tmHeader.Hash()
	blockID := MakeBlockID(hhash, 3, tmhash.Sum([]byte("part_set")))
	voteSet := tmtypes.NewVoteSet(chainID, blockHeight, 1, tmproto.PrecommitType, tmValSet)

	commit, err := tmtypes.MakeCommit(blockID, blockHeight, 1, voteSet, signers, timestamp)
	require.NoError(chain.t, err)

	signedHeader := &tmproto.SignedHeader{
		Header: tmHeader.ToProto(),
		Commit: commit.ToProto(),
	}

	valSet, err = tmValSet.ToProto()
	require.NoError(chain.t, err)

	if tmTrustedVals != nil {
		trustedVals, err = tmTrustedVals.ToProto()
		require.NoError(chain.t, err)
	}

	// The trusted fields may be nil. They may be filled before relaying messages to a client.
	return &ibctm.Header{
		SignedHeader:      signedHeader,
		ValidatorSet:      valSet,
		TrustedHeight:     trustedHeight,
		TrustedValidators: trustedVals,
	}
}

// MakeBlockID copied unimported test functions from tmtypes to use them here
func MakeBlockID(hash []byte, partSetSize uint32, partSetHash []byte) tmtypes.BlockID {
	return tmtypes.BlockID{
		Hash: hash,
		PartSetHeader: tmtypes.PartSetHeader{
			Total: partSetSize,
			Hash:  partSetHash,
		},
	}
}
