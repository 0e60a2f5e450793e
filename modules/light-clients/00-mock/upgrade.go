package mock

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/crypto/tmhash"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

const (
	KeyUpgradedClient    = "upgradedClient"
	KeyUpgradedConsState = "upgradedConsState"
)

// UpgradedClientKey is the key a mock counterparty commits the upgraded client
// state under at the given height.
func UpgradedClientKey(height exported.Height) string {
	return fmt.Sprintf("%s/%s", KeyUpgradedClient, height)
}

// UpgradedConsStateKey is the key a mock counterparty commits the upgraded
// consensus state under at the given height.
func UpgradedConsStateKey(height exported.Height) string {
	return fmt.Sprintf("%s/%s", KeyUpgradedConsState, height)
}

// UpgradeCommitment is the commitment of a mock counterparty to value under key,
// bound to the timestamp of the consensus state it was made at.
func UpgradeCommitment(key string, timestamp uint64, value []byte) []byte {
	var bz []byte
	bz = append(bz, ModuleName...)
	bz = append(bz, key...)
	bz = append(bz, sdk.Uint64ToBigEndian(timestamp)...)
	bz = append(bz, value...)
	return tmhash.Sum(bz)
}

// NewUpgradeProof returns a mock upgrade proof: the committed value followed by
// its commitment.
func NewUpgradeProof(key string, timestamp uint64, value []byte) []byte {
	proof := make([]byte, 0, len(value)+tmhash.Size)
	proof = append(proof, value...)
	return append(proof, UpgradeCommitment(key, timestamp, value)...)
}

// verifyUpgradeProof checks a proof created by NewUpgradeProof and returns the
// value it commits to.
func verifyUpgradeProof(proof []byte, key string, timestamp uint64) ([]byte, error) {
	if len(proof) < tmhash.Size {
		return nil, sdkerrors.Wrapf(ErrInvalidProof, "proof for %s is too short: %d bytes", key, len(proof))
	}

	split := len(proof) - tmhash.Size
	value, commitment := proof[:split], proof[split:]
	if !bytes.Equal(commitment, UpgradeCommitment(key, timestamp, value)) {
		return nil, sdkerrors.Wrapf(ErrInvalidProof, "commitment mismatch for %s", key)
	}

	return value, nil
}

// VerifyUpgradeAndUpdateState checks the upgrade proofs against the consensus
// state trusted at the latest client height and returns the upgraded client.
func (LightClientModule) VerifyUpgradeAndUpdateState(
	ctx exported.VerifyContext, clientState exported.ClientState, upgradedConsState exported.ConsensusState,
	proofUpgradeClient, proofUpgradeConsState []byte,
) (exported.ClientState, exported.ConsensusState, error) {
	cs, ok := clientState.(*ClientState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ClientState{}, clientState)
	}
	mockUpgradeConsState, ok := upgradedConsState.(*ConsensusState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &ConsensusState{}, upgradedConsState)
	}
	if cs.Frozen {
		return nil, nil, ErrClientFrozen
	}
	if err := cs.Validate(); err != nil {
		return nil, nil, sdkerrors.Wrap(err, "prior client state failed basic validation")
	}

	trusted, err := ctx.GetTrustedConsensusState(cs.LatestHeight)
	if err != nil {
		return nil, nil, sdkerrors.Wrapf(err, "could not retrieve consensus state for height %s", cs.LatestHeight)
	}

	clientValue, err := verifyUpgradeProof(proofUpgradeClient, UpgradedClientKey(cs.LatestHeight), trusted.GetTimestamp())
	if err != nil {
		return nil, nil, sdkerrors.Wrap(err, "client state proof failed")
	}
	consValue, err := verifyUpgradeProof(proofUpgradeConsState, UpgradedConsStateKey(cs.LatestHeight), trusted.GetTimestamp())
	if err != nil {
		return nil, nil, sdkerrors.Wrap(err, "consensus state proof failed")
	}

	expConsValue, err := mockUpgradeConsState.Marshal()
	if err != nil {
		return nil, nil, err
	}
	if !bytes.Equal(consValue, expConsValue) {
		return nil, nil, sdkerrors.Wrap(ErrInvalidUpgrade, "committed consensus state does not match upgraded consensus state")
	}

	var upgradedClient ClientState
	if err := upgradedClient.Unmarshal(clientValue); err != nil {
		return nil, nil, sdkerrors.Wrap(ErrInvalidUpgrade, err.Error())
	}
	if !upgradedClient.LatestHeight.GT(cs.LatestHeight) {
		return nil, nil, sdkerrors.Wrapf(
			ErrInvalidUpgrade, "upgraded client height %s must be greater than current client height %s",
			upgradedClient.LatestHeight, cs.LatestHeight,
		)
	}
	if upgradedClient.Frozen {
		return nil, nil, sdkerrors.Wrap(ErrInvalidUpgrade, "upgraded client cannot be frozen")
	}

	return &upgradedClient, mockUpgradeConsState, nil
}
