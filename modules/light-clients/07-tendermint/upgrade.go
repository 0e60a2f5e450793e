package tendermint

import (
	"fmt"
	"strings"
	"time"

	ics23 "github.com/confio/ics23/go"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	upgradetypes "github.com/cosmos/cosmos-sdk/x/upgrade/types"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// verifyUpgradeAndUpdateState checks if the upgraded client has been committed by the current client
// It will zero out all client-specific fields and verify all data in client state that must
// be the same across all valid Tendermint clients for the new chain.
// Note, if there is a decrease in the UnbondingPeriod, then the TrustingPeriod, despite being a client-specific field
// is scaled down by the same ratio.
//
// The upgraded client state is the value committed by the client proof. The
// counterparty commits to it with all client customizable fields zeroed out.
// VerifyUpgrade will return an error if:
// - the upgradedClient is not a Tendermint ClientState
// - the height of upgraded client is not greater than that of current client
// - the committed client state is not the zeroed out upgraded client
// - either proof does not verify against the root of the consensus state at the latest height
func (cs ClientState) verifyUpgradeAndUpdateState(
	cdc codec.BinaryCodec, consState *ConsensusState, tmUpgradeConsState *ConsensusState,
	upgradeClientProof, upgradeConsStateProof []byte,
) (*ClientState, *ConsensusState, error) {
	if len(cs.UpgradePath) == 0 {
		return nil, nil, sdkerrors.Wrap(ErrInvalidUpgradeClient, "cannot upgrade client, no upgrade path set")
	}
	if cs.IsFrozen() {
		return nil, nil, sdkerrors.Wrapf(ErrClientFrozen, "client frozen at height %s", cs.FrozenHeight)
	}
	if len(cs.ProofSpecs) == 0 {
		return nil, nil, sdkerrors.Wrap(ErrInvalidProofSpecs, "client has no proof specs")
	}

	// unmarshal proofs
	var proofClient, proofConsState ics23.CommitmentProof
	if err := proofClient.Unmarshal(upgradeClientProof); err != nil {
		return nil, nil, sdkerrors.Wrapf(ErrInvalidProof, "could not unmarshal client merkle proof: %v", err)
	}
	if err := proofConsState.Unmarshal(upgradeConsStateProof); err != nil {
		return nil, nil, sdkerrors.Wrapf(ErrInvalidProof, "could not unmarshal consensus state merkle proof: %v", err)
	}

	exist := proofClient.GetExist()
	if exist == nil {
		return nil, nil, sdkerrors.Wrap(ErrInvalidProof, "client proof must be an existence proof")
	}
	upgradedClient, err := clienttypes.UnmarshalClientState(cdc, exist.Value)
	if err != nil {
		return nil, nil, sdkerrors.Wrap(ErrInvalidUpgradeClient, err.Error())
	}

	// upgraded client state and consensus state must be IBC tendermint client state and consensus state
	// this may be modified in the future to upgrade to a new IBC tendermint type
	// counterparty must also commit to the upgraded consensus state at a sub-path under the upgrade path specified
	tmUpgradeClient, ok := upgradedClient.(*ClientState)
	if !ok {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClientType, "upgraded client must be Tendermint client. expected: %T got: %T",
			&ClientState{}, upgradedClient)
	}

	// last height of current counterparty chain must be client's latest height
	lastHeight := cs.LatestHeight

	if !tmUpgradeClient.LatestHeight.GT(lastHeight) {
		return nil, nil, sdkerrors.Wrapf(ErrInvalidUpgradeClient, "upgraded client height %s must be greater than current client height %s",
			tmUpgradeClient.LatestHeight, lastHeight)
	}

	// Verify client proof
	bz, err := cdc.MarshalInterface(tmUpgradeClient.ZeroCustomFields())
	if err != nil {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidClient, "could not marshal client state: %v", err)
	}
	upgradeClientKey := constructUpgradeClientKey(cs.UpgradePath, lastHeight)
	if !ics23.VerifyMembership(cs.ProofSpecs[0], consState.GetRoot(), &proofClient, []byte(upgradeClientKey), bz) {
		return nil, nil, sdkerrors.Wrapf(ErrInvalidProof, "client state proof failed. Path: %s", upgradeClientKey)
	}

	// Verify consensus state proof
	bz, err = cdc.MarshalInterface(tmUpgradeConsState)
	if err != nil {
		return nil, nil, sdkerrors.Wrapf(clienttypes.ErrInvalidConsensus, "could not marshal consensus state: %v", err)
	}
	upgradeConsStateKey := constructUpgradeConsStateKey(cs.UpgradePath, lastHeight)
	if !ics23.VerifyMembership(cs.ProofSpecs[0], consState.GetRoot(), &proofConsState, []byte(upgradeConsStateKey), bz) {
		return nil, nil, sdkerrors.Wrapf(ErrInvalidProof, "consensus state proof failed. Path: %s", upgradeConsStateKey)
	}

	trustingPeriod := cs.TrustingPeriod
	if tmUpgradeClient.UnbondingPeriod < cs.UnbondingPeriod {
		trustingPeriod = calculateNewTrustingPeriod(trustingPeriod, cs.UnbondingPeriod, tmUpgradeClient.UnbondingPeriod)
	}

	// Construct new client state and consensus state
	// Relayer chosen client parameters are ignored.
	// All chain-chosen parameters come from committed client, all client-chosen parameters
	// come from current client.
	newClientState := NewClientState(
		tmUpgradeClient.ChainId, cs.TrustLevel, trustingPeriod, tmUpgradeClient.UnbondingPeriod,
		cs.MaxClockDrift, tmUpgradeClient.LatestHeight, tmUpgradeClient.ProofSpecs, tmUpgradeClient.UpgradePath,
	)

	if err := newClientState.Validate(); err != nil {
		return nil, nil, sdkerrors.Wrap(err, "updated client state failed basic validation")
	}

	// The upgraded consensus state is kept exactly as committed by the old chain,
	// it is the trusted kernel headers of the new chain are verified against.
	if err := tmUpgradeConsState.ValidateBasic(); err != nil {
		return nil, nil, sdkerrors.Wrap(err, "upgraded consensus state failed basic validation")
	}

	return newClientState, tmUpgradeConsState, nil
}

// constructUpgradeKey returns the key the upgrade module of the counterparty
// stores the upgraded value under: all keys of upgradePath joined by "/" with
// the last one suffixed by the height and the leaf name.
func constructUpgradeKey(upgradePath []string, lastHeight exported.Height, leaf string) string {
	// copy all elements from upgradePath except final element
	path := make([]string, len(upgradePath)-1, len(upgradePath))
	copy(path, upgradePath)

	lastKey := upgradePath[len(upgradePath)-1]
	path = append(path, fmt.Sprintf("%s/%d/%s", lastKey, lastHeight.GetRevisionHeight(), leaf))

	return strings.Join(path, "/")
}

func constructUpgradeClientKey(upgradePath []string, lastHeight exported.Height) string {
	return constructUpgradeKey(upgradePath, lastHeight, upgradetypes.KeyUpgradedClient)
}

func constructUpgradeConsStateKey(upgradePath []string, lastHeight exported.Height) string {
	return constructUpgradeKey(upgradePath, lastHeight, upgradetypes.KeyUpgradedConsState)
}

// UpgradedClientKey is the key an upgraded client state must be committed
// under for a client with the given upgrade path at lastHeight.
func UpgradedClientKey(upgradePath []string, lastHeight exported.Height) []byte {
	return []byte(constructUpgradeClientKey(upgradePath, lastHeight))
}

// UpgradedConsStateKey is the key an upgraded consensus state must be
// committed under for a client with the given upgrade path at lastHeight.
func UpgradedConsStateKey(upgradePath []string, lastHeight exported.Height) []byte {
	return []byte(constructUpgradeConsStateKey(upgradePath, lastHeight))
}

// calculateNewTrustingPeriod converts the provided durations to decimal representation to avoid floating-point precision issues
// and calculates the new trusting period, decreasing it by the ratio between the original and new unbonding period.
func calculateNewTrustingPeriod(trustingPeriod, originalUnbonding, newUnbonding time.Duration) time.Duration {
	origUnbondingDec := sdk.NewDec(originalUnbonding.Nanoseconds())
	newUnbondingDec := sdk.NewDec(newUnbonding.Nanoseconds())
	trustingPeriodDec := sdk.NewDec(trustingPeriod.Nanoseconds())

	// compute new trusting period: trustingPeriod * newUnbonding / originalUnbonding
	newTrustingPeriodDec := trustingPeriodDec.Mul(newUnbondingDec).Quo(origUnbondingDec)
	return time.Duration(newTrustingPeriodDec.TruncateInt64())
}
