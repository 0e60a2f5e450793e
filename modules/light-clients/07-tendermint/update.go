package tendermint

import (
	"bytes"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/light"
	tmtypes "github.com/tendermint/tendermint/types"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
)

// checkHeaderAndUpdateState checks if the provided header is valid, and if valid it returns
// the client state and consensus state the client moves to.
//
// The header must be trusted from the consensus state at the latest client
// height: TrustedHeight must equal LatestHeight, and the TrustedValidators
// must hash to the NextValidatorsHash of that consensus state. Headers at or
// below the latest height are rejected, as are headers for another revision.
//
// Verification of the untrusted header itself is done by the tendermint light
// client: adjacent headers must be signed by the trusted next validator set,
// non adjacent headers need the trust level of the trusted validators to have
// signed them.
func (cs ClientState) checkHeaderAndUpdateState(
	currentTimestamp time.Time, consState *ConsensusState, header *Header,
) (*ClientState, *ConsensusState, error) {
	if cs.IsFrozen() {
		return nil, nil, sdkerrors.Wrapf(ErrClientFrozen, "client frozen at height %s", cs.FrozenHeight)
	}
	if header == nil {
		return nil, nil, sdkerrors.Wrap(ErrInvalidHeader, "header cannot be nil")
	}

	if !header.TrustedHeight.EQ(cs.LatestHeight) {
		return nil, nil, sdkerrors.Wrapf(
			ErrInvalidHeaderHeight, "header trusted height %s must equal the client latest height %s",
			header.TrustedHeight, cs.LatestHeight,
		)
	}

	if cs.IsExpired(consState.Timestamp, currentTimestamp) {
		return nil, nil, sdkerrors.Wrapf(
			ErrTrustingPeriodExpired, "trusted consensus state at %s expired (trusting period %s, current time %s)",
			consState.Timestamp, cs.TrustingPeriod, currentTimestamp,
		)
	}

	if err := checkTrustedHeader(header, consState); err != nil {
		return nil, nil, err
	}

	if err := checkValidity(&cs, consState, header, currentTimestamp); err != nil {
		return nil, nil, err
	}

	newClientState, consensusState := update(&cs, header)
	return newClientState, consensusState, nil
}

// checkTrustedHeader checks that consensus state matches trusted fields of Header
func checkTrustedHeader(header *Header, consState *ConsensusState) error {
	if header.TrustedValidators == nil {
		return sdkerrors.Wrap(ErrInvalidValidatorSet, "trusted validators cannot be nil")
	}

	tmTrustedValidators, err := tmtypes.ValidatorSetFromProto(header.TrustedValidators)
	if err != nil {
		return sdkerrors.Wrap(err, "trusted validator set in not tendermint validator set type")
	}

	// assert that trustedVals is NextValidators of last trusted header
	// to do this, we check that trustedVals.Hash() == consState.NextValidatorsHash
	tvalHash := tmTrustedValidators.Hash()
	if !bytes.Equal(consState.NextValidatorsHash, tvalHash) {
		return sdkerrors.Wrapf(
			ErrInvalidValidatorSet,
			"trusted validators %s, does not hash to latest trusted validators. Expected: %X, got: %X",
			header.TrustedValidators, consState.NextValidatorsHash, tvalHash,
		)
	}
	return nil
}

// checkValidity checks if the Tendermint header is valid.
// CONTRACT: consState.Height == header.TrustedHeight
func checkValidity(
	clientState *ClientState, consState *ConsensusState,
	header *Header, currentTimestamp time.Time,
) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}

	if header.Header.ChainID != clientState.ChainId {
		return sdkerrors.Wrapf(
			ErrInvalidChainID, "header chain id %s does not match client chain id %s",
			header.Header.ChainID, clientState.ChainId,
		)
	}

	// UpdateClient only accepts updates with a header at the same revision
	// as the trusted consensus state
	if header.GetHeight().GetRevisionNumber() != header.TrustedHeight.RevisionNumber {
		return sdkerrors.Wrapf(
			ErrInvalidHeaderHeight,
			"header height revision %d does not match trusted header revision %d",
			header.GetHeight().GetRevisionNumber(), header.TrustedHeight.RevisionNumber,
		)
	}

	tmTrustedValidators, err := tmtypes.ValidatorSetFromProto(header.TrustedValidators)
	if err != nil {
		return sdkerrors.Wrap(err, "trusted validator set in not tendermint validator set type")
	}

	tmSignedHeader, err := tmtypes.SignedHeaderFromProto(header.SignedHeader)
	if err != nil {
		return sdkerrors.Wrap(err, "signed header in not tendermint signed header type")
	}

	tmValidatorSet, err := tmtypes.ValidatorSetFromProto(header.ValidatorSet)
	if err != nil {
		return sdkerrors.Wrap(err, "validator set in not tendermint validator set type")
	}

	// assert header height is newer than consensus state
	if header.GetHeight().LTE(header.TrustedHeight) {
		return sdkerrors.Wrapf(
			ErrInvalidHeaderHeight,
			"header height ≤ consensus state height (%s ≤ %s)", header.GetHeight(), header.TrustedHeight,
		)
	}

	// Construct a trusted header using the fields in consensus state
	// Only Height, Time, and NextValidatorsHash are necessary for verification
	trustedHeader := tmtypes.Header{
		ChainID:            clientState.GetChainID(),
		Height:             int64(header.TrustedHeight.RevisionHeight),
		Time:               consState.Timestamp,
		NextValidatorsHash: consState.NextValidatorsHash,
	}
	signedHeader := tmtypes.SignedHeader{
		Header: &trustedHeader,
	}

	// Verify next header with the passed-in trustedVals
	// - asserts trusting period not passed
	// - assert header timestamp is not past the trusting period
	// - assert header timestamp is past latest stored consensus state timestamp
	// - assert that a TrustLevel proportion of TrustedValidators signed new Commit
	err = light.Verify(
		&signedHeader,
		tmTrustedValidators, tmSignedHeader, tmValidatorSet,
		clientState.TrustingPeriod, currentTimestamp, clientState.MaxClockDrift, clientState.TrustLevel.ToTendermint(),
	)
	if err != nil {
		return sdkerrors.Wrap(err, "failed to verify header")
	}
	return nil
}

// update moves the client to the header height and returns the consensus state
// the header commits to.
func update(clientState *ClientState, header *Header) (*ClientState, *ConsensusState) {
	height := header.GetHeight().(clienttypes.Height)
	if height.GT(clientState.LatestHeight) {
		clientState.LatestHeight = height
	}
	consensusState := &ConsensusState{
		Timestamp:          header.GetTime(),
		Root:               header.Header.GetAppHash(),
		NextValidatorsHash: header.Header.NextValidatorsHash,
	}

	return clientState, consensusState
}
