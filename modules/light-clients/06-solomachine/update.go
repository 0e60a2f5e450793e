package solomachine

import (
	"bytes"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
)

// verifyHeader checks if the currently registered public key has signed over
// the new public key with the correct sequence.
func (cs ClientState) verifyHeader(header *Header) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}

	// assert update sequence is current sequence
	if header.Sequence != cs.Sequence {
		return sdkerrors.Wrapf(
			ErrInvalidSequence,
			"header sequence does not match the client state sequence (%d != %d)", header.Sequence, cs.Sequence,
		)
	}

	// assert update timestamp is not less than current consensus state timestamp
	if header.Timestamp < cs.ConsensusState.Timestamp {
		return sdkerrors.Wrapf(
			ErrInvalidHeader,
			"header timestamp is less than to the consensus state timestamp (%d < %d)", header.Timestamp, cs.ConsensusState.Timestamp,
		)
	}

	data, err := HeaderSignBytes(cs.Sequence, cs.ConsensusState.Diversifier, header)
	if err != nil {
		return err
	}

	publicKey, err := cs.ConsensusState.GetPubKey()
	if err != nil {
		return err
	}

	if err := VerifySignature(publicKey, data, header.Signature); err != nil {
		return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}

	return nil
}

// updateState returns a copy of the client state moved to the new public key
// and an incremented sequence, together with the new consensus state.
func (cs ClientState) updateState(header *Header) (*ClientState, *ConsensusState) {
	// create new solomachine ConsensusState
	consensusState := &ConsensusState{
		PublicKey:   header.NewPublicKey,
		Diversifier: header.NewDiversifier,
		Timestamp:   header.Timestamp,
	}

	cs.Sequence++
	cs.ConsensusState = consensusState

	return &cs, consensusState
}

// checkConsensusState asserts that the consensus state stored at the latest
// height is the one embedded in the client state.
func (cs ClientState) checkConsensusState(consensusState *ConsensusState) error {
	if consensusState == nil || cs.ConsensusState == nil {
		return sdkerrors.Wrap(clienttypes.ErrInvalidConsensus, "consensus state cannot be nil")
	}
	if consensusState.Timestamp != cs.ConsensusState.Timestamp ||
		consensusState.Diversifier != cs.ConsensusState.Diversifier ||
		!pubKeysEqual(consensusState.PublicKey, cs.ConsensusState.PublicKey) {
		return sdkerrors.Wrapf(
			clienttypes.ErrInvalidConsensus, "consensus state at sequence %d does not match the client state", cs.Sequence,
		)
	}
	return nil
}

func pubKeysEqual(a, b *codectypes.Any) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.TypeUrl == b.TypeUrl && bytes.Equal(a.Value, b.Value)
}
