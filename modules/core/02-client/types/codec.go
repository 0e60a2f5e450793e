package types

import (
	"bytes"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// RegisterInterfaces registers the client interfaces to protobuf Any.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterInterface(
		"ibc.core.client.v1.ClientState",
		(*exported.ClientState)(nil),
	)
	registry.RegisterInterface(
		"ibc.core.client.v1.ConsensusState",
		(*exported.ConsensusState)(nil),
	)
	registry.RegisterInterface(
		"ibc.core.client.v1.Height",
		(*exported.Height)(nil),
		&Height{},
	)
}

// MarshalClientState protobuf serializes a ClientState interface wrapped in an Any.
func MarshalClientState(cdc codec.BinaryCodec, clientState exported.ClientState) ([]byte, error) {
	if clientState == nil {
		return nil, sdkerrors.Wrap(ErrInvalidClient, "client state cannot be nil")
	}
	return cdc.MarshalInterface(clientState)
}

// MustMarshalClientState attempts to encode a ClientState object and returns the
// raw encoded bytes. It panics on error.
func MustMarshalClientState(cdc codec.BinaryCodec, clientState exported.ClientState) []byte {
	bz, err := MarshalClientState(cdc, clientState)
	if err != nil {
		panic(err)
	}

	return bz
}

// UnmarshalClientState returns a ClientState interface from raw encoded clientState
// bytes of a Proto-based ClientState type. An error is returned upon decoding
// failure or if the Any type url is not a registered client state.
func UnmarshalClientState(cdc codec.BinaryCodec, bz []byte) (exported.ClientState, error) {
	var clientState exported.ClientState
	if err := cdc.UnmarshalInterface(bz, &clientState); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidClient, err.Error())
	}

	return clientState, nil
}

// MustUnmarshalClientState attempts to decode and return an ClientState object from
// raw encoded bytes. It panics on error.
func MustUnmarshalClientState(cdc codec.BinaryCodec, bz []byte) exported.ClientState {
	clientState, err := UnmarshalClientState(cdc, bz)
	if err != nil {
		panic(err)
	}

	return clientState
}

// MarshalConsensusState protobuf serializes a ConsensusState interface wrapped in an Any.
func MarshalConsensusState(cdc codec.BinaryCodec, cs exported.ConsensusState) ([]byte, error) {
	if cs == nil {
		return nil, sdkerrors.Wrap(ErrInvalidConsensus, "consensus state cannot be nil")
	}
	return cdc.MarshalInterface(cs)
}

// MustMarshalConsensusState attempts to encode a ConsensusState object and returns the
// raw encoded bytes. It panics on error.
func MustMarshalConsensusState(cdc codec.BinaryCodec, consensusState exported.ConsensusState) []byte {
	bz, err := MarshalConsensusState(cdc, consensusState)
	if err != nil {
		panic(err)
	}

	return bz
}

// UnmarshalConsensusState returns a ConsensusState interface from raw encoded consensus state
// bytes of a Proto-based ConsensusState type.
func UnmarshalConsensusState(cdc codec.BinaryCodec, bz []byte) (exported.ConsensusState, error) {
	var consensusState exported.ConsensusState
	if err := cdc.UnmarshalInterface(bz, &consensusState); err != nil {
		return nil, sdkerrors.Wrap(ErrInvalidConsensus, err.Error())
	}

	return consensusState, nil
}

// MustUnmarshalConsensusState attempts to decode and return an ConsensusState object from
// raw encoded bytes. It panics on error.
func MustUnmarshalConsensusState(cdc codec.BinaryCodec, bz []byte) exported.ConsensusState {
	consensusState, err := UnmarshalConsensusState(cdc, bz)
	if err != nil {
		panic(err)
	}

	return consensusState
}

// ClientStatesEqual returns true if both client states have the same type and
// encode to the same bytes. States that cannot be encoded are never equal.
func ClientStatesEqual(cdc codec.BinaryCodec, a, b exported.ClientState) bool {
	if a == nil || b == nil {
		return false
	}
	bzA, err := MarshalClientState(cdc, a)
	if err != nil {
		return false
	}
	bzB, err := MarshalClientState(cdc, b)
	if err != nil {
		return false
	}
	return bytes.Equal(bzA, bzB)
}

// ConsensusStatesEqual returns true if both consensus states have the same type
// and encode to the same bytes. States that cannot be encoded are never equal.
func ConsensusStatesEqual(cdc codec.BinaryCodec, a, b exported.ConsensusState) bool {
	if a == nil || b == nil {
		return false
	}
	bzA, err := MarshalConsensusState(cdc, a)
	if err != nil {
		return false
	}
	bzB, err := MarshalConsensusState(cdc, b)
	if err != nil {
		return false
	}
	return bytes.Equal(bzA, bzB)
}
