package solomachine

import (
	"fmt"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Interface implementation checks.
var _, _, _, _ codectypes.UnpackInterfacesMessage = (*ClientState)(nil), (*ConsensusState)(nil), (*Header)(nil), (*HeaderData)(nil)

// ClientState defines a solo machine client that tracks the current consensus
// state and if the client is frozen.
type ClientState struct {
	// latest sequence of the client state
	Sequence uint64
	// frozen sequence of the solo machine
	IsFrozen       bool
	ConsensusState *ConsensusState
}

// ConsensusState defines a solo machine consensus state. The sequence of a consensus state
// is contained in the "height" key used in storing the consensus state.
type ConsensusState struct {
	// public key of the solo machine
	PublicKey *codectypes.Any
	// diversifier allows the same public key to be re-used across different solo
	// machine clients (potentially on different chains) without being considered
	// misbehaviour.
	Diversifier string
	Timestamp   uint64
}

// Header defines a solo machine consensus header
type Header struct {
	// sequence to update solo machine public key at
	Sequence       uint64
	Timestamp      uint64
	Signature      []byte
	NewPublicKey   *codectypes.Any
	NewDiversifier string
}

// HeaderData returns the SignBytes data for update verification.
type HeaderData struct {
	// header public key
	NewPubKey *codectypes.Any
	// header diversifier
	NewDiversifier string
}

// SignBytes defines the signed bytes used for signature verification.
type SignBytes struct {
	// the sequence number
	Sequence uint64
	// the proof timestamp
	Timestamp uint64
	// the public key diversifier
	Diversifier string
	// the standardised path bytes
	Path []byte
	// the marshaled data bytes
	Data []byte
}

// UnpackInterfaces implements the UnpackInterfaceMessages.UnpackInterfaces method
func (cs ClientState) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	if cs.ConsensusState == nil {
		return nil
	}
	return cs.ConsensusState.UnpackInterfaces(unpacker)
}

// UnpackInterfaces implements the UnpackInterfaceMessages.UnpackInterfaces method
func (cs ConsensusState) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	return unpacker.UnpackAny(cs.PublicKey, new(cryptotypes.PubKey))
}

// UnpackInterfaces implements the UnpackInterfaceMessages.UnpackInterfaces method
func (h Header) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	return unpacker.UnpackAny(h.NewPublicKey, new(cryptotypes.PubKey))
}

// UnpackInterfaces implements the UnpackInterfaceMessages.UnpackInterfaces method
func (hd HeaderData) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	return unpacker.UnpackAny(hd.NewPubKey, new(cryptotypes.PubKey))
}

// unpackPubKey returns the public key cached in a packed Any.
func unpackPubKey(protoAny *codectypes.Any) (cryptotypes.PubKey, error) {
	if protoAny == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidPubKey, "public key cannot be nil")
	}

	publicKey, ok := protoAny.GetCachedValue().(cryptotypes.PubKey)
	if !ok {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidPubKey, "%s is not cryptotypes.PubKey", protoAny.TypeUrl)
	}

	return publicKey, nil
}

func (cs *ClientState) Reset()         { *cs = ClientState{} }
func (cs *ClientState) String() string { return fmt.Sprintf("%+v", *cs) }
func (*ClientState) ProtoMessage()     {}

func (cs *ConsensusState) Reset()         { *cs = ConsensusState{} }
func (cs *ConsensusState) String() string { return fmt.Sprintf("%+v", *cs) }
func (*ConsensusState) ProtoMessage()     {}

func (h *Header) Reset()         { *h = Header{} }
func (h *Header) String() string { return fmt.Sprintf("%+v", *h) }
func (*Header) ProtoMessage()    {}

func (hd *HeaderData) Reset()         { *hd = HeaderData{} }
func (hd *HeaderData) String() string { return fmt.Sprintf("%+v", *hd) }
func (*HeaderData) ProtoMessage()     {}

func (sb *SignBytes) Reset()         { *sb = SignBytes{} }
func (sb *SignBytes) String() string { return fmt.Sprintf("%+v", *sb) }
func (*SignBytes) ProtoMessage()     {}
