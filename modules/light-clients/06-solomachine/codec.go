package solomachine

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibc-validity/ibc-vp/internal/wire"
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// RegisterInterfaces register the ibc channel submodule interfaces to protobuf
// Any.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*exported.ClientState)(nil),
		&ClientState{},
	)
	registry.RegisterImplementations(
		(*exported.ConsensusState)(nil),
		&ConsensusState{},
	)
}

func init() {
	proto.RegisterType((*ClientState)(nil), "ibc.lightclients.solomachine.v2.ClientState")
	proto.RegisterType((*ConsensusState)(nil), "ibc.lightclients.solomachine.v2.ConsensusState")
	proto.RegisterType((*Header)(nil), "ibc.lightclients.solomachine.v2.Header")
	proto.RegisterType((*HeaderData)(nil), "ibc.lightclients.solomachine.v2.HeaderData")
	proto.RegisterType((*SignBytes)(nil), "ibc.lightclients.solomachine.v2.SignBytes")
}

func appendAny(bz []byte, num protowire.Number, protoAny *codectypes.Any) ([]byte, error) {
	if protoAny == nil {
		return bz, nil
	}
	return wire.AppendMessage(bz, num, protoAny)
}

func unmarshalAny(bz []byte) (*codectypes.Any, error) {
	var protoAny codectypes.Any
	if err := protoAny.Unmarshal(bz); err != nil {
		return nil, err
	}
	return &protoAny, nil
}

func (cs *ClientState) Marshal() ([]byte, error) {
	var bz []byte
	bz = wire.AppendUvarint(bz, 1, cs.Sequence)
	bz = wire.AppendBool(bz, 2, cs.IsFrozen)
	if cs.ConsensusState != nil {
		return wire.AppendMessage(bz, 3, cs.ConsensusState)
	}
	return bz, nil
}

var clientStateSchema = wire.Schema{
	1: {Type: protowire.VarintType},
	2: {Type: protowire.VarintType},
	3: {Type: protowire.BytesType},
}

func (cs *ClientState) Unmarshal(bz []byte) error {
	var out ClientState
	err := wire.Decode(bz, clientStateSchema, func(f wire.Field) (err error) {
		switch f.Number {
		case 1:
			out.Sequence = f.Varint
		case 2:
			out.IsFrozen, err = f.Bool()
		case 3:
			out.ConsensusState = &ConsensusState{}
			err = out.ConsensusState.Unmarshal(f.Bytes)
		}
		return err
	})
	if err != nil {
		return sdkerrors.Wrap(clienttypes.ErrInvalidClient, err.Error())
	}
	*cs = out
	return nil
}

func (cs *ConsensusState) Marshal() ([]byte, error) {
	bz, err := appendAny(nil, 1, cs.PublicKey)
	if err != nil {
		return nil, err
	}
	bz = wire.AppendString(bz, 2, cs.Diversifier)
	return wire.AppendUvarint(bz, 3, cs.Timestamp), nil
}

var consensusStateSchema = wire.Schema{
	1: {Type: protowire.BytesType},
	2: {Type: protowire.BytesType},
	3: {Type: protowire.VarintType},
}

func (cs *ConsensusState) Unmarshal(bz []byte) error {
	var out ConsensusState
	err := wire.Decode(bz, consensusStateSchema, func(f wire.Field) (err error) {
		switch f.Number {
		case 1:
			out.PublicKey, err = unmarshalAny(f.Bytes)
		case 2:
			out.Diversifier = string(f.Bytes)
		case 3:
			out.Timestamp = f.Varint
		}
		return err
	})
	if err != nil {
		return sdkerrors.Wrap(clienttypes.ErrInvalidConsensus, err.Error())
	}
	*cs = out
	return nil
}

func (h *Header) Marshal() ([]byte, error) {
	var bz []byte
	bz = wire.AppendUvarint(bz, 1, h.Sequence)
	bz = wire.AppendUvarint(bz, 2, h.Timestamp)
	bz = wire.AppendBytes(bz, 3, h.Signature)
	bz, err := appendAny(bz, 4, h.NewPublicKey)
	if err != nil {
		return nil, err
	}
	return wire.AppendString(bz, 5, h.NewDiversifier), nil
}

var headerSchema = wire.Schema{
	1: {Type: protowire.VarintType},
	2: {Type: protowire.VarintType},
	3: {Type: protowire.BytesType},
	4: {Type: protowire.BytesType},
	5: {Type: protowire.BytesType},
}

func (h *Header) Unmarshal(bz []byte) error {
	var out Header
	err := wire.Decode(bz, headerSchema, func(f wire.Field) (err error) {
		switch f.Number {
		case 1:
			out.Sequence = f.Varint
		case 2:
			out.Timestamp = f.Varint
		case 3:
			out.Signature = wire.CloneBytes(f.Bytes)
		case 4:
			out.NewPublicKey, err = unmarshalAny(f.Bytes)
		case 5:
			out.NewDiversifier = string(f.Bytes)
		}
		return err
	})
	if err != nil {
		return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}
	*h = out
	return nil
}

func (hd *HeaderData) Marshal() ([]byte, error) {
	bz, err := appendAny(nil, 1, hd.NewPubKey)
	if err != nil {
		return nil, err
	}
	return wire.AppendString(bz, 2, hd.NewDiversifier), nil
}

func (sb *SignBytes) Marshal() ([]byte, error) {
	var bz []byte
	bz = wire.AppendUvarint(bz, 1, sb.Sequence)
	bz = wire.AppendUvarint(bz, 2, sb.Timestamp)
	bz = wire.AppendString(bz, 3, sb.Diversifier)
	bz = wire.AppendBytes(bz, 4, sb.Path)
	bz = wire.AppendBytes(bz, 5, sb.Data)
	return bz, nil
}
