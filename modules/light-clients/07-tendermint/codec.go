package tendermint

import (
	"time"

	ics23 "github.com/confio/ics23/go"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibc-validity/ibc-vp/internal/wire"
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

// RegisterInterfaces registers the tendermint concrete client-related
// implementations and interfaces.
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
	proto.RegisterType((*ClientState)(nil), "ibc.lightclients.tendermint.v1.ClientState")
	proto.RegisterType((*ConsensusState)(nil), "ibc.lightclients.tendermint.v1.ConsensusState")
	proto.RegisterType((*Header)(nil), "ibc.lightclients.tendermint.v1.Header")
}

func appendDuration(bz []byte, num protowire.Number, d time.Duration) ([]byte, error) {
	return wire.AppendMessage(bz, num, gogotypes.DurationProto(d))
}

func unmarshalDuration(bz []byte) (time.Duration, error) {
	var d gogotypes.Duration
	if err := d.Unmarshal(bz); err != nil {
		return 0, err
	}
	return gogotypes.DurationFromProto(&d)
}

func (cs *ClientState) Marshal() ([]byte, error) {
	bz := wire.AppendString(nil, 1, cs.ChainId)
	bz, err := wire.AppendMessage(bz, 2, cs.TrustLevel)
	if err != nil {
		return nil, err
	}
	if bz, err = appendDuration(bz, 3, cs.TrustingPeriod); err != nil {
		return nil, err
	}
	if bz, err = appendDuration(bz, 4, cs.UnbondingPeriod); err != nil {
		return nil, err
	}
	if bz, err = appendDuration(bz, 5, cs.MaxClockDrift); err != nil {
		return nil, err
	}
	if bz, err = wire.AppendMessage(bz, 6, cs.FrozenHeight); err != nil {
		return nil, err
	}
	if bz, err = wire.AppendMessage(bz, 7, cs.LatestHeight); err != nil {
		return nil, err
	}
	for _, spec := range cs.ProofSpecs {
		if spec == nil {
			continue
		}
		if bz, err = wire.AppendMessage(bz, 8, spec); err != nil {
			return nil, err
		}
	}
	return wire.AppendRepeatedString(bz, 9, cs.UpgradePath), nil
}

var clientStateSchema = wire.Schema{
	1: {Type: protowire.BytesType},
	2: {Type: protowire.BytesType},
	3: {Type: protowire.BytesType},
	4: {Type: protowire.BytesType},
	5: {Type: protowire.BytesType},
	6: {Type: protowire.BytesType},
	7: {Type: protowire.BytesType, Required: true},
	8: {Type: protowire.BytesType, Repeated: true},
	9: {Type: protowire.BytesType, Repeated: true},
}

func (cs *ClientState) Unmarshal(bz []byte) error {
	var out ClientState
	err := wire.Decode(bz, clientStateSchema, func(f wire.Field) (err error) {
		switch f.Number {
		case 1:
			out.ChainId = string(f.Bytes)
		case 2:
			err = out.TrustLevel.Unmarshal(f.Bytes)
		case 3:
			out.TrustingPeriod, err = unmarshalDuration(f.Bytes)
		case 4:
			out.UnbondingPeriod, err = unmarshalDuration(f.Bytes)
		case 5:
			out.MaxClockDrift, err = unmarshalDuration(f.Bytes)
		case 6:
			err = out.FrozenHeight.Unmarshal(f.Bytes)
		case 7:
			err = out.LatestHeight.Unmarshal(f.Bytes)
		case 8:
			spec := &ics23.ProofSpec{}
			if err = spec.Unmarshal(f.Bytes); err == nil {
				out.ProofSpecs = append(out.ProofSpecs, spec)
			}
		case 9:
			out.UpgradePath = append(out.UpgradePath, string(f.Bytes))
		}
		return err
	})
	if err != nil {
		return sdkerrors.Wrap(clienttypes.ErrInvalidClient, err.Error())
	}
	*cs = out
	return nil
}

// appendMerkleRoot encodes the commitment root as a message with the hash as
// its only field.
func appendMerkleRoot(bz []byte, num protowire.Number, hash []byte) []byte {
	return wire.AppendRequiredBytes(bz, num, wire.AppendBytes(nil, 1, hash))
}

var merkleRootSchema = wire.Schema{
	1: {Type: protowire.BytesType},
}

func unmarshalMerkleRoot(bz []byte) ([]byte, error) {
	var hash []byte
	err := wire.Decode(bz, merkleRootSchema, func(f wire.Field) error {
		hash = wire.CloneBytes(f.Bytes)
		return nil
	})
	return hash, err
}

func (cs *ConsensusState) Marshal() ([]byte, error) {
	ts, err := gogotypes.TimestampProto(cs.Timestamp)
	if err != nil {
		return nil, err
	}
	bz, err := wire.AppendMessage(nil, 1, ts)
	if err != nil {
		return nil, err
	}
	bz = appendMerkleRoot(bz, 2, cs.Root)
	return wire.AppendBytes(bz, 3, cs.NextValidatorsHash), nil
}

var consensusStateSchema = wire.Schema{
	1: {Type: protowire.BytesType, Required: true},
	2: {Type: protowire.BytesType},
	3: {Type: protowire.BytesType},
}

func (cs *ConsensusState) Unmarshal(bz []byte) error {
	var out ConsensusState
	err := wire.Decode(bz, consensusStateSchema, func(f wire.Field) (err error) {
		switch f.Number {
		case 1:
			var ts gogotypes.Timestamp
			if err = ts.Unmarshal(f.Bytes); err != nil {
				return err
			}
			out.Timestamp, err = gogotypes.TimestampFromProto(&ts)
		case 2:
			out.Root, err = unmarshalMerkleRoot(f.Bytes)
		case 3:
			out.NextValidatorsHash = wire.CloneBytes(f.Bytes)
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
	var (
		bz  []byte
		err error
	)
	if h.SignedHeader != nil {
		if bz, err = wire.AppendMessage(bz, 1, h.SignedHeader); err != nil {
			return nil, err
		}
	}
	if h.ValidatorSet != nil {
		if bz, err = wire.AppendMessage(bz, 2, h.ValidatorSet); err != nil {
			return nil, err
		}
	}
	if bz, err = wire.AppendMessage(bz, 3, h.TrustedHeight); err != nil {
		return nil, err
	}
	if h.TrustedValidators != nil {
		if bz, err = wire.AppendMessage(bz, 4, h.TrustedValidators); err != nil {
			return nil, err
		}
	}
	return bz, nil
}

var headerSchema = wire.Schema{
	1: {Type: protowire.BytesType, Required: true},
	2: {Type: protowire.BytesType},
	3: {Type: protowire.BytesType},
	4: {Type: protowire.BytesType},
}

func (h *Header) Unmarshal(bz []byte) error {
	var out Header
	err := wire.Decode(bz, headerSchema, func(f wire.Field) error {
		switch f.Number {
		case 1:
			out.SignedHeader = &tmproto.SignedHeader{}
			return out.SignedHeader.Unmarshal(f.Bytes)
		case 2:
			out.ValidatorSet = &tmproto.ValidatorSet{}
			return out.ValidatorSet.Unmarshal(f.Bytes)
		case 3:
			return out.TrustedHeight.Unmarshal(f.Bytes)
		case 4:
			out.TrustedValidators = &tmproto.ValidatorSet{}
			return out.TrustedValidators.Unmarshal(f.Bytes)
		}
		return nil
	})
	if err != nil {
		return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}
	*h = out
	return nil
}
