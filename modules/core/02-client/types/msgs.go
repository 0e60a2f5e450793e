package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibc-validity/ibc-vp/internal/wire"
	host "github.com/ibc-validity/ibc-vp/modules/core/24-host"
)

var (
	_ proto.Message = (*UpdateClientData)(nil)
	_ proto.Message = (*UpgradeClientData)(nil)
)

// UpdateClientData is the transaction payload of a client update: an ordered
// sequence of encoded headers to apply to the client.
//
// Wire format: {1: client_id string, 2: headers repeated bytes}.
type UpdateClientData struct {
	ClientId string
	Headers  [][]byte
}

// UpgradeClientData is the transaction payload of a client upgrade: proofs
// that the counterparty committed to an upgraded client and consensus state.
//
// Wire format: {1: client_id string, 3: proof_upgrade_client bytes,
// 4: proof_upgrade_consensus_state bytes}.
type UpgradeClientData struct {
	ClientId                   string
	ProofUpgradeClient         []byte
	ProofUpgradeConsensusState []byte
}

// NewUpdateClientData creates a new UpdateClientData instance.
func NewUpdateClientData(clientID string, headers ...[]byte) *UpdateClientData {
	return &UpdateClientData{
		ClientId: clientID,
		Headers:  headers,
	}
}

// NewUpgradeClientData creates a new UpgradeClientData instance.
func NewUpgradeClientData(clientID string, proofUpgradeClient, proofUpgradeConsState []byte) *UpgradeClientData {
	return &UpgradeClientData{
		ClientId:                   clientID,
		ProofUpgradeClient:         proofUpgradeClient,
		ProofUpgradeConsensusState: proofUpgradeConsState,
	}
}

// ValidateBasic checks the payload fields without reading any state.
func (data UpdateClientData) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(data.ClientId); err != nil {
		return sdkerrors.Wrap(ErrInvalidClientID, err.Error())
	}
	if len(data.Headers) == 0 {
		return sdkerrors.Wrap(ErrInvalidTxData, "header sequence cannot be empty")
	}
	for i, header := range data.Headers {
		if len(header) == 0 {
			return sdkerrors.Wrapf(ErrInvalidTxData, "header %d cannot be empty", i)
		}
	}
	return nil
}

// ValidateBasic checks the payload fields without reading any state.
func (data UpgradeClientData) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(data.ClientId); err != nil {
		return sdkerrors.Wrap(ErrInvalidClientID, err.Error())
	}
	if len(data.ProofUpgradeClient) == 0 {
		return sdkerrors.Wrap(ErrInvalidTxData, "proof of upgrade client cannot be empty")
	}
	if len(data.ProofUpgradeConsensusState) == 0 {
		return sdkerrors.Wrap(ErrInvalidTxData, "proof of upgrade consensus state cannot be empty")
	}
	return nil
}

// Marshal encodes the payload. Required fields are always written, even when
// empty, so the encoding decodes back under the same schema.
func (data *UpdateClientData) Marshal() ([]byte, error) {
	var bz []byte
	bz = wire.AppendRequiredString(bz, 1, data.ClientId)
	bz = wire.AppendRepeatedBytes(bz, 2, data.Headers)
	return bz, nil
}

var updateClientDataSchema = wire.Schema{
	1: {Type: protowire.BytesType, Required: true},
	2: {Type: protowire.BytesType, Repeated: true, Required: true},
}

// Unmarshal strictly decodes an UpdateClientData payload.
func (data *UpdateClientData) Unmarshal(bz []byte) error {
	var out UpdateClientData
	err := wire.Decode(bz, updateClientDataSchema, func(f wire.Field) error {
		switch f.Number {
		case 1:
			out.ClientId = string(f.Bytes)
		case 2:
			out.Headers = append(out.Headers, wire.CloneBytes(f.Bytes))
		}
		return nil
	})
	if err != nil {
		return err
	}
	*data = out
	return nil
}

// Marshal encodes the payload. Required fields are always written, even when
// empty, so the encoding decodes back under the same schema.
func (data *UpgradeClientData) Marshal() ([]byte, error) {
	var bz []byte
	bz = wire.AppendRequiredString(bz, 1, data.ClientId)
	bz = wire.AppendRequiredBytes(bz, 3, data.ProofUpgradeClient)
	bz = wire.AppendRequiredBytes(bz, 4, data.ProofUpgradeConsensusState)
	return bz, nil
}

var upgradeClientDataSchema = wire.Schema{
	1: {Type: protowire.BytesType, Required: true},
	3: {Type: protowire.BytesType, Required: true},
	4: {Type: protowire.BytesType, Required: true},
}

// Unmarshal strictly decodes an UpgradeClientData payload.
func (data *UpgradeClientData) Unmarshal(bz []byte) error {
	var out UpgradeClientData
	err := wire.Decode(bz, upgradeClientDataSchema, func(f wire.Field) error {
		switch f.Number {
		case 1:
			out.ClientId = string(f.Bytes)
		case 3:
			out.ProofUpgradeClient = wire.CloneBytes(f.Bytes)
		case 4:
			out.ProofUpgradeConsensusState = wire.CloneBytes(f.Bytes)
		}
		return nil
	})
	if err != nil {
		return err
	}
	*data = out
	return nil
}

// UnmarshalUpdateClientData decodes tx data as an update payload.
func UnmarshalUpdateClientData(bz []byte) (*UpdateClientData, error) {
	var data UpdateClientData
	if err := data.Unmarshal(bz); err != nil {
		return nil, sdkerrors.Wrapf(ErrDecodingTxData, "update client data: %s", err)
	}
	return &data, nil
}

// UnmarshalUpgradeClientData decodes tx data as an upgrade payload.
func UnmarshalUpgradeClientData(bz []byte) (*UpgradeClientData, error) {
	var data UpgradeClientData
	if err := data.Unmarshal(bz); err != nil {
		return nil, sdkerrors.Wrapf(ErrDecodingTxData, "upgrade client data: %s", err)
	}
	return &data, nil
}

func (data *UpdateClientData) Reset()         { *data = UpdateClientData{} }
func (data *UpdateClientData) String() string { return fmt.Sprintf("%+v", *data) }
func (*UpdateClientData) ProtoMessage()       {}

func (data *UpgradeClientData) Reset()         { *data = UpgradeClientData{} }
func (data *UpgradeClientData) String() string { return fmt.Sprintf("%+v", *data) }
func (*UpgradeClientData) ProtoMessage()       {}

func init() {
	proto.RegisterType((*UpdateClientData)(nil), "ibc.core.client.vp.v1.UpdateClientData")
	proto.RegisterType((*UpgradeClientData)(nil), "ibc.core.client.vp.v1.UpgradeClientData")
}
