package mock

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibc-validity/ibc-vp/internal/wire"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState of the mock light client is only a timestamp.
type ConsensusState struct {
	Timestamp uint64
}

// NewConsensusState creates a new mock ConsensusState instance.
func NewConsensusState(timestamp uint64) *ConsensusState {
	return &ConsensusState{Timestamp: timestamp}
}

func (*ConsensusState) ClientType() string {
	return ModuleName
}

func (m *ConsensusState) GetTimestamp() uint64 {
	return m.Timestamp
}

func (m *ConsensusState) ValidateBasic() error {
	if m.Timestamp == 0 {
		return sdkerrors.Wrap(ErrInvalidState, "timestamp cannot be zero")
	}
	return nil
}

func (m *ConsensusState) Marshal() ([]byte, error) {
	return wire.AppendUvarint(nil, 1, m.Timestamp), nil
}

var consensusStateSchema = wire.Schema{
	1: {Type: protowire.VarintType},
}

func (m *ConsensusState) Unmarshal(bz []byte) error {
	var out ConsensusState
	err := wire.Decode(bz, consensusStateSchema, func(f wire.Field) error {
		out.Timestamp = f.Varint
		return nil
	})
	if err != nil {
		return sdkerrors.Wrap(ErrInvalidState, err.Error())
	}
	*m = out
	return nil
}

func (m *ConsensusState) Reset()         { *m = ConsensusState{} }
func (m *ConsensusState) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConsensusState) ProtoMessage()    {}
