package mock

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibc-validity/ibc-vp/internal/wire"
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
	"github.com/ibc-validity/ibc-vp/modules/core/exported"
)

var _ exported.ClientState = (*ClientState)(nil)

// ClientState of the mock light client. It trusts every header that moves the
// latest height forward.
type ClientState struct {
	LatestHeight clienttypes.Height
	Frozen       bool
}

// NewClientState creates a new mock ClientState instance.
func NewClientState(latestHeight clienttypes.Height) *ClientState {
	return &ClientState{LatestHeight: latestHeight}
}

// ClientType returns the mock client type.
func (*ClientState) ClientType() string {
	return ModuleName
}

// GetLatestHeight returns the latest height stored.
func (cs *ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// Validate checks that the latest height is set.
func (cs *ClientState) Validate() error {
	if cs.LatestHeight.RevisionHeight == 0 {
		return sdkerrors.Wrap(ErrInvalidState, "latest height revision height cannot be zero")
	}
	return nil
}

func (cs *ClientState) Marshal() ([]byte, error) {
	bz, err := wire.AppendMessage(nil, 1, cs.LatestHeight)
	if err != nil {
		return nil, err
	}
	return wire.AppendBool(bz, 2, cs.Frozen), nil
}

var clientStateSchema = wire.Schema{
	1: {Type: protowire.BytesType},
	2: {Type: protowire.VarintType},
}

func (cs *ClientState) Unmarshal(bz []byte) error {
	var out ClientState
	err := wire.Decode(bz, clientStateSchema, func(f wire.Field) (err error) {
		switch f.Number {
		case 1:
			err = out.LatestHeight.Unmarshal(f.Bytes)
		case 2:
			out.Frozen, err = f.Bool()
		}
		return err
	})
	if err != nil {
		return sdkerrors.Wrap(ErrInvalidState, err.Error())
	}
	*cs = out
	return nil
}

func (cs *ClientState) Reset()         { *cs = ClientState{} }
func (cs *ClientState) String() string { return fmt.Sprintf("%+v", *cs) }
func (*ClientState) ProtoMessage()     {}
