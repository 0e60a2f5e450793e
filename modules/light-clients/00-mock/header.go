package mock

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibc-validity/ibc-vp/internal/wire"
	clienttypes "github.com/ibc-validity/ibc-vp/modules/core/02-client/types"
)

// Header is the mock client message: the height and timestamp to advance to.
type Header struct {
	Height    clienttypes.Height
	Timestamp uint64
}

// NewHeader creates a new mock Header instance.
func NewHeader(height clienttypes.Height, timestamp uint64) *Header {
	return &Header{Height: height, Timestamp: timestamp}
}

func (*Header) ClientType() string {
	return ModuleName
}

func (h *Header) ValidateBasic() error {
	if h.Height.RevisionHeight == 0 {
		return sdkerrors.Wrap(ErrInvalidHeader, "header height cannot be zero")
	}
	if h.Timestamp == 0 {
		return sdkerrors.Wrap(ErrInvalidHeader, "header timestamp cannot be zero")
	}
	return nil
}

func (h *Header) Marshal() ([]byte, error) {
	bz, err := wire.AppendMessage(nil, 1, h.Height)
	if err != nil {
		return nil, err
	}
	return wire.AppendUvarint(bz, 2, h.Timestamp), nil
}

// MustMarshal encodes the header and panics on error.
func (h *Header) MustMarshal() []byte {
	bz, err := h.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

var headerSchema = wire.Schema{
	1: {Type: protowire.BytesType, Required: true},
	2: {Type: protowire.VarintType},
}

func (h *Header) Unmarshal(bz []byte) error {
	var out Header
	err := wire.Decode(bz, headerSchema, func(f wire.Field) error {
		switch f.Number {
		case 1:
			return out.Height.Unmarshal(f.Bytes)
		case 2:
			out.Timestamp = f.Varint
		}
		return nil
	})
	if err != nil {
		return sdkerrors.Wrap(ErrInvalidHeader, err.Error())
	}
	*h = out
	return nil
}

func (h *Header) Reset()         { *h = Header{} }
func (h *Header) String() string { return fmt.Sprintf("%+v", *h) }
func (*Header) ProtoMessage()    {}
