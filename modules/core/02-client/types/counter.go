package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// CounterStatus tells whether a client counter was read from storage.
type CounterStatus int

const (
	// CounterAvailable means the counter was present and decoded.
	CounterAvailable CounterStatus = iota
	// CounterUnavailable means the counter was missing or could not be
	// decoded and is treated as zero.
	CounterUnavailable
)

func (s CounterStatus) String() string {
	if s == CounterAvailable {
		return "Available"
	}
	return "Unavailable"
}

// ClientCounter is the number of clients created so far together with how it
// was obtained.
type ClientCounter struct {
	Value  uint64
	Status CounterStatus
}

// NewClientCounter returns an available counter.
func NewClientCounter(value uint64) ClientCounter {
	return ClientCounter{Value: value, Status: CounterAvailable}
}

// UnavailableClientCounter returns the zero counter used when storage has no
// usable counter.
func UnavailableClientCounter() ClientCounter {
	return ClientCounter{Value: 0, Status: CounterUnavailable}
}

// IsAvailable returns true if the counter was read from storage.
func (c ClientCounter) IsAvailable() bool {
	return c.Status == CounterAvailable
}

// EncodeClientCounter encodes a counter as 8 big endian bytes.
func EncodeClientCounter(counter uint64) []byte {
	return sdk.Uint64ToBigEndian(counter)
}

// DecodeClientCounter decodes a counter stored by EncodeClientCounter.
func DecodeClientCounter(bz []byte) (uint64, error) {
	if len(bz) != 8 {
		return 0, sdkerrors.Wrapf(ErrInvalidCounter, "expected 8 bytes, got %d", len(bz))
	}
	return sdk.BigEndianToUint64(bz), nil
}
