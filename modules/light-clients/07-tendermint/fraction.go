package tendermint

import (
	"fmt"

	tmmath "github.com/tendermint/tendermint/libs/math"
	"github.com/tendermint/tendermint/light"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ibc-validity/ibc-vp/internal/wire"
)

// DefaultTrustLevel is the tendermint light client default trust level
var DefaultTrustLevel = NewFractionFromTm(light.DefaultTrustLevel)

// Fraction defines the protobuf message type for tmmath.Fraction that only
// supports positive values.
type Fraction struct {
	Numerator   uint64
	Denominator uint64
}

// NewFractionFromTm returns a new Fraction instance from a tmmath.Fraction
func NewFractionFromTm(f tmmath.Fraction) Fraction {
	return Fraction{
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
	}
}

// ToTendermint converts Fraction to tmmath.Fraction
func (f Fraction) ToTendermint() tmmath.Fraction {
	return tmmath.Fraction{
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
	}
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

func (f Fraction) Marshal() ([]byte, error) {
	var bz []byte
	bz = wire.AppendUvarint(bz, 1, f.Numerator)
	bz = wire.AppendUvarint(bz, 2, f.Denominator)
	return bz, nil
}

var fractionSchema = wire.Schema{
	1: {Type: protowire.VarintType},
	2: {Type: protowire.VarintType},
}

func (f *Fraction) Unmarshal(bz []byte) error {
	var out Fraction
	err := wire.Decode(bz, fractionSchema, func(field wire.Field) error {
		switch field.Number {
		case 1:
			out.Numerator = field.Varint
		case 2:
			out.Denominator = field.Varint
		}
		return nil
	})
	if err != nil {
		return err
	}
	*f = out
	return nil
}
