// Package wire contains the protobuf field encoding shared by the hand-written
// messages of this module. Encoding is canonical (fields in ascending order,
// no unknown fields) so that two equal values always produce equal bytes, and
// decoding is strict: unknown field numbers, unexpected wire types, duplicated
// singular fields and missing required fields are all errors.
package wire

import (
	"sort"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Marshaler is implemented by every message that can be embedded in another.
type Marshaler interface {
	Marshal() ([]byte, error)
}

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrWireType        = errors.New("unexpected wire type")
	ErrDuplicateField  = errors.New("duplicate field")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidBool     = errors.New("invalid bool value")
	ErrUnsupportedType = errors.New("unsupported wire type")
)

// AppendString appends a string field. Empty strings are omitted.
func AppendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	return AppendRequiredString(b, num, s)
}

// AppendRequiredString appends a string field even when it is empty.
func AppendRequiredString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// AppendBytes appends a bytes field. Empty values are omitted.
func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	return AppendRequiredBytes(b, num, v)
}

// AppendRequiredBytes appends a bytes field even when it is empty.
func AppendRequiredBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendRepeatedBytes appends one field per element, empty elements included.
func AppendRepeatedBytes(b []byte, num protowire.Number, vs [][]byte) []byte {
	for _, v := range vs {
		b = AppendRequiredBytes(b, num, v)
	}
	return b
}

// AppendRepeatedString appends one field per element, empty elements included.
func AppendRepeatedString(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = AppendRequiredString(b, num, v)
	}
	return b
}

// AppendUvarint appends a varint field. Zero is omitted.
func AppendUvarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// AppendBool appends a bool field. False is omitted.
func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	return AppendUvarint(b, num, 1)
}

// AppendMessage appends an embedded message. A nil message is omitted.
func AppendMessage(b []byte, num protowire.Number, m Marshaler) ([]byte, error) {
	if m == nil {
		return b, nil
	}
	bz, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	return AppendRequiredBytes(b, num, bz), nil
}

// Field is a single decoded field. Varint is set for varint fields and Bytes
// for length-delimited ones.
type Field struct {
	Number protowire.Number
	Type   protowire.Type
	Varint uint64
	Bytes  []byte
}

// Bool interprets a varint field as a bool, rejecting values other than 0 and 1.
func (f Field) Bool() (bool, error) {
	switch f.Varint {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(ErrInvalidBool, "field %d: %d", f.Number, f.Varint)
	}
}

// FieldSpec describes an accepted field.
type FieldSpec struct {
	Type     protowire.Type
	Repeated bool
	Required bool
}

// Schema maps accepted field numbers to their spec.
type Schema map[protowire.Number]FieldSpec

// Decode walks buf and calls fn once per field, in wire order.
func Decode(buf []byte, schema Schema, fn func(Field) error) error {
	seen := make(map[protowire.Number]bool, len(schema))

	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "invalid tag")
		}
		buf = buf[n:]

		spec, ok := schema[num]
		if !ok {
			return errors.Wrapf(ErrUnknownField, "field %d", num)
		}
		if typ != spec.Type {
			return errors.Wrapf(ErrWireType, "field %d: expected %d, got %d", num, spec.Type, typ)
		}
		if seen[num] && !spec.Repeated {
			return errors.Wrapf(ErrDuplicateField, "field %d", num)
		}
		seen[num] = true

		field := Field{Number: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(buf)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			field.Varint = v
			buf = buf[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(buf)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			field.Bytes = v
			buf = buf[n:]
		default:
			return errors.Wrapf(ErrUnsupportedType, "field %d: %d", num, typ)
		}

		if err := fn(field); err != nil {
			return err
		}
	}

	nums := make([]int, 0, len(schema))
	for num := range schema {
		nums = append(nums, int(num))
	}
	sort.Ints(nums)
	for _, num := range nums {
		if schema[protowire.Number(num)].Required && !seen[protowire.Number(num)] {
			return errors.Wrapf(ErrMissingField, "field %d", num)
		}
	}

	return nil
}

// CloneBytes returns a copy of bz. Decoded byte fields alias the input buffer
// and are copied before being retained.
func CloneBytes(bz []byte) []byte {
	if bz == nil {
		return nil
	}
	out := make([]byte, len(bz))
	copy(out, bz)
	return out
}
