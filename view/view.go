package view

import (
	"encoding/binary"
	"math"

	"github.com/typedbuf/typedbuf/buffer"
	"github.com/typedbuf/typedbuf/errors"
)

// ElementCount returns the number of elements of the tag's type that
// fit in the buffer's current byte size. Integer division truncates.
func ElementCount(b *buffer.Buffer, t Tag) (int, error) {
	size, err := ElementSize(t)
	if err != nil {
		return 0, err
	}
	return b.Size() / size, nil
}

// element bounds-checks index against the buffer viewed through t and
// returns the element's byte slice.
func element(b *buffer.Buffer, index int, t Tag) ([]byte, error) {
	if err := checkTag(errors.PhaseAccess, t); err != nil {
		return nil, err
	}
	if b.Released() {
		return nil, errors.InvalidOperation(errors.PhaseAccess, "buffer already released")
	}
	size := categorySizes[t.Category()]
	count := b.Size() / size
	if index < 0 || index >= count {
		return nil, errors.OutOfRange(errors.PhaseAccess, index, count)
	}
	off := index * size
	return b.Bytes()[off : off+size], nil
}

// Get reads the element at index as the numeric value denoted by t.
// Signed integer tags yield int64, unsigned ones uint64, float tags
// float64. Indexes outside [0, ElementCount) are rejected.
func Get(b *buffer.Buffer, index int, t Tag) (any, error) {
	raw, err := element(b, index, t)
	if err != nil {
		return nil, err
	}

	var u uint64
	switch len(raw) {
	case 1:
		u = uint64(raw[0])
	case 2:
		u = uint64(binary.NativeEndian.Uint16(raw))
	case 4:
		u = uint64(binary.NativeEndian.Uint32(raw))
	case 8:
		u = binary.NativeEndian.Uint64(raw)
	}

	switch t.Category() {
	case Float:
		return float64(math.Float32frombits(uint32(u))), nil
	case Double:
		return math.Float64frombits(u), nil
	}

	if t.IsSigned() {
		switch len(raw) {
		case 1:
			return int64(int8(u)), nil
		case 2:
			return int64(int16(u)), nil
		case 4:
			return int64(int32(u)), nil
		default:
			return int64(u), nil
		}
	}
	return u, nil
}

// Set writes value at index, first narrowing it to the tag's element
// representation. Integer narrowing truncates like a native conversion;
// float values written to integer tags are truncated toward zero. The
// bounds contract matches Get.
func Set(b *buffer.Buffer, index int, t Tag, value any) error {
	raw, err := element(b, index, t)
	if err != nil {
		return err
	}

	var u uint64
	if t.IsFloat() {
		f, ok := coerceFloat(value)
		if !ok {
			return errors.New(errors.PhaseAccess, errors.KindInvalidArgument).
				Tag(t.String()).
				Value(value).
				Detail("value is not numeric").
				Build()
		}
		if t.Category() == Float {
			u = uint64(math.Float32bits(float32(f)))
		} else {
			u = math.Float64bits(f)
		}
	} else {
		bits, ok := coerceBits(value)
		if !ok {
			return errors.New(errors.PhaseAccess, errors.KindInvalidArgument).
				Tag(t.String()).
				Value(value).
				Detail("value is not numeric").
				Build()
		}
		u = bits
	}

	switch len(raw) {
	case 1:
		raw[0] = byte(u)
	case 2:
		binary.NativeEndian.PutUint16(raw, uint16(u))
	case 4:
		binary.NativeEndian.PutUint32(raw, uint32(u))
	case 8:
		binary.NativeEndian.PutUint64(raw, u)
	}
	return nil
}
