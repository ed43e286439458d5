package enumcodec

import (
	"fmt"
	"reflect"
)

// Integer is the set of fixed-width integer types the codec primitives accept,
// including named types (enums) declared on top of them.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Kind identifies the underlying integer width of an enum.
type Kind uint8

const (
	Int8 Kind = iota
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64

	numKinds = int(UInt64) + 1
)

var kindNames = [numKinds]string{"int8", "uint8", "int16", "uint16", "int32", "uint32", "int64", "uint64"}

func (k Kind) String() string {
	if int(k) < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Size returns the number of bytes of the kind's in-memory representation.
func (k Kind) Size() int { return 1 << (k >> 1) }

// Bits returns the bit width.
func (k Kind) Bits() int { return k.Size() * 8 }

// Signed reports whether the kind is a two's-complement signed integer.
func (k Kind) Signed() bool { return k&1 == 0 }

// KindOf resolves the width kind of t. Platform-sized integers (int, uint,
// uintptr) and anything that is not an integer are rejected.
func KindOf(t reflect.Type) (Kind, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil type", ErrUnsupportedEnumWidth)
	}
	var k Kind
	switch t.Kind() {
	case reflect.Int8:
		k = Int8
	case reflect.Uint8:
		k = UInt8
	case reflect.Int16:
		k = Int16
	case reflect.Uint16:
		k = UInt16
	case reflect.Int32:
		k = Int32
	case reflect.Uint32:
		k = UInt32
	case reflect.Int64:
		k = Int64
	case reflect.Uint64:
		k = UInt64
	default:
		return 0, fmt.Errorf("%w: %s has kind %s (%d bytes)", ErrUnsupportedEnumWidth, t, t.Kind(), t.Size())
	}
	return k, nil
}
