package enumcodec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// WireType represents protobuf wire format types
type WireType int32

const (
	Varint     WireType = 0 // int32, int64, uint32, uint64, bool, enum
	Fixed64    WireType = 1 // fixed64, sfixed64, double
	Bytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	StartGroup WireType = 3
	EndGroup   WireType = 4
	Fixed32    WireType = 5 // fixed32, sfixed32, float

	// SignedVarint is a varint on the wire whose payload is zig-zag encoded
	// (sint32, sint64). It never appears in a tag.
	SignedVarint WireType = 8
)

func (wt WireType) String() string {
	switch wt {
	case Varint:
		return "Varint"
	case Fixed64:
		return "Fixed64"
	case Bytes:
		return "Bytes"
	case StartGroup:
		return "StartGroup"
	case EndGroup:
		return "EndGroup"
	case Fixed32:
		return "Fixed32"
	case SignedVarint:
		return "SignedVarint"
	default:
		return fmt.Sprintf("WireType(%d)", int32(wt))
	}
}

// Proto returns the wire type as it appears in a protobuf tag.
func (wt WireType) Proto() protowire.Type {
	if wt == SignedVarint {
		return protowire.VarintType
	}
	return protowire.Type(wt)
}

// Scalar reports whether an integer enum can be encoded with wt.
func (wt WireType) Scalar() bool {
	switch wt {
	case Varint, SignedVarint, Fixed32, Fixed64:
		return true
	}
	return false
}
