package enumcodec

import (
	"encoding/binary"
)

// Order is the byte order of fixed-width values on the wire.
var Order = binary.LittleEndian

// Ptr returns a pointer to a copy of v, for building optional enums.
func Ptr[T any](v T) *T { return &v }
