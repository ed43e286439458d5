package enumcodec

import (
	"unsafe"
)

// sizeOf returns the in-memory size of W in bytes.
func sizeOf[W Integer]() int {
	var zero W
	return int(unsafe.Sizeof(zero))
}

// ReadFixed consumes exactly sizeof(W) bytes in little-endian order.
func ReadFixed[W Integer](src Source) (W, error) {
	start := src.Offset()
	n := sizeOf[W]()
	b, err := src.ReadBytes(n)
	if err != nil {
		return 0, atOffset(truncated(err), start)
	}
	switch n {
	case 1:
		return W(b[0]), nil
	case 2:
		return W(Order.Uint16(b)), nil
	case 4:
		return W(Order.Uint32(b)), nil
	default:
		return W(Order.Uint64(b)), nil
	}
}

// WriteFixed emits exactly sizeof(W) bytes in little-endian order.
func WriteFixed[W Integer](dst Sink, v W) error {
	var buf [8]byte
	Order.PutUint64(buf[:], uint64(v))
	return dst.WriteBytes(buf[:sizeOf[W]()])
}

// MeasureFixed returns sizeof(W).
func MeasureFixed[W Integer](W) int {
	return sizeOf[W]()
}
