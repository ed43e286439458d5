package enumcodec

import (
	"fmt"
	"io"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MaxVarintLen is the maximum number of bytes of a varint-encoded 64-bit value.
const MaxVarintLen = 10

// negativeVarintLen is the plain-varint cost of any negative value: it is sign
// extended to 64 bits before encoding, so it always takes the maximum length.
const negativeVarintLen = MaxVarintLen

// AppendVarint appends the LEB128 encoding of v to b.
func AppendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// WriteVarint widens v to its 64-bit two's-complement pattern and writes it as a varint.
func WriteVarint[W Integer](dst Sink, v W) error {
	var buf [MaxVarintLen]byte
	return dst.WriteBytes(AppendVarint(buf[:0], uint64(v)))
}

// ReadVarint decodes a varint and narrows it to W.
func ReadVarint[W Integer](src Source) (W, error) {
	start := src.Offset()
	v, err := readUvarint(src)
	if err != nil {
		return 0, atOffset(err, start)
	}
	return W(v), nil
}

// WriteSignedVarint writes the zig-zag encoding of v as a varint.
func WriteSignedVarint[W constraints.Signed](dst Sink, v W) error {
	var buf [MaxVarintLen]byte
	return dst.WriteBytes(AppendVarint(buf[:0], Zig(v)))
}

// ReadSignedVarint decodes a zig-zag varint and narrows it to W.
func ReadSignedVarint[W constraints.Signed](src Source) (W, error) {
	start := src.Offset()
	v, err := readUvarint(src)
	if err != nil {
		return 0, atOffset(err, start)
	}
	return Unzig[W](v), nil
}

func readUvarint(src Source) (uint64, error) {
	var v uint64
	for i := 0; i < MaxVarintLen; i++ {
		b, err := src.ReadByte()
		if err != nil {
			return 0, truncated(err)
		}
		// The 10th byte only has room for bit 63.
		if i == MaxVarintLen-1 && b > 1 {
			return 0, fmt.Errorf("%w: final byte 0x%02x overflows 64 bits", ErrMalformedVarint, b)
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			return v, nil
		}
	}
	// unreachable: the 10th byte either terminates or is rejected above
	return 0, ErrMalformedVarint
}

// truncated maps end-of-input from a cursor to ErrTruncatedInput.
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedInput
	}
	return err
}

// MeasureVarint returns the number of bytes WriteVarint emits for v.
// Negative values always cost MaxVarintLen bytes.
func MeasureVarint[W Integer](v W) int {
	if v < 0 {
		return negativeVarintLen
	}
	return sizeVarint(uint64(v))
}

// MeasureSignedVarint returns the number of bytes WriteSignedVarint emits for v,
// or -1 for unsigned widths, which have no zig-zag form.
func MeasureSignedVarint[W Integer](v W) int {
	if !isSigned[W]() {
		return -1
	}
	return sizeVarint(zig64(int64(v)))
}

func sizeVarint(v uint64) int {
	return (bits.Len64(v|1) + 6) / 7
}

// Zig maps signed values onto unsigned ones so that small magnitudes stay small:
// 0 → 0, -1 → 1, 1 → 2, -2 → 3. The result equals (v << 1) ^ (v >> (bits-1))
// computed at the width of W.
func Zig[W constraints.Signed](v W) uint64 {
	return zig64(int64(v))
}

// Unzig inverts Zig and narrows the result to W.
func Unzig[W constraints.Signed](z uint64) W {
	return W(int64(z>>1) ^ -int64(z&1))
}

func zig64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

func isSigned[W Integer]() bool {
	var zero W
	return ^zero < 0
}
