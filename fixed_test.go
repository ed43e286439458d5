package enumcodec

import (
	"bytes"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func fixedRoundTrip[W Integer](v W) bool {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil || WriteFixed(w, v) != nil || w.Flush() != nil {
		return false
	}
	if buf.Len() != MeasureFixed(v) {
		return false
	}
	got, err := ReadFixed[W](NewBytesReader(buf.Bytes()))
	return err == nil && got == v
}

func TestWriteFixedLittleEndian(t *testing.T) {
	tests := []struct {
		name  string
		write func(Sink) error
		want  []byte
	}{
		{"Int8", func(s Sink) error { return WriteFixed(s, int8(-2)) }, []byte{0xFE}},
		{"UInt8", func(s Sink) error { return WriteFixed(s, uint8(0xAA)) }, []byte{0xAA}},
		{"Int16", func(s Sink) error { return WriteFixed(s, int16(-2)) }, []byte{0xFE, 0xFF}},
		{"UInt16", func(s Sink) error { return WriteFixed(s, uint16(0xBBCC)) }, []byte{0xCC, 0xBB}},
		{"Int32", func(s Sink) error { return WriteFixed(s, int32(-1)) }, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"UInt32", func(s Sink) error { return WriteFixed(s, uint32(0xDDEEFF00)) }, []byte{0x00, 0xFF, 0xEE, 0xDD}},
		{"Int64", func(s Sink) error { return WriteFixed(s, int64(math.MinInt64)) }, []byte{0, 0, 0, 0, 0, 0, 0, 0x80}},
		{"UInt64", func(s Sink) error { return WriteFixed(s, uint64(0x0102030405060708)) }, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewBytesWriter(make([]byte, 8))
			require.NoError(t, tc.write(w))
			assert.Equal(t, tc.want, w.Bytes())
		})
	}

	t.Run("MatchesProtowire", func(t *testing.T) {
		w := NewBytesWriter(make([]byte, 12))
		require.NoError(t, WriteFixed(w, uint32(0xCAFEBABE)))
		require.NoError(t, WriteFixed(w, uint64(0x0123456789ABCDEF)))
		want := protowire.AppendFixed64(protowire.AppendFixed32(nil, 0xCAFEBABE), 0x0123456789ABCDEF)
		assert.Equal(t, want, w.Bytes())
	})
}

func TestFixedRoundTripExhaustive(t *testing.T) {
	for i := 0; i <= math.MaxUint16; i++ {
		require.True(t, fixedRoundTrip(uint16(i)))
		require.True(t, fixedRoundTrip(int16(i)))
		if i <= math.MaxUint8 {
			require.True(t, fixedRoundTrip(uint8(i)))
			require.True(t, fixedRoundTrip(int8(i)))
		}
	}
}

func TestFixedProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("int32 fixed round trip", prop.ForAll(fixedRoundTrip[int32], gen.Int32()))
	properties.Property("uint32 fixed round trip", prop.ForAll(fixedRoundTrip[uint32], gen.UInt32()))
	properties.Property("int64 fixed round trip", prop.ForAll(fixedRoundTrip[int64], gen.Int64()))
	properties.Property("uint64 fixed round trip", prop.ForAll(fixedRoundTrip[uint64], gen.UInt64()))

	properties.TestingRun(t)
}

func TestReadFixedTruncated(t *testing.T) {
	t.Run("BytesReader", func(t *testing.T) {
		r := NewBytesReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
		v, err := ReadFixed[uint32](r)
		require.NoError(t, err)
		assert.Equal(t, uint32(0x04030201), v)

		_, err = ReadFixed[uint32](r)
		require.ErrorIs(t, err, ErrTruncatedInput)
		var oe *OffsetError
		require.ErrorAs(t, err, &oe)
		assert.EqualValues(t, 4, oe.Offset)
	})

	t.Run("StreamReader", func(t *testing.T) {
		r, err := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
		require.NoError(t, err)
		_, err = ReadFixed[int64](r)
		assert.ErrorIs(t, err, ErrTruncatedInput)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := ReadFixed[int8](NewBytesReader(nil))
		assert.ErrorIs(t, err, ErrTruncatedInput)
	})
}
