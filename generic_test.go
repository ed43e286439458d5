package enumcodec

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		wt   WireType
		v    statusI16
		want []byte
	}{
		{"Varint", Varint, 150, []byte{0x96, 0x01}},
		{"VarintNegative", Varint, -1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
		{"SignedVarint", SignedVarint, -2, []byte{0x03}},
		{"Fixed32", Fixed32, -2, []byte{0xFE, 0xFF, 0xFF, 0xFF}},
		{"Fixed64", Fixed64, 1, []byte{0x01, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Marshal(tc.wt, tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, MustSerializer[statusI16]().Measure(tc.wt, tc.v))

			back, err := Unmarshal[statusI16](got, tc.wt)
			require.NoError(t, err)
			assert.Equal(t, tc.v, back)
		})
	}
}

func TestAppendEnumKeepsPrefix(t *testing.T) {
	prefix := make([]byte, 2, 3)
	prefix[0], prefix[1] = 0xCA, 0xFE

	got, err := AppendEnum(prefix, Varint, statusU32(300))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE, 0xAC, 0x02}, got)

	got, err = AppendEnum(got, Fixed32, statusU32(1))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE, 0xAC, 0x02, 0x01, 0x00, 0x00, 0x00}, got)
}

func TestAppendEnumGrowthIsAmortized(t *testing.T) {
	var (
		b    []byte
		caps = map[int]struct{}{}
		err  error
	)
	for i := 0; i < 256; i++ {
		b, err = AppendEnum(b, Varint, statusU8(i&0x7F))
		require.NoError(t, err)
		caps[cap(b)] = struct{}{}
	}
	assert.Len(t, b, 256)
	assert.Less(t, len(caps), 16, "buffer is reallocated on nearly every append")
}

func TestMarshalWithRegistry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRegistry(WithLogger(zap.New(core)))

	data, err := MarshalWith(r, SignedVarint, statusI64(-2))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03}, data)

	data, err = AppendEnumWith(r, data, Fixed32, statusU16(7))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x07, 0x00, 0x00, 0x00}, data)

	v, err := UnmarshalWith[statusI64](r, data[:1], SignedVarint)
	require.NoError(t, err)
	assert.Equal(t, statusI64(-2), v)

	_, err = MarshalWith(r, Varint, statusInt(1))
	assert.ErrorIs(t, err, ErrUnsupportedEnumWidth)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 2, logs.FilterMessage("bound enum").Len())
	assert.Equal(t, 1, logs.FilterMessage("rejected enum binding").Len())
}

func TestMarshalErrors(t *testing.T) {
	t.Run("UnsupportedWireType", func(t *testing.T) {
		_, err := Marshal(Bytes, statusI32(1))
		assert.ErrorIs(t, err, ErrUnsupportedWireType)

		_, err = Marshal(SignedVarint, statusU64(1))
		assert.ErrorIs(t, err, ErrUnsupportedWireType)
	})

	t.Run("UnsupportedWidth", func(t *testing.T) {
		_, err := Marshal(Varint, statusInt(1))
		assert.ErrorIs(t, err, ErrUnsupportedEnumWidth)

		_, err = Unmarshal[statusUint]([]byte{0x01}, Varint)
		assert.ErrorIs(t, err, ErrUnsupportedEnumWidth)
	})

	t.Run("TrailingData", func(t *testing.T) {
		_, err := Unmarshal[statusU8]([]byte{0x01, 0x00}, Varint)
		require.ErrorIs(t, err, ErrTrailingData)
		assert.Contains(t, err.Error(), "offset 1")
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := Unmarshal[statusI64]([]byte{0x01, 0x02}, Fixed64)
		assert.ErrorIs(t, err, ErrTruncatedInput)
	})
}

func TestMarshalProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	wireTypes := gen.OneConstOf(Varint, SignedVarint, Fixed32, Fixed64)
	properties.Property("int32 enums survive every wire type", prop.ForAll(
		func(v int32, wt WireType) bool {
			data, err := Marshal(wt, statusI32(v))
			if err != nil || len(data) != MustSerializer[statusI32]().Measure(wt, statusI32(v)) {
				return false
			}
			back, err := Unmarshal[statusI32](data, wt)
			return err == nil && back == statusI32(v)
		},
		gen.Int32(), wireTypes,
	))
	properties.Property("int64 enums survive every wire type but fixed32", prop.ForAll(
		func(v int64, wt WireType) bool {
			data, err := Marshal(wt, statusI64(v))
			if err != nil || len(data) != MustSerializer[statusI64]().Measure(wt, statusI64(v)) {
				return false
			}
			back, err := Unmarshal[statusI64](data, wt)
			return err == nil && back == statusI64(v)
		},
		gen.Int64(), gen.OneConstOf(Varint, SignedVarint, Fixed64),
	))

	properties.TestingRun(t)
}
