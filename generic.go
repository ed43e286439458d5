package enumcodec

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/exp/constraints"
)

// AppendEnum appends the encoding of v with wt to b. The result is exactly
// Measure(wt, v) bytes longer; a write that disagrees fails with ErrMeasureMismatch.
func AppendEnum[E constraints.Integer](b []byte, wt WireType, v E) ([]byte, error) {
	return AppendEnumWith(defaultRegistry, b, wt, v)
}

// AppendEnumWith is AppendEnum binding E in r.
func AppendEnumWith[E constraints.Integer](r *Registry, b []byte, wt WireType, v E) ([]byte, error) {
	s, err := NewSerializerWith[E](r)
	if err != nil {
		return b, err
	}
	expectedSize := s.Measure(wt, v)
	if expectedSize < 0 {
		return b, s.unsupported(wt)
	}

	start := len(b)
	b = slices.Grow(b, expectedSize)
	w := NewBytesWriter(b[start : start+expectedSize : start+expectedSize])
	if err := s.WriteWire(w, wt, v); err != nil {
		if err == io.ErrShortWrite {
			return b[:start], fmt.Errorf("%w: %s as %s overflows %d bytes", ErrMeasureMismatch, s.b.typ, wt, expectedSize)
		}
		return b[:start], err
	}
	if w.Len() != expectedSize {
		return b[:start], fmt.Errorf("%w: expected %d bytes, but wrote %d", ErrMeasureMismatch, expectedSize, w.Len())
	}
	return b[:start+expectedSize], nil
}

// Marshal returns the encoding of v with wt.
func Marshal[E constraints.Integer](wt WireType, v E) ([]byte, error) {
	return AppendEnumWith(defaultRegistry, nil, wt, v)
}

// MarshalWith is Marshal binding E in r.
func MarshalWith[E constraints.Integer](r *Registry, wt WireType, v E) ([]byte, error) {
	return AppendEnumWith(r, nil, wt, v)
}

// Unmarshal decodes exactly one value encoded with wt from data.
// Bytes left over after the value are rejected with ErrTrailingData.
func Unmarshal[E constraints.Integer](data []byte, wt WireType) (E, error) {
	return UnmarshalWith[E](defaultRegistry, data, wt)
}

// UnmarshalWith is Unmarshal binding E in r.
func UnmarshalWith[E constraints.Integer](r *Registry, data []byte, wt WireType) (E, error) {
	s, err := NewSerializerWith[E](r)
	if err != nil {
		return 0, err
	}
	br := NewBytesReader(data)
	v, err := s.Read(br, wt)
	if err != nil {
		return 0, err
	}
	if n := br.Available(); n > 0 {
		return 0, fmt.Errorf("%w: %d bytes after %s value at offset %d", ErrTrailingData, n, wt, br.Offset())
	}
	return v, nil
}
