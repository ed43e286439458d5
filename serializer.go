package enumcodec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Serializer reads, writes and measures values of the enum type E. Values are
// reinterpreted as their underlying integer with no range check, so unknown
// members survive a round trip (open enum semantics).
//
// A Serializer only exists for a successfully bound E.
type Serializer[E constraints.Integer] struct {
	b *Binding
}

// NewSerializer binds E in the default registry and returns its serializer.
func NewSerializer[E constraints.Integer]() (*Serializer[E], error) {
	return NewSerializerWith[E](defaultRegistry)
}

// NewSerializerWith binds E in r and returns its serializer.
func NewSerializerWith[E constraints.Integer](r *Registry) (*Serializer[E], error) {
	b, err := BindWith[E](r)
	if err != nil {
		return nil, err
	}
	return &Serializer[E]{b: b}, nil
}

// MustSerializer is like NewSerializer but panics if E cannot be bound.
func MustSerializer[E constraints.Integer]() *Serializer[E] {
	s, err := NewSerializer[E]()
	if err != nil {
		panic(err)
	}
	return s
}

// Binding returns the binding the serializer dispatches through.
func (s *Serializer[E]) Binding() *Binding { return s.b }

// Kind returns the underlying integer width of E.
func (s *Serializer[E]) Kind() Kind { return s.b.kind }

// DefaultWireType is the wire type Write uses.
func (s *Serializer[E]) DefaultWireType() WireType { return Varint }

func (s *Serializer[E]) unsupported(wt WireType) error {
	return fmt.Errorf("%w: %s (%s) as %s", ErrUnsupportedWireType, s.b.typ, s.b.kind, wt)
}

// Read decodes one value encoded with wt.
func (s *Serializer[E]) Read(src Source, wt WireType) (E, error) {
	p := s.b.prims
	var read func(Source) (uint64, error)
	switch wt {
	case Varint:
		read = p.readVarint
	case SignedVarint:
		read = p.readSignedVarint
	case Fixed32:
		read = p.readFixed32
	case Fixed64:
		read = p.readFixed64
	}
	if read == nil {
		return 0, s.unsupported(wt)
	}
	raw, err := read(src)
	if err != nil {
		return 0, err
	}
	return E(raw), nil
}

// Write encodes v as a varint.
func (s *Serializer[E]) Write(dst Sink, v E) error {
	return s.b.prims.writeVarint(dst, uint64(v))
}

// WriteWire encodes v with wt. It emits exactly Measure(wt, v) bytes.
func (s *Serializer[E]) WriteWire(dst Sink, wt WireType, v E) error {
	p := s.b.prims
	var write func(Sink, uint64) error
	switch wt {
	case Varint:
		write = p.writeVarint
	case SignedVarint:
		write = p.writeSignedVarint
	case Fixed32:
		write = p.writeFixed32
	case Fixed64:
		write = p.writeFixed64
	}
	if write == nil {
		return s.unsupported(wt)
	}
	return write(dst, uint64(v))
}

// Measure returns the number of bytes WriteWire(wt, v) emits without writing
// anything. It returns -1 when wt cannot carry E; callers must treat that as an
// unsupported combination, not as zero.
func (s *Serializer[E]) Measure(wt WireType, v E) int {
	switch wt {
	case Fixed32:
		return 4
	case Fixed64:
		return 8
	case Varint:
		return s.b.prims.measureVarint(uint64(v))
	case SignedVarint:
		return s.b.prims.measureSignedVarint(uint64(v))
	default:
		return -1
	}
}

// ReadOptional decodes a value and returns it as a present optional.
// Absence is expressed by field presence in the enclosing message, never here.
func (s *Serializer[E]) ReadOptional(src Source, wt WireType) (*E, error) {
	v, err := s.Read(src, wt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteOptional writes *v as a varint. A nil v fails with ErrNilOptional.
func (s *Serializer[E]) WriteOptional(dst Sink, v *E) error {
	if v == nil {
		return ErrNilOptional
	}
	return s.Write(dst, *v)
}

// MeasureOptional measures *v, or returns -1 for a nil v.
func (s *Serializer[E]) MeasureOptional(wt WireType, v *E) int {
	if v == nil {
		return -1
	}
	return s.Measure(wt, *v)
}
