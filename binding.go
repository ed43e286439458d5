package enumcodec

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// primitives is the codec primitive set of one width. Every function works on
// the raw 64-bit pattern of a value (sign-extended for signed widths) and
// narrows or widens it to the width it was instantiated for.
type primitives struct {
	readFixed  func(Source) (uint64, error)
	writeFixed func(Sink, uint64) error

	readVarint  func(Source) (uint64, error)
	writeVarint func(Sink, uint64) error

	// nil for unsigned widths
	readSignedVarint  func(Source) (uint64, error)
	writeSignedVarint func(Sink, uint64) error

	readFixed32  func(Source) (uint64, error)
	writeFixed32 func(Sink, uint64) error
	readFixed64  func(Source) (uint64, error)
	writeFixed64 func(Sink, uint64) error

	measureVarint       func(uint64) int
	measureSignedVarint func(uint64) int
}

var primitiveSets = [numKinds]primitives{
	Int8:   newPrimitives[int8](),
	UInt8:  newPrimitives[uint8](),
	Int16:  newPrimitives[int16](),
	UInt16: newPrimitives[uint16](),
	Int32:  newPrimitives[int32](),
	UInt32: newPrimitives[uint32](),
	Int64:  newPrimitives[int64](),
	UInt64: newPrimitives[uint64](),
}

func newPrimitives[W Integer]() primitives {
	signed := isSigned[W]()
	p := primitives{
		readFixed: func(src Source) (uint64, error) {
			v, err := ReadFixed[W](src)
			return uint64(v), err
		},
		writeFixed: func(dst Sink, raw uint64) error { return WriteFixed(dst, W(raw)) },
		readVarint: func(src Source) (uint64, error) {
			v, err := ReadVarint[W](src)
			return uint64(v), err
		},
		writeVarint: func(dst Sink, raw uint64) error { return WriteVarint(dst, W(raw)) },
		readFixed32: func(src Source) (uint64, error) {
			u, err := ReadFixed[uint32](src)
			if signed {
				return uint64(W(int32(u))), err
			}
			return uint64(W(u)), err
		},
		writeFixed32: func(dst Sink, raw uint64) error { return WriteFixed(dst, uint32(W(raw))) },
		readFixed64: func(src Source) (uint64, error) {
			u, err := ReadFixed[uint64](src)
			return uint64(W(u)), err
		},
		writeFixed64:        func(dst Sink, raw uint64) error { return WriteFixed(dst, uint64(W(raw))) },
		measureVarint:       func(raw uint64) int { return MeasureVarint(W(raw)) },
		measureSignedVarint: func(raw uint64) int { return MeasureSignedVarint(W(raw)) },
	}
	if signed {
		p.readSignedVarint = func(src Source) (uint64, error) {
			v, err := ReadSignedVarint[int64](src)
			return uint64(W(v)), err
		}
		p.writeSignedVarint = func(dst Sink, raw uint64) error {
			return WriteSignedVarint(dst, int64(W(raw)))
		}
	}
	return p
}

// Binding pairs an enum type with its underlying integer width and the
// primitive set for that width. Bindings are immutable once created.
type Binding struct {
	typ   reflect.Type
	kind  Kind
	prims *primitives
}

// Type returns the bound enum type.
func (b *Binding) Type() reflect.Type { return b.typ }

// Kind returns the underlying integer width.
func (b *Binding) Kind() Kind { return b.kind }

// Registry caches one Binding per enum type. It is safe for concurrent use.
type Registry struct {
	bindings *xsync.Map[reflect.Type, *Binding]
	log      *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report binding creation and rejection.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		bindings: xsync.NewMap[reflect.Type, *Binding](),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by Bind and NewSerializer.
func DefaultRegistry() *Registry { return defaultRegistry }

// Bind validates the width of t and returns its Binding. The first successful
// call for a type caches the result; later calls return the same pointer
// without re-validating. A rejected type leaves no entry behind.
func (r *Registry) Bind(t reflect.Type) (*Binding, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnsupportedEnumWidth)
	}
	if b, ok := r.bindings.Load(t); ok {
		return b, nil
	}

	var bindErr error
	b, loaded := r.bindings.LoadOrCompute(t, func() (*Binding, bool) {
		kind, err := KindOf(t)
		if err != nil {
			bindErr = err
			return nil, true
		}
		return &Binding{typ: t, kind: kind, prims: &primitiveSets[kind]}, false
	})
	if bindErr != nil {
		r.log.Debug("rejected enum binding",
			zap.Stringer("type", t),
			zap.Error(bindErr),
		)
		return nil, bindErr
	}
	if !loaded {
		r.log.Debug("bound enum",
			zap.Stringer("type", t),
			zap.Stringer("kind", b.kind),
		)
	}
	return b, nil
}

// Len returns the number of cached bindings.
func (r *Registry) Len() int { return r.bindings.Size() }

// Reset drops every cached binding. It exists for tests; bindings already handed
// out stay valid.
func (r *Registry) Reset() { r.bindings.Clear() }

// Bind returns the Binding of E from the default registry.
func Bind[E constraints.Integer]() (*Binding, error) {
	return BindWith[E](defaultRegistry)
}

// BindWith returns the Binding of E from r.
func BindWith[E constraints.Integer](r *Registry) (*Binding, error) {
	return r.Bind(reflect.TypeFor[E]())
}
