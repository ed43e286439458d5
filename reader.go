package enumcodec

import (
	"bufio"
	"bytes"
	"io"
)

type reader interface {
	io.Reader
	io.WriterTo
	io.Closer
}

type ReaderPro interface {
	reader
	io.ByteReader
	Size() int
}

// Reader is a Source over an io.Reader. It wraps bufio.Reader unless the
// underlying reader is already in memory, and tracks the first error.
// Subsequent reads become no-ops.
type Reader struct {
	r       ReaderPro
	count   int64 // total bytes read
	err     error // first error encountered.
	scratch [8]byte
}

var _ ReaderPro = (*Reader)(nil)

// NewReaderSize creates a new Reader with a specified buffer size.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch reader := r.(type) {
	// Nested readers share the underlying source so that neither one buffers
	// bytes the other still expects. The offset restarts at zero.
	case *Reader:
		return &Reader{r: reader.r}, nil

	// prevent unpredictable double-buffering.
	case *bufio.Reader:
		if reader.Size() >= size {
			return &Reader{r: &bufioReaderAdapter{Reader: reader}}, nil
		}
		return nil, ErrAlreadyBuffered

	// underlying is a buf so we don't need buffering
	case *BytesReader:
		return &Reader{r: reader}, nil
	case *bytes.Reader:
		return &Reader{r: &bytesReaderAdapter{reader}}, nil
	case *bytes.Buffer:
		return &Reader{r: &bytesBufferReaderAdapter{Buffer: reader}}, nil
	}

	if size < 16 {
		return nil, ErrSizeTooSmall
	}

	// default use bufio
	return &Reader{r: &bufioReaderAdapter{Reader: bufio.NewReaderSize(r, size)}}, nil
}

// NewReader creates a new Reader with a default buffer size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, 4096)
}

// Close closes the underlying reader if it implements io.Closer.
func (r *Reader) Close() error {
	return r.r.Close()
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

// WriteTo implements io.WriterTo for efficient copying.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.WriteTo(w)
	r.count += n
	r.setError(err)
	return n, r.err
}

func (r *Reader) Size() int     { return r.r.Size() }
func (r *Reader) Offset() int64 { return r.count }
func (r *Reader) Err() error    { return r.err }
func (r *Reader) IsEOF() bool   { return r.err == io.EOF }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.r.ReadByte()
	if err == nil {
		r.count++
	} else {
		r.err = err
	}
	return b, err
}

// ReadBytes reads exactly n bytes. Requests of up to 8 bytes are served from
// an internal scratch buffer, so the result is only valid until the next call.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if n < 0 {
		r.setError(ErrNegativeCount)
		return nil, r.err
	}
	var buf []byte
	if n <= len(r.scratch) {
		buf = r.scratch[:n]
	} else {
		buf = make([]byte, n)
	}
	read, err := io.ReadFull(r.r, buf)
	r.count += int64(read)
	if err != nil {
		r.setError(err)
		return nil, r.err
	}
	return buf, nil
}
