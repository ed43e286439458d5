package enumcodec

import "io"

// BytesReader is a Source that reads from a byte slice without copying.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// Close does nothing.
func (r *BytesReader) Close() error {
	return nil
}

// Read implements the [io.Reader] interface.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// ReadBytes returns the next n bytes as a sub-slice of B.
// On a short read the position is left at the end of the slice.
func (r *BytesReader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if avail := r.Available(); avail < n {
		r.N = len(r.B)
		if avail == 0 && n > 0 {
			return nil, io.EOF
		}
		return nil, io.ErrUnexpectedEOF
	}
	b := r.B[r.N : r.N+n]
	r.N += n
	return b, nil
}

// WriteTo implements the [io.WriterTo] interface for efficiency.
func (r *BytesReader) WriteTo(w io.Writer) (int64, error) {
	if r.N >= len(r.B) {
		return 0, nil
	}

	b := r.B[r.N:]
	n, err := w.Write(b)
	if n > len(b) || n < 0 {
		return int64(n), ErrInvalidRead
	}
	r.N += n
	if err != nil {
		return int64(n), err
	}

	return int64(n), nil
}

// Reset allows the underlying byte slice to be reused.
func (r *BytesReader) Reset() { r.N = 0 }

// Offset returns the number of bytes read.
func (r *BytesReader) Offset() int64 { return int64(r.N) }

// Size returns the size of the underlying byte slice.
func (r *BytesReader) Size() int { return len(r.B) }

// Available returns the number of bytes available for reading.
func (r *BytesReader) Available() int {
	length := len(r.B) - r.N
	if length <= 0 {
		return 0
	}
	return length
}
