package enumcodec

import (
	"io"
)

// Source is the read cursor the codec consumes. The codec assumes exclusive access
// to the cursor for the duration of one call.
type Source interface {
	// io.ByteReader provides single-byte reads for varint decoding.
	io.ByteReader // Method: ReadByte() (byte, error)

	// ReadBytes consumes exactly n bytes. A short read fails with
	// io.ErrUnexpectedEOF (or io.EOF if nothing was left).
	// The returned slice is only valid until the next call.
	ReadBytes(n int) ([]byte, error)

	// Offset reports the number of bytes consumed so far.
	Offset() int64
}

// Sink is the write cursor the codec emits into.
type Sink interface {
	// io.ByteWriter provides single-byte writes.
	io.ByteWriter // Method: WriteByte(c byte) error

	// WriteBytes writes all of p or returns an error.
	WriteBytes(p []byte) error
}

// Statically assert that the cursors in this package satisfy Source and Sink.
var (
	_ Source = (*BytesReader)(nil)
	_ Source = (*Reader)(nil)
	_ Sink   = (*BytesWriter)(nil)
	_ Sink   = (*Writer)(nil)
)
