package enumcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("enumcodec: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a size conflict with bufio
	ErrSizeTooSmall = errors.New("enumcodec: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("enumcodec: reader or writer is already buffered")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("enumcodec: reader returned invalid count from Read")

	// ErrNegativeCount indicates a ReadBytes call with a negative byte count.
	ErrNegativeCount = errors.New("enumcodec: cannot read negative number of bytes")

	// ErrTruncatedInput indicates that the cursor ran out of bytes before a
	// fixed-width or varint value was complete.
	ErrTruncatedInput = errors.New("enumcodec: truncated input")

	// ErrMalformedVarint indicates a varint that does not terminate within 10 bytes
	// or that carries bits beyond the 64-bit range.
	ErrMalformedVarint = errors.New("enumcodec: malformed varint")

	// ErrUnsupportedEnumWidth is returned at binding time when the underlying type of
	// an enum is not one of the eight fixed-size integer kinds.
	ErrUnsupportedEnumWidth = errors.New("enumcodec: unsupported enum width")

	// ErrUnsupportedWireType is returned when an enum is read or written with a wire
	// type that has no scalar integer representation for its width.
	ErrUnsupportedWireType = errors.New("enumcodec: unsupported wire type for enum")

	// ErrNilOptional indicates a WriteOptional call with a nil value. The enum layer
	// has no wire representation of absence.
	ErrNilOptional = errors.New("enumcodec: cannot write nil optional enum")

	// ErrMeasureMismatch means a write emitted a different number of bytes than Measure reported.
	ErrMeasureMismatch = errors.New("enumcodec: written size does not match measured size")

	// ErrTrailingData is returned by Unmarshal when bytes remain after the value.
	ErrTrailingData = errors.New("enumcodec: trailing data found after decoding")
)

// OffsetError attaches the cursor offset at which a read started to a decode failure.
type OffsetError struct {
	Offset int64 // offset of the first byte of the value
	Err    error // underlying error
}

// Error implements the error interface.
func (e *OffsetError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

// Unwrap returns the underlying error.
func (e *OffsetError) Unwrap() error {
	return e.Err
}

// atOffset wraps err with the offset of the value being read
func atOffset(err error, offset int64) error {
	if err == nil {
		return nil
	}
	var oe *OffsetError
	if errors.As(err, &oe) {
		return err
	}
	return &OffsetError{Offset: offset, Err: err}
}
