package farbfeld

import (
	"errors"
	"fmt"
)

// Decode failures: data-integrity defects in untrusted input.
// All are terminal for the current call; no partial image is ever returned.
var (
	ErrTruncated       = errors.New("farbfeld: truncated header")
	ErrBadSignature    = errors.New("farbfeld: bad magic signature")
	ErrIncompletePixel = errors.New("farbfeld: incomplete trailing pixel")
	ErrPixelCount      = errors.New("farbfeld: pixel count does not match header")
)

// Encode and construction failures: defects in caller-supplied data.
// All are terminal; Encode writes zero bytes once validation has failed.
var (
	ErrNilImage       = errors.New("farbfeld: invalid pixel data")
	ErrRowLength      = errors.New("farbfeld: row length mismatch")
	ErrPixelArity     = errors.New("farbfeld: pixel must have exactly 4 components")
	ErrComponentRange = errors.New("farbfeld: component out of range [0, 65535]")
	ErrComponentType  = errors.New("farbfeld: component is not an integral value")
)

// FormatError reports a malformed byte stream during decode.
// Match the variant with errors.Is against the decode sentinels.
type FormatError struct {
	Err    error // one of the decode sentinels
	Offset int64 // byte offset at which the defect was detected
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError reports caller-supplied image data that cannot be encoded.
// Row and Col identify the first offending element; -1 means not applicable.
type ValidationError struct {
	Err error // one of the encode sentinels
	Row int
	Col int
}

func (e *ValidationError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("%v (row %d, pixel %d)", e.Err, e.Row, e.Col)
	case e.Row >= 0:
		return fmt.Sprintf("%v (row %d)", e.Err, e.Row)
	default:
		return e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

func formatErr(err error, off int64) error {
	return &FormatError{Err: err, Offset: off}
}

func validationErr(err error, row, col int) error {
	return &ValidationError{Err: err, Row: row, Col: col}
}
