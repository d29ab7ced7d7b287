// Package errs defines the sentinel errors returned by the sonarlog packages.
//
// Errors are usually wrapped with additional context, so callers should match
// them with errors.Is rather than by equality.
package errs

import "errors"

var (
	// ErrUnsupportedFormat is returned when the file prologue does not carry a known SL2/SL3 magic.
	ErrUnsupportedFormat = errors.New("unsupported log format")
	// ErrCorruptBlock is returned when a block header declares a size outside the valid range.
	// The stream is not self-synchronizing, so decoding stops at the first corrupt block.
	ErrCorruptBlock = errors.New("corrupt block")
	// ErrTruncatedTail is returned when input ends in the middle of a prologue, block header or payload.
	ErrTruncatedTail = errors.New("truncated tail")
	// ErrNeedMore signals that not enough input is buffered to make progress.
	ErrNeedMore = errors.New("need more input")
	// ErrInputClosed is returned when input is appended after the end of stream was signalled.
	ErrInputClosed = errors.New("input already closed")
	// ErrInvalidHeaderSize is returned when a section is parsed from a slice of the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidOption is returned when a decoder option carries an invalid value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrSessionClosed is returned when a closed session is used.
	ErrSessionClosed = errors.New("session closed")
)
