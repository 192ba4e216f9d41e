package dbor

import (
	"errors"
	"fmt"

	"github.com/dbor-go/dbor/internal/header"
	"github.com/dbor-go/dbor/source"
)

// Code enumerates the DBOR error taxonomy (spec.md §7).
type Code int

const (
	// CodeMessage is a framework-level custom error string with no other
	// structured detail.
	CodeMessage Code = iota
	// CodeIO is a raw I/O error from the underlying sink.
	CodeIO
	// CodeEof means more bytes were requested than the source could
	// provide.
	CodeEof
	// CodeExpectedType means the next value's major tag is not among
	// those the current request accepts.
	CodeExpectedType
	// CodeUnexpectedValue means a minor value is illegal for its major,
	// or a tuple's declared length didn't match the decoded length.
	CodeUnexpectedValue
	// CodeTrailingBytes means a top-level decode succeeded but the
	// source was not exhausted.
	CodeTrailingBytes
	// CodeUsizeOverflow means an 8-byte length or discriminant was read
	// that cannot be represented on this host.
	CodeUsizeOverflow
	// CodeNotAType is an internal invariant violation: a reserved or
	// otherwise unrepresentable major tag reached code that assumed it
	// could not.
	CodeNotAType
	// CodeFailedToParseChar means a decoded scalar was not a legal
	// Unicode code point, or a Bytes-encoded char held != 1 code point.
	CodeFailedToParseChar
	// CodeMustKnowItemSize means the encoder was asked to emit a Seq or
	// Map without a known length.
	CodeMustKnowItemSize
)

func (c Code) String() string {
	switch c {
	case CodeMessage:
		return "Message"
	case CodeIO:
		return "Io"
	case CodeEof:
		return "Eof"
	case CodeExpectedType:
		return "ExpectedType"
	case CodeUnexpectedValue:
		return "UnexpectedValue"
	case CodeTrailingBytes:
		return "TrailingBytes"
	case CodeUsizeOverflow:
		return "UsizeOverflow"
	case CodeNotAType:
		return "NotAType"
	case CodeFailedToParseChar:
		return "FailedToParseChar"
	case CodeMustKnowItemSize:
		return "MustKnowItemSize"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by this package's Decoder and
// Encoder. Callers that need to distinguish error kinds switch on Code
// (or use errors.Is against the package-level sentinels below).
type Error struct {
	Code Code

	// Candidates/Actual are populated for CodeExpectedType: the set of
	// major tags the request accepted, and the header byte actually on
	// the wire.
	Candidates []header.Major
	Actual     byte

	// Type/Minor are populated for CodeUnexpectedValue.
	Type  header.Major
	Minor byte

	// Key is a short machine-readable label, e.g. "enum discriminant"
	// or "map length", used to make CodeUsizeOverflow messages specific
	// without a combinatorial explosion of Code values.
	Key string

	// Cause is the wrapped underlying error, if any (e.g. the sink's I/O
	// error for CodeIO, or a custom message for CodeMessage).
	Cause error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeExpectedType:
		return fmt.Sprintf("dbor: expected one of %v, got header %#02x (%s)", e.Candidates, e.Actual, header.Major(e.Actual>>5))
	case CodeUnexpectedValue:
		return fmt.Sprintf("dbor: unexpected minor %d for major %s", e.Minor, e.Type)
	case CodeTrailingBytes:
		return "dbor: trailing bytes after top-level value"
	case CodeUsizeOverflow:
		if e.Key != "" {
			return fmt.Sprintf("dbor: %s overflows host word size", e.Key)
		}
		return "dbor: value overflows host word size"
	case CodeNotAType:
		return "dbor: internal error: reserved major tag reached typed code"
	case CodeFailedToParseChar:
		return "dbor: decoded value is not a valid Unicode scalar"
	case CodeMustKnowItemSize:
		return "dbor: sequence or map must have a known length to encode"
	case CodeIO:
		if e.Cause != nil {
			return fmt.Sprintf("dbor: io error: %v", e.Cause)
		}
		return "dbor: io error"
	case CodeEof:
		return "dbor: eof"
	default:
		if e.Cause != nil {
			return fmt.Sprintf("dbor: %v", e.Cause)
		}
		return "dbor: error"
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Code, so that
// errors.Is(err, dbor.ErrEof) works without exposing Error's other
// fields for comparison.
func (e *Error) Is(target error) bool {
	var o *Error
	if errors.As(target, &o) {
		return e.Code == o.Code
	}
	return false
}

// Sentinels for errors.Is comparisons against the common, field-less
// cases.
var (
	ErrEof               = &Error{Code: CodeEof}
	ErrTrailingBytes     = &Error{Code: CodeTrailingBytes}
	ErrNotAType          = &Error{Code: CodeNotAType}
	ErrFailedToParseChar = &Error{Code: CodeFailedToParseChar}
	ErrMustKnowItemSize  = &Error{Code: CodeMustKnowItemSize}
)

func errExpectedType(actual byte, candidates ...header.Major) *Error {
	return &Error{Code: CodeExpectedType, Candidates: candidates, Actual: actual}
}

func errUnexpectedValue(ty header.Major, minor byte) *Error {
	return &Error{Code: CodeUnexpectedValue, Type: ty, Minor: minor}
}

func errUsizeOverflow(key string) *Error {
	return &Error{Code: CodeUsizeOverflow, Key: key}
}

func errIO(cause error) *Error {
	return &Error{Code: CodeIO, Cause: cause}
}

func errMessage(format string, args ...any) *Error {
	return &Error{Code: CodeMessage, Cause: fmt.Errorf(format, args...)}
}

// asEof maps a source-layer error onto ErrEof; any other error from the
// source package is a logic error in this package (source never returns
// anything else) and is wrapped as CodeMessage so it isn't silently
// dropped.
func asEof(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, source.ErrEof) {
		return ErrEof
	}
	return errMessage("source: %w", err)
}
