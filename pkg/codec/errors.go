package codec

import "fmt"

// Code classifies codec failures.
type Code string

const (
	// CodeIO covers missing, unreadable and unwritable files.
	CodeIO Code = "io"
	// CodeHeader covers a missing or malformed dimension header.
	CodeHeader Code = "header"
	// CodeDimensions covers non-positive or oversized declared dimensions.
	CodeDimensions Code = "dimensions"
	// CodeData covers missing or malformed cell values.
	CodeData Code = "data"
)

// Sentinels for errors.Is; matching is by code.
var (
	ErrIO         = &Error{Code: CodeIO}
	ErrHeader     = &Error{Code: CodeHeader}
	ErrDimensions = &Error{Code: CodeDimensions}
	ErrData       = &Error{Code: CodeData}
)

// Error is a codec failure with a machine-readable code.
type Error struct {
	Code    Code
	Path    string
	Message string
	Cause   error
}

func newError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code) + " error"
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}
