package qtdoc

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are propagated across component boundaries so callers can branch on
// the kind of failure without parsing messages.
const (
	EINVALID     = "invalid"     // malformed input (bad URL, bad argument)
	ENOTALLOWED  = "not_allowed" // outside the permitted host/path boundary
	ENOTFOUND    = "not_found"   // page or resource does not exist
	EUNAVAILABLE = "unavailable" // search index absent or not queryable
	EINDEX       = "index_error" // index build or schema failure
	EINTERNAL    = "internal"    // anything else
)

// Error represents an application error with a machine-checkable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("qtdoc error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Returns EINTERNAL for non-application errors and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Returns a generic message for non-application errors and an empty string
// for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an *Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
