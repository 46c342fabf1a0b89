package docsearch

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These codes classify failures at the domain level: EUNAVAILABLE marks
// transient conditions (timeout, rate limit, 5xx-equivalent) that are safe
// to retry, while every other code fails immediately.
const (
	ECONFLICT     = "conflict"     // conflicting state (e.g. ambiguous keyword, duplicate store id)
	EINTERNAL     = "internal"     // internal error or corrupted state
	EINVALID      = "invalid"      // validation failed
	ENOTFOUND     = "not_found"    // entity does not exist
	EUNAUTHORIZED = "unauthorized" // authentication or permission failure
	EUNAVAILABLE  = "unavailable"  // transient failure (timeout, rate limit, 5xx)
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error code constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise; humans should see Message and machines ErrorCode.
func (e *Error) Error() string {
	return fmt.Sprintf("docsearch error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Transient reports whether an error is worth retrying. Only explicitly
// transient failures qualify; validation and authentication failures never
// consume retry budget.
func Transient(err error) bool {
	return err != nil && ErrorCode(err) == EUNAVAILABLE
}
