package dictionary

import (
	"errors"
	"fmt"
)

// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 2XX: the word list could not be read
//   - 4XX: a word is not valid for the alphabet
//   - 5XX: the trie itself failed
const (
	ErrCodeSourceUnavailable = "ERR_201_SOURCE_UNAVAILABLE"
	ErrCodeSourceRead        = "ERR_202_SOURCE_READ"
	ErrCodeInvalidWord       = "ERR_401_INVALID_WORD"
	ErrCodeNodeLimit         = "ERR_501_NODE_LIMIT"
	ErrCodeTeardown          = "ERR_502_TEARDOWN"
)

// Sentinels for use with errors.Is. Matching is done by code.
var (
	ErrSourceUnavailable = &Error{Code: ErrCodeSourceUnavailable, Message: "dictionary source unavailable"}
	ErrSourceRead        = &Error{Code: ErrCodeSourceRead, Message: "dictionary source could not be read"}
	ErrInvalidWord       = &Error{Code: ErrCodeInvalidWord, Message: "invalid word"}
	ErrNodeLimit         = &Error{Code: ErrCodeNodeLimit, Message: "node limit exhausted"}
	ErrTeardown          = &Error{Code: ErrCodeTeardown, Message: "teardown incomplete"}
)

// Error is the error type returned by every operation of a Dictionary.
type Error struct {
	// Code is the unique error code, e.g. ERR_401_INVALID_WORD.
	Code string

	// Message is the human-readable error message.
	Message string

	// Word is the offending word, if any.
	Word string

	// Path is the word list being loaded, if any.
	Path string

	// Cause is the underlying error.
	Cause error
}

func newError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Word != "" {
		msg += fmt.Sprintf(" %q", e.Word)
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// IsFatal reports whether err means the dictionary ran out of room for nodes.
// Nothing partially built is left reachable when this happens, but retrying
// the same load will fail again.
func IsFatal(err error) bool {
	return errors.Is(err, ErrNodeLimit)
}

// Code extracts the error code from err, or "" if err is not an *Error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
