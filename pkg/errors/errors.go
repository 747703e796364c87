// Package errors provides structured error types for ghprofile.
//
// Every failure of the lookup pipeline surfaces to the user verbatim, so each
// [Error] carries two things:
//   - a machine-readable [Code] that servers map to HTTP status codes
//   - a user-facing Message shown in the error region
//
// # Error Codes
//
//   - INVALID_INPUT: blank username, detected before any request
//   - USER_NOT_FOUND: the profile lookup returned a non-success status
//   - REPO_FETCH_FAILED: anything that went wrong while listing repositories
//   - NETWORK_ERROR: transport or decoding failures of the profile lookup
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeRepoFetch, cause, "Error fetching repos: %v", cause)
//	if errors.Is(err, errors.ErrCodeRepoFetch) {
//	    fmt.Println(errors.UserMessage(err)) // Error fetching repos: timeout
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the lookup pipeline.
const (
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeUserNotFound Code = "USER_NOT_FOUND"
	ErrCodeRepoFetch    Code = "REPO_FETCH_FAILED"
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// User-facing messages with a fixed text.
const (
	MsgInvalidUsername = "Enter a valid username"
	MsgUserNotFound    = "User Not Found 404!"
	msgRepoFetchPrefix = "Error fetching repos: "
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// InvalidUsername is the validation failure for a blank username.
func InvalidUsername() *Error {
	return New(ErrCodeInvalidInput, MsgInvalidUsername)
}

// UserNotFound reports a profile lookup that did not succeed.
func UserNotFound(cause error) *Error {
	return Wrap(ErrCodeUserNotFound, cause, MsgUserNotFound)
}

// RepoFetch wraps any repository listing failure. The message embeds the
// cause's own message after a fixed prefix.
func RepoFetch(cause error) *Error {
	return Wrap(ErrCodeRepoFetch, cause, "%s%s", msgRepoFetchPrefix, UserMessage(cause))
}

// Network wraps a transport or decoding failure; the message is the cause's
// own text.
func Network(cause error) *Error {
	return Wrap(ErrCodeNetwork, cause, "%s", cause.Error())
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
