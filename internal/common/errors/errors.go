// internal/common/errors/errors.go
// Package errors provides the standardized error taxonomy for backend API
// interactions: transport failures, authentication/authorization failures,
// not-found, validation rejections and server faults.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode classifies an API failure.
type ErrorCode string

const (
	ErrCodeTransport    ErrorCode = "TRANSPORT_ERROR"     // no response received
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"        // 401, global logout
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"           // 403
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"           // 404
	ErrCodeValidation   ErrorCode = "VALIDATION_REJECTED" // other 4xx with message
	ErrCodeServer       ErrorCode = "SERVER_ERROR"        // 5xx
)

// GenericMessage is shown when the server supplies no message field.
const GenericMessage = "Something went wrong. Please try again."

// APIError is a structured failure from the backend API.
type APIError struct {
	Code       ErrorCode              `json:"code"`
	StatusCode int                    `json:"statusCode"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// UserMessage is the text surfaced in a toast/notification: the server's
// message field verbatim when present, a generic fallback otherwise.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericMessage
}

// FromStatus maps an HTTP response status and optional server message to the
// taxonomy.
func FromStatus(status int, message string) *APIError {
	code := ErrCodeValidation
	switch {
	case status == http.StatusUnauthorized:
		code = ErrCodeUnauthorized
	case status == http.StatusForbidden:
		code = ErrCodeForbidden
	case status == http.StatusNotFound:
		code = ErrCodeNotFound
	case status >= 500:
		code = ErrCodeServer
	}
	return &APIError{
		Code:       code,
		StatusCode: status,
		Message:    message,
		Timestamp:  time.Now().UTC(),
	}
}

// NewTransportError wraps a failure where no response was received at all.
func NewTransportError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeTransport,
		Message:   "Unable to reach the server. Please check your connection.",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError reports a client-side rejection before any request is
// made (e.g. a file extension outside the allow-list).
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:      ErrCodeValidation,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// IsNotFound reports whether err is a 404. Some call sites treat a 404 on
// the student's own profile as a legitimate empty state.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsUnauthorized reports whether err is a 401.
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrCodeUnauthorized)
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	return hasCode(err, ErrCodeTransport)
}

func hasCode(err error, code ErrorCode) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// UserMessage extracts a displayable message from any error.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	if err != nil {
		return err.Error()
	}
	return GenericMessage
}
