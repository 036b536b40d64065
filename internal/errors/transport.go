package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultTransportMessage is shown when the remote API gives no usable message.
const DefaultTransportMessage = "Something went wrong. Please check your connection and try again."

// TransportError describes a failed call to the remote API.
// Status is zero when the request never produced an HTTP response.
type TransportError struct {
	Op      string
	Status  int
	Message string
	Body    []byte
	Cause   error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Status > 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Code maps the HTTP status onto the application error taxonomy.
func (e *TransportError) Code() ErrorCode {
	switch {
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return ErrCodeUnauthorized
	case e.Status == http.StatusNotFound:
		return ErrCodeNotFound
	case errors.Is(e.Cause, context.DeadlineExceeded):
		return ErrCodeTimeout
	case errors.Is(e.Cause, context.Canceled):
		return ErrCodeCanceled
	default:
		return ErrCodeTransport
	}
}

// Temporary reports whether the failure is likely to go away on a user retry.
func (e *TransportError) Temporary() bool {
	return e.Status == 0 || e.Status >= http.StatusInternalServerError || e.Status == http.StatusTooManyRequests
}

// UserMessage returns text suitable for an error banner.
func (e *TransportError) UserMessage() string {
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	if e.Status == http.StatusUnauthorized {
		return "Your session has expired. Please log in again."
	}
	return DefaultTransportMessage
}

// UserMessage extracts a user-facing message from any error returned by a gateway or store.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.UserMessage()
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return DefaultTransportMessage
}
