package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err:  &AppError{Code: ErrCodeNotFound, Message: "center not found"},
			want: "center not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to save client",
				Cause:   errors.New("disk full"),
			},
			want: "failed to save client: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(Wrap(cause)) = false, want true")
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "nothing"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestCodeHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NotFound("x"), IsNotFound},
		{"conflict", Conflict("x"), IsConflict},
		{"validation", ValidationField("name", "required"), IsValidation},
		{"empty", Empty("no centers"), IsEmpty},
		{"stale", Stale("request %d superseded", 3), IsStale},
		{"wrapped empty", fmt.Errorf("load: %w", Empty("no clients")), IsEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("helper returned false for %v", tt.err)
			}
		})
	}
}

func TestGetField(t *testing.T) {
	err := fmt.Errorf("save: %w", ValidationField("display_name", "required"))
	if got := GetField(err); got != "display_name" {
		t.Errorf("GetField() = %q, want display_name", got)
	}
	if got := GetField(errors.New("plain")); got != "" {
		t.Errorf("GetField(plain) = %q, want empty", got)
	}
}

func TestTransportError_Code(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want ErrorCode
	}{
		{"unauthorized", &TransportError{Op: "list centers", Status: http.StatusUnauthorized}, ErrCodeUnauthorized},
		{"forbidden", &TransportError{Op: "list centers", Status: http.StatusForbidden}, ErrCodeUnauthorized},
		{"not found", &TransportError{Op: "get center", Status: http.StatusNotFound}, ErrCodeNotFound},
		{"server error", &TransportError{Op: "list clients", Status: http.StatusBadGateway}, ErrCodeTransport},
		{"timeout", &TransportError{Op: "list clients", Cause: context.DeadlineExceeded}, ErrCodeTimeout},
		{"canceled", &TransportError{Op: "list clients", Cause: context.Canceled}, ErrCodeCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.want {
				t.Errorf("Code() = %v, want %v", got, tt.want)
			}
			if got := GetCode(fmt.Errorf("wrapped: %w", tt.err)); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransportError_Error(t *testing.T) {
	err := &TransportError{Op: "list centers", Status: 500, Message: "boom"}
	if got, want := err.Error(), "list centers: status 500: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &TransportError{Op: "list centers", Cause: errors.New("connection refused")}
	if got, want := err.Error(), "list centers: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"server message", &TransportError{Status: 400, Message: "Office is closed"}, "Office is closed"},
		{"no message", &TransportError{Status: 502}, DefaultTransportMessage},
		{"unauthorized", &TransportError{Status: 401}, "Your session has expired. Please log in again."},
		{"app error", NotFound("Center not found"), "Center not found"},
		{"plain", errors.New("socket closed"), DefaultTransportMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTransport(t *testing.T) {
	if !IsTransport(fmt.Errorf("x: %w", &TransportError{Status: 500})) {
		t.Error("IsTransport(wrapped TransportError) = false, want true")
	}
	if !IsTransport(Wrap(errors.New("dial"), ErrCodeTransport, "gateway")) {
		t.Error("IsTransport(AppError transport) = false, want true")
	}
	if IsTransport(NotFound("x")) {
		t.Error("IsTransport(NotFound) = true, want false")
	}
}

func TestTransportError_Temporary(t *testing.T) {
	if !(&TransportError{}).Temporary() {
		t.Error("network failure should be temporary")
	}
	if !(&TransportError{Status: 503}).Temporary() {
		t.Error("503 should be temporary")
	}
	if (&TransportError{Status: 400}).Temporary() {
		t.Error("400 should not be temporary")
	}
}
