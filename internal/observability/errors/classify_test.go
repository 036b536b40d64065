package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"

	apperrors "github.com/openmf/fieldops/internal/errors"
)

type customErr struct{}

func (customErr) Error() string { return "custom" }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "canceled", err: fmt.Errorf("wrap: %w", context.Canceled), want: "canceled"},
		{name: "deadline", err: context.DeadlineExceeded, want: "timeout"},
		{name: "network", err: &apperrors.TransportError{Op: "get", Cause: goerrors.New("refused")}, want: "transport_network"},
		{name: "auth", err: &apperrors.TransportError{Op: "get", Status: 401}, want: "transport_auth"},
		{name: "client error", err: &apperrors.TransportError{Op: "get", Status: 400}, want: "transport_4xx"},
		{name: "server error", err: fmt.Errorf("x: %w", &apperrors.TransportError{Op: "get", Status: 502}), want: "transport_5xx"},
		{name: "app error", err: apperrors.NotFound("gone"), want: "not_found"},
		{name: "plain", err: goerrors.New("boom"), want: "errors_errorstring"},
		{name: "custom type", err: fmt.Errorf("outer: %w", customErr{}), want: "errors_customerr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
