// Package errors classifies errors into low-cardinality tags for metrics and logs.
package errors

import (
	"context"
	goerrors "errors"
	"reflect"
	"strings"

	apperrors "github.com/openmf/fieldops/internal/errors"
)

// Classify returns a normalized error class. Gateway failures are bucketed
// by HTTP status family, application errors by code, anything else by the
// innermost concrete type name.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case goerrors.Is(err, context.Canceled):
		return "canceled"
	case goerrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}

	var te *apperrors.TransportError
	if goerrors.As(err, &te) {
		switch {
		case te.Status == 0:
			return "transport_network"
		case te.Status == 401 || te.Status == 403:
			return "transport_auth"
		case te.Status >= 500:
			return "transport_5xx"
		default:
			return "transport_4xx"
		}
	}

	var ae *apperrors.AppError
	if goerrors.As(err, &ae) && ae.Code != "" {
		return string(ae.Code)
	}

	for {
		inner := goerrors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	name := strings.ReplaceAll(strings.ToLower(t.String()), ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
