package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewError(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	err := NewError(ctx, LayerDomain, ErrorTypeValidation, "invalid role", nil)

	if err.UUID == "" {
		t.Error("Expected a generated UUID")
	}
	if err.RequestID != "req-123" {
		t.Errorf("Expected request ID req-123, got %s", err.RequestID)
	}
	if err.Type != ErrorTypeValidation {
		t.Errorf("Expected validation type, got %s", err.Type)
	}
	if err.Timestamp.IsZero() {
		t.Error("Expected a timestamp")
	}
}

func TestAsError_PreservesType(t *testing.T) {
	ctx := context.Background()
	inner := NewError(ctx, LayerRepository, ErrorTypeNotFound, "row missing", nil)

	wrapped := AsError(ctx, LayerDomain, inner, "load session")
	if wrapped.Type != ErrorTypeNotFound {
		t.Errorf("Expected not-found type preserved, got %s", wrapped.Type)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("Expected wrapped error to unwrap to the inner error")
	}
}

func TestAsError_PlainError(t *testing.T) {
	ctx := context.Background()
	wrapped := AsError(ctx, LayerDomain, fmt.Errorf("boom"), "load session")
	if wrapped.Type != ErrorTypeInternal {
		t.Errorf("Expected internal type for plain errors, got %s", wrapped.Type)
	}

	if AsError(ctx, LayerDomain, nil, "noop") != nil {
		t.Error("Expected nil for nil input")
	}
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeForbidden, http.StatusForbidden},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("bogus"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := ErrorTypeToHTTPStatus(tt.errorType); got != tt.want {
			t.Errorf("ErrorTypeToHTTPStatus(%s) = %d, want %d", tt.errorType, got, tt.want)
		}
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewError(context.Background(), LayerDomain, ErrorTypeForbidden, "denied", nil)

	if !IsErrorType(err, ErrorTypeForbidden) {
		t.Error("Expected forbidden type match")
	}
	if IsErrorType(err, ErrorTypeNotFound) {
		t.Error("Did not expect not-found type match")
	}
	if IsErrorType(fmt.Errorf("plain"), ErrorTypeInternal) {
		t.Error("Plain errors should never match")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !IsErrorType(wrapped, ErrorTypeForbidden) {
		t.Error("Expected type match through wrapping")
	}
}
