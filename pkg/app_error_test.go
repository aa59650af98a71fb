package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
}

func TestAppError_ErrorWithoutCause(t *testing.T) {
	appErr := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if got := appErr.Error(); got != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected error string %q", got)
	}
	if appErr.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}
}
