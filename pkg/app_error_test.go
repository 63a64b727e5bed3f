package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	body := NewDomainErrorSimple("LINE_NOT_FOUND", "Line not found", http.StatusNotFound).ToHTTPError()
	if body.Code != "LINE_NOT_FOUND" || body.Message != "Line not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_WithField(t *testing.T) {
	base := NewDomainErrorSimple("INVALID_FIELD_VALUE", "Invalid field value", http.StatusUnprocessableEntity)
	withField := base.WithField("quantity")

	if base.Field != "" {
		t.Fatalf("WithField must not modify the original error")
	}
	if got := withField.ToHTTPError(); got.Field != "quantity" || got.Code != "INVALID_FIELD_VALUE" {
		t.Fatalf("unexpected body: %+v", got)
	}
}
