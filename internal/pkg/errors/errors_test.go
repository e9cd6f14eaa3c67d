package errors

import (
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
			name: "without wrapped error",
			err:  New("FIELD_NOT_FOUND", "field not found", http.StatusNotFound),
			want: "FIELD_NOT_FOUND: field not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("db error"), "DB_ERROR", "database failure", http.StatusInternalServerError),
			want: "DB_ERROR: database failure: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, "CODE", "msg", 500)

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("NOT_FOUND", "resource not found")
	wrapped := fmt.Errorf("wrapped: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", got.Code)
	}
}

func TestCapacityConstructors(t *testing.T) {
	exceeded := CapacityExceeded("field-1", 60, 40)
	if exceeded.Code != CodeCapacityExceeded {
		t.Errorf("Code = %q, want %q", exceeded.Code, CodeCapacityExceeded)
	}
	if exceeded.HTTPStatus != http.StatusConflict {
		t.Errorf("HTTPStatus = %d, want %d", exceeded.HTTPStatus, http.StatusConflict)
	}
	if exceeded.Params["requested"] != 60.0 || exceeded.Params["free"] != 40.0 {
		t.Errorf("Params = %v, want requested=60 free=40", exceeded.Params)
	}

	if !HasCode(fmt.Errorf("wrap: %w", exceeded), CodeCapacityExceeded) {
		t.Error("HasCode should match through wrapping")
	}
	if HasCode(exceeded, CodeInsufficientCapacity) {
		t.Error("HasCode should not match a different code")
	}

	overflow := CapacityOverflow("field-1")
	if overflow.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("CapacityOverflow status = %d, want 500", overflow.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound("NF", "not found"), http.StatusNotFound},
		{"BadRequest", BadRequest("BR", "bad request"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("UA", "unauthorized"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("FB", "forbidden"), http.StatusForbidden},
		{"Conflict", Conflict("CF", "conflict"), http.StatusConflict},
		{"Internal", Internal("IE", "internal"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}
