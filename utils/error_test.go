package utils

import (
	"fmt"
	"net/http"
	"testing"
)

func TestKindOfSurvivesWrapping(t *testing.T) {
	err := NotFoundError("booking %s not found", "bk-1")
	wrapped := fmt.Errorf("service call failed: %w", err)

	if KindOf(wrapped) != KindNotFound {
		t.Fatalf("kind of wrapped error = %s, want %s", KindOf(wrapped), KindNotFound)
	}
	if !IsKind(wrapped, KindNotFound) {
		t.Fatalf("IsKind(wrapped, not_found) = false, want true")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ValidationError("bad input"), http.StatusBadRequest},
		{UnauthenticatedError("no token"), http.StatusUnauthorized},
		{ForbiddenError("wrong role"), http.StatusForbidden},
		{NotFoundError("missing"), http.StatusNotFound},
		{AlreadyDecidedError("raced"), http.StatusConflict},
		{ConflictError("duplicate"), http.StatusConflict},
		{fmt.Errorf("plain failure"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.status {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.status)
		}
	}
}
