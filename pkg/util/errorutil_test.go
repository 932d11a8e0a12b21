package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesThrough(t *testing.T) {
	t.Parallel()

	original := NewForbidden("you can only operate on your own resource")
	wrapped := fmt.Errorf("handler: %w", original)

	de := ToDomainError(wrapped)
	require.Equal(t, "FORBIDDEN", de.Code)
	require.Equal(t, http.StatusForbidden, de.HTTPStatus)
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	t.Parallel()

	de := ToDomainError(pgx.ErrNoRows)
	require.Equal(t, "NOT_FOUND", de.Code)
	require.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	t.Parallel()

	de := ToDomainError(errors.New("boom"))
	require.Equal(t, "INTERNAL_ERROR", de.Code)
	require.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	// the raw cause is wrapped, not exposed in the message
	require.Equal(t, "internal server error", de.Message)
}

func TestTaxonomyStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		code   string
		status int
	}{
		{NewDuplicateEmail(), "DUPLICATE_EMAIL", http.StatusBadRequest},
		{NewInvalidCredentials(), "INVALID_CREDENTIALS", http.StatusBadRequest},
		{NewUnauthorized("no token"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("not yours"), "FORBIDDEN", http.StatusForbidden},
		{NewNotFound("user", nil), "NOT_FOUND", http.StatusNotFound},
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
	}

	for _, tc := range tests {
		de := ToDomainError(tc.err)
		require.Equal(t, tc.code, de.Code)
		require.Equal(t, tc.status, de.HTTPStatus)
	}
}
