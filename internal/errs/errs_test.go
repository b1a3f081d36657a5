package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bad Request", "BAD_REQUEST"},
		{"Not Found", "NOT_FOUND"},
		{"Too Many Requests", "TOO_MANY_REQUESTS"},
		{"ok", "OK"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeUpperCaseWithUnderscores(tt.in))
	}
}

func TestConstructorStatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("no token", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("nope", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("gone", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "PRODUCT_ALREADY_EXISTS"
	err := NewBadRequestError("duplicate", true, &code, nil, nil)

	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", err.Code)
	assert.True(t, err.Override)
}

func TestHTTPErrorIs(t *testing.T) {
	inner := NewNotFoundError("gone", false, nil)
	wrapped := fmt.Errorf("lookup failed: %w", inner)

	// Is matches on type, so any *HTTPError target works.
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	orig := NewBadRequestError("original", true, nil, []FieldError{{Field: "name", Error: "is required"}}, nil)

	copied := orig.WithMessage("replaced")

	require.NotSame(t, orig, copied)
	assert.Equal(t, "original", orig.Message)
	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, orig.Status, copied.Status)
	assert.Equal(t, orig.Errors, copied.Errors)
}

func TestInternalServerErrorHidesDetails(t *testing.T) {
	err := NewInternalServerError()
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	assert.False(t, err.Override)
}
