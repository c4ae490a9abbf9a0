package dmc

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status without body",
			err:      NewStatusError(http.MethodGet, "https://h/api/v2/org", http.StatusNotFound, nil),
			expected: "404 Client Error: Not Found for url: https://h/api/v2/org",
		},
		{
			name:     "status with body",
			err:      NewStatusError(http.MethodPost, "https://h/login", http.StatusBadRequest, []byte(`{"error":"bad"}`+"\n")),
			expected: `400 Client Error: Bad Request for url: https://h/login: {"error":"bad"}`,
		},
		{
			name:     "server error",
			err:      NewStatusError(http.MethodGet, "https://h/x", http.StatusBadGateway, nil),
			expected: "502 Server Error: Bad Gateway for url: https://h/x",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_TruncatesLongBody(t *testing.T) {
	t.Parallel()

	err := NewStatusError(http.MethodGet, "https://h/x", http.StatusInternalServerError, []byte(strings.Repeat("a", 2000)))

	assert.True(t, strings.HasSuffix(err.Error(), "..."))
	assert.Len(t, err.Body, 2000)
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewTransportError(http.MethodGet, "https://h/x", cause)

	assert.ErrorIs(t, err, cause)
	assert.Zero(t, err.StatusCode)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNotFoundError_Error(t *testing.T) {
	t.Parallel()

	err := &NotFoundError{Resource: "user", Key: "id", Value: "missing", Org: "org-id-457"}

	assert.Equal(t, "user with id missing not found in current organization org-id-457", err.Error())
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	apiErr := NewStatusError(http.MethodGet, "https://h/x", http.StatusBadRequest, nil)
	wrappedAPI := fmt.Errorf("listing roles: %w", apiErr)
	notFound := fmt.Errorf("lookup: %w", &NotFoundError{Resource: "user", Key: "name", Value: "x"})
	authErr := &AuthenticationError{Message: "No username provided"}

	assert.True(t, IsAPIError(wrappedAPI))
	assert.True(t, IsStatus(wrappedAPI, http.StatusBadRequest))
	assert.False(t, IsStatus(wrappedAPI, http.StatusNotFound))
	assert.False(t, IsStatus(notFound, http.StatusNotFound))
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(wrappedAPI))
	assert.True(t, IsAuthentication(authErr))
	assert.False(t, IsAuthentication(apiErr))
	assert.False(t, IsAPIError(nil))
}
