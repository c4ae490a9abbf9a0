package dmc

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxErrorBodyLength bounds how much of a response body Error() repeats.
const maxErrorBodyLength = 512

// AuthenticationError is returned when a client is constructed without a
// username or password. No network call is made in that case.
type AuthenticationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return e.Message
}

// APIError is returned for any non-2xx response, including a failed login,
// and for transport failures such as DNS errors, refused connections and
// timeouts.
type APIError struct {
	// StatusCode is zero for transport failures.
	StatusCode int
	Status     string
	Method     string
	URL        string
	// Body is the raw response body, kept so the failed response can be
	// reconstructed for logging.
	Body    []byte
	Message string
	Cause   error
}

// NewStatusError builds an APIError for a non-2xx response.
func NewStatusError(method, url string, statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Method:     method,
		URL:        url,
		Body:       body,
		Message:    fmt.Sprintf("%d %s for url: %s", statusCode, statusClass(statusCode), url),
	}
}

// NewTransportError builds an APIError for a request that never produced a
// response.
func NewTransportError(method, url string, cause error) *APIError {
	return &APIError{
		Method:  method,
		URL:     url,
		Message: fmt.Sprintf("%s %s failed: %v", method, url, cause),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return e.Message
	}

	body := strings.TrimSpace(string(e.Body))
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength] + "..."
	}

	return fmt.Sprintf("%s: %s", e.Message, body)
}

// Unwrap returns the underlying transport failure, if any.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NotFoundError is returned by lookups by id or name when the filtered query
// returns no match. It means the request succeeded but no such entity exists.
type NotFoundError struct {
	Resource string
	Key      string
	Value    string
	Org      string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %s not found in current organization %s", e.Resource, e.Key, e.Value, e.Org)
}

// IsAuthentication reports whether err is or wraps an AuthenticationError.
func IsAuthentication(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsAPIError reports whether err is or wraps an APIError.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsStatus reports whether err wraps an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}

func statusClass(statusCode int) string {
	text := http.StatusText(statusCode)

	switch {
	case statusCode >= 400 && statusCode < 500:
		return "Client Error: " + text
	case statusCode >= 500:
		return "Server Error: " + text
	default:
		return text
	}
}
