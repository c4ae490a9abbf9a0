package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	dmchttp "github.com/iics-tools/dmc/internal/http"
	"github.com/iics-tools/dmc/pkg/dmc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/org", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))
			assert.Equal(t, int64(0), request.ContentLength)

			response := map[string]string{"id": "org-1", "name": "Acme"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := dmchttp.NewClient(server.URL)

		req := &dmchttp.Request{
			Method: "GET",
			Path:   "/api/v2/org",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = resp.Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, "org-1", result["id"])
		assert.Equal(t, "Acme", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/public/core/v3/users", request.URL.Path)
			assert.Equal(t, "limit=100&skip=0", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dmchttp.NewClient(server.URL)

		req := &dmchttp.Request{
			Method: "GET",
			Path:   "/public/core/v3/users",
			Query:  url.Values{"limit": []string{"100"}, "skip": []string{"0"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Auditor", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := dmchttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "/public/core/v3/roles", map[string]string{"name": "Auditor"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("base url override", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/saas/api/v2/server/serverTime", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dmchttp.NewClient("http://unused.invalid")

		resp, err := client.Do(context.Background(), &dmchttp.Request{
			Method:  "GET",
			BaseURL: server.URL + "/saas/",
			Path:    "api/v2/server/serverTime",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"code":"APP_13400","message":"invalid"}}`))
		}))
		defer server.Close()

		client := dmchttp.NewClient(server.URL)

		req := &dmchttp.Request{
			Method: "GET",
			Path:   "/api/v2/org/invalid",
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		apiErr := &dmc.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "GET", apiErr.Method)
		assert.Equal(t, server.URL+"/api/v2/org/invalid", apiErr.URL)
		assert.JSONEq(t, `{"error":{"code":"APP_13400","message":"invalid"}}`, string(apiErr.Body))
	})

	t.Run("server errors are not retried", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := dmchttp.NewClient(server.URL)

		resp, err := client.Do(context.Background(), &dmchttp.Request{Method: "GET", Path: "/x"})
		require.Error(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
		assert.True(t, dmc.IsStatus(err, http.StatusServiceUnavailable))
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := dmchttp.NewClient(serverURL)

		resp, err := client.Do(context.Background(), &dmchttp.Request{Method: "GET", Path: "/x"})
		require.Error(t, err)
		assert.Nil(t, resp)

		apiErr := &dmc.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Zero(t, apiErr.StatusCode)
		assert.Error(t, apiErr.Cause)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-release:
			case <-request.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := dmchttp.NewClient(server.URL, dmchttp.WithTimeout(50*time.Millisecond))

		_, err := client.Do(context.Background(), &dmchttp.Request{Method: "GET", Path: "/slow"})
		require.Error(t, err)
		assert.True(t, dmc.IsAPIError(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "token-1", request.Header.Get("icSessionId"))
			assert.Equal(t, "dmc-test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dmchttp.NewClient(server.URL, dmchttp.WithUserAgent("dmc-test"))

		req := &dmchttp.Request{
			Method: "GET",
			Path:   "/api/v2/agent",
			Headers: map[string]string{
				"icSessionId": "token-1",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := dmchttp.NewClient(server.URL, dmchttp.WithLogger(logger), dmchttp.WithDebug(true))

		req := &dmchttp.Request{
			Method:  "GET",
			Path:    "/api/v2/org",
			Headers: map[string]string{"icSessionId": "secret-token"},
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
		assert.NotContains(t, fmtLogs(logger), "secret-token")
	})
}

func TestResponse_Decode(t *testing.T) {
	t.Parallel()

	var out map[string]interface{}

	require.NoError(t, (&dmchttp.Response{Body: []byte("  ")}).Decode(&out))
	assert.Nil(t, out)

	require.NoError(t, (&dmchttp.Response{Body: []byte(`{"a":1}`)}).Decode(&out))
	assert.InDelta(t, 1.0, out["a"], 0)

	assert.Error(t, (&dmchttp.Response{Body: []byte(`{`)}).Decode(&out))
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base     string
		path     string
		expected string
	}{
		{"https://h", "/x", "https://h/x"},
		{"https://h", "x", "https://h/x"},
		{"https://h/", "/x", "https://h/x"},
		{"https://h/saas", "api/v2/org", "https://h/saas/api/v2/org"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, dmchttp.JoinURL(tt.base, tt.path), "%s + %s", tt.base, tt.path)
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://h/x", dmchttp.BuildURL("https://h", "/x", nil))
	assert.Equal(t, "https://h/x?limit=1", dmchttp.BuildURL("https://h", "/x", url.Values{"limit": {"1"}}))
	assert.Equal(t, "https://h/x?expand=privileges&limit=1",
		dmchttp.BuildURL("https://h", "/x?expand=privileges", url.Values{"limit": {"1"}}))
}

func fmtLogs(logger *MockLogger) string {
	encoded, _ := json.Marshal(logger.logs)

	return string(encoded)
}
