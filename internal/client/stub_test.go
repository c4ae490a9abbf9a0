package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/iics-tools/dmc/pkg/dmc"
)

const (
	stubToken   = "abc123sessionid"
	stubOrgUUID = "org-uuid-123"
	stubOrgID   = "org-id-457"
)

// stubServer serves both login endpoints and the API routes registered with
// handle. Logged-in API calls land under /server, v1 calls under /v1server.
type stubServer struct {
	*httptest.Server

	mux       *http.ServeMux
	logins    atomic.Int32
	failLogin atomic.Bool
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()

	stub := &stubServer{mux: http.NewServeMux()}
	stub.mux.HandleFunc("POST /ma/api/v2/user/login", stub.login(false))
	stub.mux.HandleFunc("POST /saas/public/core/v3/login", stub.login(true))

	stub.Server = httptest.NewServer(stub.mux)
	t.Cleanup(stub.Close)

	return stub
}

func (s *stubServer) login(v3 bool) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		s.logins.Add(1)

		if s.failLogin.Load() {
			writer.WriteHeader(http.StatusForbidden)
			_, _ = writer.Write([]byte(`{"error":{"message":"Invalid credentials"}}`))

			return
		}

		body := map[string]string{
			"serverUrl":   s.URL + "/server",
			"icSessionId": stubToken,
			"orgId":       stubOrgID,
		}
		if !v3 {
			body["orgUuid"] = stubOrgUUID
		}

		writeJSON(writer, http.StatusOK, body)
	}
}

// handle registers an API route, e.g. "GET /server/api/v2/org".
func (s *stubServer) handle(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handler)
}

func (s *stubServer) config() *dmc.Config {
	return &dmc.Config{
		Username:    "user",
		Password:    "pass",
		LoginURL:    s.URL,
		V1ServerURL: s.URL + "/v1server",
	}
}

func (s *stubServer) loginCount() int {
	return int(s.logins.Load())
}

func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

func readJSON(t *testing.T, request *http.Request) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	err := json.NewDecoder(request.Body).Decode(&body)
	if err != nil {
		t.Errorf("decoding request body: %v", err)
	}

	return body
}
