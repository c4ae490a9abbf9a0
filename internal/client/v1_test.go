package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestV1Client_GetDocuments(t *testing.T) {
	t.Parallel()

	t.Run("list body", func(t *testing.T) {
		t.Parallel()

		stub := newStubServer(t)
		stub.handle("GET /v1server/frs/api/v1/Documents", func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "(documentType eq 'MTT')", request.URL.Query().Get("filter"))
			assert.Equal(t, stubToken, request.Header.Get("IDS-SESSION-ID"))
			writeJSON(writer, http.StatusOK, []map[string]string{{"id": "doc-1", "documentType": "MTT"}})
		})

		client, err := NewV1Client(context.Background(), stub.config())
		require.NoError(t, err)

		documents, err := client.GetDocuments(context.Background(), "MTT")
		require.NoError(t, err)
		require.Len(t, documents, 1)
		assert.Equal(t, "doc-1", documents[0].String("id"))
	})

	t.Run("wrapped body", func(t *testing.T) {
		t.Parallel()

		stub := newStubServer(t)
		stub.handle("GET /v1server/frs/api/v1/Documents", func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"count":     2,
				"documents": []map[string]string{{"id": "doc-1"}, {"id": "doc-2"}},
			})
		})

		client, err := NewV1Client(context.Background(), stub.config())
		require.NoError(t, err)

		documents, err := client.GetDocuments(context.Background(), "DTEMPLATE")
		require.NoError(t, err)
		assert.Len(t, documents, 2)
	})

	t.Run("ignores login server url", func(t *testing.T) {
		t.Parallel()

		stub := newStubServer(t)
		stub.handle("GET /server/frs/api/v1/Documents", func(writer http.ResponseWriter, request *http.Request) {
			t.Error("v1 request sent to the login server url")
		})
		stub.handle("GET /v1server/frs/api/v1/Documents", func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusOK, []map[string]string{})
		})

		client, err := NewV1Client(context.Background(), stub.config())
		require.NoError(t, err)
		assert.Equal(t, stub.URL+"/v1server", client.Session().BaseURL)

		documents, err := client.GetDocuments(context.Background(), "MTT")
		require.NoError(t, err)
		assert.Empty(t, documents)
	})
}
