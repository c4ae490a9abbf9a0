package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/iics-tools/dmc/pkg/dmc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestV2Client_Endpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		query string
		list  bool
		call  func(ctx context.Context, c *V2Client) (interface{}, error)
	}{
		{
			name: "GetOrgDetails",
			path: "/server/api/v2/org",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetOrgDetails(ctx) },
		},
		{
			name: "GetOrgByID",
			path: "/server/api/v2/org/org-2",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetOrgByID(ctx, "org-2") },
		},
		{
			name: "GetOrgByName",
			path: "/server/api/v2/org/name/Sub Org",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetOrgByName(ctx, "Sub Org") },
		},
		{
			name: "GetRuntimeEnvironments",
			path: "/server/api/v2/runtimeEnvironment",
			list: true,
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetRuntimeEnvironments(ctx) },
		},
		{
			name: "GetRuntimeEnvironmentByID",
			path: "/server/api/v2/runtimeEnvironment/re-1",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) {
				return c.GetRuntimeEnvironmentByID(ctx, "re-1")
			},
		},
		{
			name: "GetRuntimeEnvironmentByName",
			path: "/server/api/v2/runtimeEnvironment/name/group-a",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) {
				return c.GetRuntimeEnvironmentByName(ctx, "group-a")
			},
		},
		{
			name: "ListSecureAgents",
			path: "/server/api/v2/agent",
			list: true,
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.ListSecureAgents(ctx) },
		},
		{
			name: "GetAgentByID",
			path: "/server/api/v2/agent/agent-1",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetAgentByID(ctx, "agent-1") },
		},
		{
			name: "GetAgentByName",
			path: "/server/api/v2/agent/name/host-1",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetAgentByName(ctx, "host-1") },
		},
		{
			name: "GetAgentDetails",
			path: "/server/api/v2/agent/details/agent-1",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) {
				return c.GetAgentDetails(ctx, "agent-1", false)
			},
		},
		{
			name:  "GetAgentDetails status only",
			path:  "/server/api/v2/agent/details/agent-1",
			query: "onlyStatus=true",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) {
				return c.GetAgentDetails(ctx, "agent-1", true)
			},
		},
		{
			name: "GetServerTime",
			path: "/server/api/v2/server/serverTime",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetServerTime(ctx) },
		},
		{
			name: "ListConnections",
			path: "/server/api/v2/connection",
			list: true,
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.ListConnections(ctx) },
		},
		{
			name: "GetConnection",
			path: "/server/api/v2/connection/conn-1",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.GetConnection(ctx, "conn-1") },
		},
		{
			name: "GetConnectionByName",
			path: "/server/api/v2/connection/name/Oracle DWH",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) {
				return c.GetConnectionByName(ctx, "Oracle DWH")
			},
		},
		{
			name: "TestConnection",
			path: "/server/api/v2/connection/test/conn-1",
			call: func(ctx context.Context, c *V2Client) (interface{}, error) { return c.TestConnection(ctx, "conn-1") },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stub := newStubServer(t)
			stub.handle("GET /server/", func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, tt.path, request.URL.Path)
				assert.Equal(t, tt.query, request.URL.RawQuery)
				assert.Equal(t, stubToken, request.Header.Get("icSessionId"))

				if tt.list {
					writeJSON(writer, http.StatusOK, []map[string]string{{"id": "first"}, {"id": "second"}})

					return
				}

				writeJSON(writer, http.StatusOK, map[string]string{"id": "first"})
			})

			client, err := NewV2Client(context.Background(), stub.config())
			require.NoError(t, err)

			result, err := tt.call(context.Background(), client)
			require.NoError(t, err)

			if tt.list {
				records, ok := result.(dmc.Records)
				require.True(t, ok)
				require.Len(t, records, 2)
				assert.Equal(t, "second", records[1].String("id"))
			} else {
				record, ok := result.(dmc.Record)
				require.True(t, ok)
				assert.Equal(t, "first", record.String("id"))
			}

			assert.Equal(t, 2, stub.loginCount())
		})
	}
}

func TestV2Client_GetOrgDetails(t *testing.T) {
	t.Parallel()

	stub := newStubServer(t)
	stub.handle("GET /server/api/v2/org", func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"@type":       "org",
			"id":          stubOrgID,
			"orgName":     "Acme",
			"subOrgs":     []interface{}{},
			"maxSubOrgs":  0,
			"orgUuid":     stubOrgUUID,
			"description": "",
		})
	})

	client, err := NewV2Client(context.Background(), stub.config())
	require.NoError(t, err)

	org, err := client.GetOrgDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme", org.String("orgName"))
	assert.Equal(t, stubOrgUUID, org.String("orgUuid"))

	var decoded struct {
		ID      string `json:"id"`
		OrgName string `json:"orgName"`
	}

	require.NoError(t, org.Decode(&decoded))
	assert.Equal(t, stubOrgID, decoded.ID)
}

func TestV2Client_NotFound(t *testing.T) {
	t.Parallel()

	stub := newStubServer(t)
	stub.handle("GET /server/api/v2/agent/{id}", func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusNotFound, map[string]string{"@type": "error", "code": "Agent_011", "description": "Agent not found"})
	})

	client, err := NewV2Client(context.Background(), stub.config())
	require.NoError(t, err)

	_, err = client.GetAgentByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, dmc.IsStatus(err, http.StatusNotFound))
	assert.Contains(t, err.Error(), "getting agent missing")
	assert.Contains(t, err.Error(), "Agent not found")
}
