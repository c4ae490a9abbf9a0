package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iics-tools/dmc/internal/auth"
	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// V2Client implements dmc.V2Client.
type V2Client struct {
	*Transport
}

// NewV2Client logs in and returns a v2 client.
func NewV2Client(ctx context.Context, config *dmc.Config, opts ...TransportOption) (*V2Client, error) {
	transport, err := NewTransport(ctx, config, auth.V2Descriptor(), opts...)
	if err != nil {
		return nil, err
	}

	return &V2Client{Transport: transport}, nil
}

// GetOrgDetails implements dmc.OrganizationsClient.GetOrgDetails.
func (c *V2Client) GetOrgDetails(ctx context.Context) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/org")
	if err != nil {
		return nil, fmt.Errorf("getting org details: %w", err)
	}

	return record, nil
}

// GetOrgByID implements dmc.OrganizationsClient.GetOrgByID.
func (c *V2Client) GetOrgByID(ctx context.Context, id string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/org/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("getting org %s: %w", id, err)
	}

	return record, nil
}

// GetOrgByName implements dmc.OrganizationsClient.GetOrgByName.
func (c *V2Client) GetOrgByName(ctx context.Context, name string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/org/name/"+url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("getting org by name %s: %w", name, err)
	}

	return record, nil
}

// GetRuntimeEnvironments implements dmc.RuntimeEnvironmentsClient.GetRuntimeEnvironments.
func (c *V2Client) GetRuntimeEnvironments(ctx context.Context) (dmc.Records, error) {
	records, err := c.getRecords(ctx, "/api/v2/runtimeEnvironment", "")
	if err != nil {
		return nil, fmt.Errorf("listing runtime environments: %w", err)
	}

	return records, nil
}

// GetRuntimeEnvironmentByID implements dmc.RuntimeEnvironmentsClient.GetRuntimeEnvironmentByID.
func (c *V2Client) GetRuntimeEnvironmentByID(ctx context.Context, id string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/runtimeEnvironment/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("getting runtime environment %s: %w", id, err)
	}

	return record, nil
}

// GetRuntimeEnvironmentByName implements dmc.RuntimeEnvironmentsClient.GetRuntimeEnvironmentByName.
func (c *V2Client) GetRuntimeEnvironmentByName(ctx context.Context, name string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/runtimeEnvironment/name/"+url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("getting runtime environment by name %s: %w", name, err)
	}

	return record, nil
}

// ListSecureAgents implements dmc.AgentsClient.ListSecureAgents.
func (c *V2Client) ListSecureAgents(ctx context.Context) (dmc.Records, error) {
	records, err := c.getRecords(ctx, "/api/v2/agent", "")
	if err != nil {
		return nil, fmt.Errorf("listing secure agents: %w", err)
	}

	return records, nil
}

// GetAgentByID implements dmc.AgentsClient.GetAgentByID.
func (c *V2Client) GetAgentByID(ctx context.Context, id string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/agent/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("getting agent %s: %w", id, err)
	}

	return record, nil
}

// GetAgentByName implements dmc.AgentsClient.GetAgentByName.
func (c *V2Client) GetAgentByName(ctx context.Context, name string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/agent/name/"+url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("getting agent by name %s: %w", name, err)
	}

	return record, nil
}

// GetAgentDetails implements dmc.AgentsClient.GetAgentDetails.
func (c *V2Client) GetAgentDetails(ctx context.Context, id string, statusOnly bool) (dmc.Record, error) {
	var opts []RequestOption
	if statusOnly {
		opts = append(opts, WithParam("onlyStatus", constants.BooleanTrue))
	}

	record, err := c.getRecord(ctx, "/api/v2/agent/details/"+url.PathEscape(id), opts...)
	if err != nil {
		return nil, fmt.Errorf("getting agent details %s: %w", id, err)
	}

	return record, nil
}

// GetServerTime implements dmc.ServerClient.GetServerTime.
func (c *V2Client) GetServerTime(ctx context.Context) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/server/serverTime")
	if err != nil {
		return nil, fmt.Errorf("getting server time: %w", err)
	}

	return record, nil
}

// ListConnections implements dmc.ConnectionsClient.ListConnections.
func (c *V2Client) ListConnections(ctx context.Context) (dmc.Records, error) {
	records, err := c.getRecords(ctx, "/api/v2/connection", "")
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	return records, nil
}

// GetConnection implements dmc.ConnectionsClient.GetConnection.
func (c *V2Client) GetConnection(ctx context.Context, id string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/connection/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("getting connection %s: %w", id, err)
	}

	return record, nil
}

// GetConnectionByName implements dmc.ConnectionsClient.GetConnectionByName.
func (c *V2Client) GetConnectionByName(ctx context.Context, name string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/connection/name/"+url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("getting connection by name %s: %w", name, err)
	}

	return record, nil
}

// TestConnection implements dmc.ConnectionsClient.TestConnection.
func (c *V2Client) TestConnection(ctx context.Context, id string) (dmc.Record, error) {
	record, err := c.getRecord(ctx, "/api/v2/connection/test/"+url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("testing connection %s: %w", id, err)
	}

	return record, nil
}
