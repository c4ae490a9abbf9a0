package client

import (
	"context"

	"github.com/iics-tools/dmc/pkg/dmc"
)

// Client implements the dmc.Client facade. It owns one client per API
// generation and forwards every operation to the generation that serves it.
type Client struct {
	v1 *V1Client
	v2 *V2Client
	v3 *V3Client
}

// New logs in to all three API generations with the same configuration.
func New(ctx context.Context, config *dmc.Config, opts ...TransportOption) (*Client, error) {
	v1, err := NewV1Client(ctx, config, opts...)
	if err != nil {
		return nil, err
	}

	v2, err := NewV2Client(ctx, config, opts...)
	if err != nil {
		return nil, err
	}

	v3, err := NewV3Client(ctx, config, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{v1: v1, v2: v2, v3: v3}, nil
}

// V1 returns the v1 client.
func (c *Client) V1() dmc.V1Client { return c.v1 }

// V2 returns the v2 client.
func (c *Client) V2() dmc.V2Client { return c.v2 }

// V3 returns the v3 client.
func (c *Client) V3() dmc.V3Client { return c.v3 }

// v1

// GetDocuments implements dmc.DocumentsClient.GetDocuments.
func (c *Client) GetDocuments(ctx context.Context, documentType string) (dmc.Records, error) {
	return c.v1.GetDocuments(ctx, documentType)
}

// v2

// GetOrgDetails implements dmc.OrganizationsClient.GetOrgDetails.
func (c *Client) GetOrgDetails(ctx context.Context) (dmc.Record, error) {
	return c.v2.GetOrgDetails(ctx)
}

// GetOrgByID implements dmc.OrganizationsClient.GetOrgByID.
func (c *Client) GetOrgByID(ctx context.Context, id string) (dmc.Record, error) {
	return c.v2.GetOrgByID(ctx, id)
}

// GetOrgByName implements dmc.OrganizationsClient.GetOrgByName.
func (c *Client) GetOrgByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.v2.GetOrgByName(ctx, name)
}

// GetRuntimeEnvironments implements dmc.RuntimeEnvironmentsClient.GetRuntimeEnvironments.
func (c *Client) GetRuntimeEnvironments(ctx context.Context) (dmc.Records, error) {
	return c.v2.GetRuntimeEnvironments(ctx)
}

// GetRuntimeEnvironmentByID implements dmc.RuntimeEnvironmentsClient.GetRuntimeEnvironmentByID.
func (c *Client) GetRuntimeEnvironmentByID(ctx context.Context, id string) (dmc.Record, error) {
	return c.v2.GetRuntimeEnvironmentByID(ctx, id)
}

// GetRuntimeEnvironmentByName implements dmc.RuntimeEnvironmentsClient.GetRuntimeEnvironmentByName.
func (c *Client) GetRuntimeEnvironmentByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.v2.GetRuntimeEnvironmentByName(ctx, name)
}

// ListSecureAgents implements dmc.AgentsClient.ListSecureAgents.
func (c *Client) ListSecureAgents(ctx context.Context) (dmc.Records, error) {
	return c.v2.ListSecureAgents(ctx)
}

// GetAgentByID implements dmc.AgentsClient.GetAgentByID.
func (c *Client) GetAgentByID(ctx context.Context, id string) (dmc.Record, error) {
	return c.v2.GetAgentByID(ctx, id)
}

// GetAgentByName implements dmc.AgentsClient.GetAgentByName.
func (c *Client) GetAgentByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.v2.GetAgentByName(ctx, name)
}

// GetAgentDetails implements dmc.AgentsClient.GetAgentDetails.
func (c *Client) GetAgentDetails(ctx context.Context, id string, statusOnly bool) (dmc.Record, error) {
	return c.v2.GetAgentDetails(ctx, id, statusOnly)
}

// GetServerTime implements dmc.ServerClient.GetServerTime.
func (c *Client) GetServerTime(ctx context.Context) (dmc.Record, error) {
	return c.v2.GetServerTime(ctx)
}

// ListConnections implements dmc.ConnectionsClient.ListConnections.
func (c *Client) ListConnections(ctx context.Context) (dmc.Records, error) {
	return c.v2.ListConnections(ctx)
}

// GetConnection implements dmc.ConnectionsClient.GetConnection.
func (c *Client) GetConnection(ctx context.Context, id string) (dmc.Record, error) {
	return c.v2.GetConnection(ctx, id)
}

// GetConnectionByName implements dmc.ConnectionsClient.GetConnectionByName.
func (c *Client) GetConnectionByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.v2.GetConnectionByName(ctx, name)
}

// TestConnection implements dmc.ConnectionsClient.TestConnection.
func (c *Client) TestConnection(ctx context.Context, id string) (dmc.Record, error) {
	return c.v2.TestConnection(ctx, id)
}

// v3

// RetrieveTrustedIPs implements dmc.SecurityClient.RetrieveTrustedIPs.
func (c *Client) RetrieveTrustedIPs(ctx context.Context) (dmc.Record, error) {
	return c.v3.RetrieveTrustedIPs(ctx)
}

// ListPrivileges implements dmc.SecurityClient.ListPrivileges.
func (c *Client) ListPrivileges(ctx context.Context) (dmc.Records, error) {
	return c.v3.ListPrivileges(ctx)
}

// ListRoles implements dmc.RolesClient.ListRoles.
func (c *Client) ListRoles(ctx context.Context) (dmc.Records, error) {
	return c.v3.ListRoles(ctx)
}

// GetRoleDetails implements dmc.RolesClient.GetRoleDetails.
func (c *Client) GetRoleDetails(ctx context.Context, name string) (dmc.Records, error) {
	return c.v3.GetRoleDetails(ctx, name)
}

// CreateRole implements dmc.RolesClient.CreateRole.
func (c *Client) CreateRole(ctx context.Context, name, description string, privileges []string) (dmc.Record, error) {
	return c.v3.CreateRole(ctx, name, description, privileges)
}

// AddRolePrivileges implements dmc.RolesClient.AddRolePrivileges.
func (c *Client) AddRolePrivileges(ctx context.Context, id string, privileges []string) (bool, error) {
	return c.v3.AddRolePrivileges(ctx, id, privileges)
}

// AddRolePrivilegesByName implements dmc.RolesClient.AddRolePrivilegesByName.
func (c *Client) AddRolePrivilegesByName(ctx context.Context, name string, privileges []string) (bool, error) {
	return c.v3.AddRolePrivilegesByName(ctx, name, privileges)
}

// RemoveRolePrivileges implements dmc.RolesClient.RemoveRolePrivileges.
func (c *Client) RemoveRolePrivileges(ctx context.Context, id string, privileges []string) (bool, error) {
	return c.v3.RemoveRolePrivileges(ctx, id, privileges)
}

// RemoveRolePrivilegesByName implements dmc.RolesClient.RemoveRolePrivilegesByName.
func (c *Client) RemoveRolePrivilegesByName(ctx context.Context, name string, privileges []string) (bool, error) {
	return c.v3.RemoveRolePrivilegesByName(ctx, name, privileges)
}

// DeleteRole implements dmc.RolesClient.DeleteRole.
func (c *Client) DeleteRole(ctx context.Context, id string) (bool, error) {
	return c.v3.DeleteRole(ctx, id)
}

// ListUsers implements dmc.UsersClient.ListUsers.
func (c *Client) ListUsers(ctx context.Context, limit, skip int) (dmc.Records, error) {
	return c.v3.ListUsers(ctx, limit, skip)
}

// GetUserByID implements dmc.UsersClient.GetUserByID.
func (c *Client) GetUserByID(ctx context.Context, id string) (dmc.Record, error) {
	return c.v3.GetUserByID(ctx, id)
}

// GetUserByName implements dmc.UsersClient.GetUserByName.
func (c *Client) GetUserByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.v3.GetUserByName(ctx, name)
}

// ListUserGroups implements dmc.UserGroupsClient.ListUserGroups.
func (c *Client) ListUserGroups(ctx context.Context, limit, skip int) (dmc.Records, error) {
	return c.v3.ListUserGroups(ctx, limit, skip)
}

// GetUserGroupByID implements dmc.UserGroupsClient.GetUserGroupByID.
func (c *Client) GetUserGroupByID(ctx context.Context, id string) (dmc.Record, error) {
	return c.v3.GetUserGroupByID(ctx, id)
}

// GetUserGroupByName implements dmc.UserGroupsClient.GetUserGroupByName.
func (c *Client) GetUserGroupByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.v3.GetUserGroupByName(ctx, name)
}

// ListSAMLRoleMappings implements dmc.SAMLClient.ListSAMLRoleMappings.
func (c *Client) ListSAMLRoleMappings(ctx context.Context, limit, skip int) (dmc.Records, error) {
	return c.v3.ListSAMLRoleMappings(ctx, limit, skip)
}

// ListSAMLGroupMappings implements dmc.SAMLClient.ListSAMLGroupMappings.
func (c *Client) ListSAMLGroupMappings(ctx context.Context, limit, skip int) (dmc.Records, error) {
	return c.v3.ListSAMLGroupMappings(ctx, limit, skip)
}

// AddSAMLGroupMappings implements dmc.SAMLClient.AddSAMLGroupMappings.
func (c *Client) AddSAMLGroupMappings(ctx context.Context, mappings []dmc.SAMLGroupMapping, reuseGroup bool) (bool, error) {
	return c.v3.AddSAMLGroupMappings(ctx, mappings, reuseGroup)
}

// RemoveSAMLGroupMappings implements dmc.SAMLClient.RemoveSAMLGroupMappings.
func (c *Client) RemoveSAMLGroupMappings(ctx context.Context, mappings []dmc.SAMLGroupMapping) (bool, error) {
	return c.v3.RemoveSAMLGroupMappings(ctx, mappings)
}

// ListSchedules implements dmc.SchedulesClient.ListSchedules.
func (c *Client) ListSchedules(ctx context.Context) (dmc.Records, error) {
	return c.v3.ListSchedules(ctx)
}

var (
	_ dmc.Client   = (*Client)(nil)
	_ dmc.V1Client = (*V1Client)(nil)
	_ dmc.V2Client = (*V2Client)(nil)
	_ dmc.V3Client = (*V3Client)(nil)
)
