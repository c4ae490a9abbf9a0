package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iics-tools/dmc/internal/auth"
	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/pkg/dmc"
)

const (
	rolesPath      = "/public/core/v3/roles"
	usersPath      = "/public/core/v3/users"
	userGroupsPath = "/public/core/v3/userGroups"
)

// V3Client implements dmc.V3Client.
type V3Client struct {
	*Transport
}

// NewV3Client logs in and returns a v3 client.
func NewV3Client(ctx context.Context, config *dmc.Config, opts ...TransportOption) (*V3Client, error) {
	transport, err := NewTransport(ctx, config, auth.V3Descriptor(), opts...)
	if err != nil {
		return nil, err
	}

	return &V3Client{Transport: transport}, nil
}

type privilegesRequest struct {
	Privileges []string `json:"privileges"`
}

type createRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Privileges  []string `json:"privileges"`
}

type groupMappingsRequest struct {
	GroupMappings []dmc.SAMLGroupMapping `json:"groupMappings"`
	ReuseGroup    *bool                  `json:"reuseGroup,omitempty"`
}

// RetrieveTrustedIPs implements dmc.SecurityClient.RetrieveTrustedIPs.
func (c *V3Client) RetrieveTrustedIPs(ctx context.Context) (dmc.Record, error) {
	path, err := c.orgPath("TrustedIP")
	if err != nil {
		return nil, fmt.Errorf("retrieving trusted IPs: %w", err)
	}

	record, err := c.getRecord(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("retrieving trusted IPs: %w", err)
	}

	return record, nil
}

// ListPrivileges implements dmc.SecurityClient.ListPrivileges.
func (c *V3Client) ListPrivileges(ctx context.Context) (dmc.Records, error) {
	records, err := c.getRecords(ctx, "/public/core/v3/privileges", "")
	if err != nil {
		return nil, fmt.Errorf("listing privileges: %w", err)
	}

	return records, nil
}

// ListRoles implements dmc.RolesClient.ListRoles.
func (c *V3Client) ListRoles(ctx context.Context) (dmc.Records, error) {
	records, err := c.getRecords(ctx, rolesPath, "")
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	return records, nil
}

// GetRoleDetails implements dmc.RolesClient.GetRoleDetails.
func (c *V3Client) GetRoleDetails(ctx context.Context, name string) (dmc.Records, error) {
	records, err := c.getRecords(ctx, rolesPath, "",
		WithParam("q", `roleName=="`+name+`"`),
		WithParam("expand", "privileges"),
	)
	if err != nil {
		return nil, fmt.Errorf("getting role details %s: %w", name, err)
	}

	return records, nil
}

// CreateRole implements dmc.RolesClient.CreateRole.
func (c *V3Client) CreateRole(ctx context.Context, name, description string, privileges []string) (dmc.Record, error) {
	if privileges == nil {
		privileges = []string{}
	}

	body := &createRoleRequest{Name: name, Description: description, Privileges: privileges}

	record, err := c.sendRecord(ctx, http.MethodPost, rolesPath, WithBody(body))
	if err != nil {
		return nil, fmt.Errorf("creating role %s: %w", name, err)
	}

	return record, nil
}

// AddRolePrivileges implements dmc.RolesClient.AddRolePrivileges.
func (c *V3Client) AddRolePrivileges(ctx context.Context, id string, privileges []string) (bool, error) {
	ok, err := c.mutate(ctx, http.MethodPut, rolesPath+"/"+url.PathEscape(id)+"/addPrivileges", &privilegesRequest{Privileges: privileges})
	if err != nil {
		return false, fmt.Errorf("adding privileges to role %s: %w", id, err)
	}

	return ok, nil
}

// AddRolePrivilegesByName implements dmc.RolesClient.AddRolePrivilegesByName.
func (c *V3Client) AddRolePrivilegesByName(ctx context.Context, name string, privileges []string) (bool, error) {
	ok, err := c.mutate(ctx, http.MethodPut, rolesPath+"/name/"+url.PathEscape(name)+"/addPrivileges", &privilegesRequest{Privileges: privileges})
	if err != nil {
		return false, fmt.Errorf("adding privileges to role %s: %w", name, err)
	}

	return ok, nil
}

// RemoveRolePrivileges implements dmc.RolesClient.RemoveRolePrivileges.
func (c *V3Client) RemoveRolePrivileges(ctx context.Context, id string, privileges []string) (bool, error) {
	ok, err := c.mutate(ctx, http.MethodPut, rolesPath+"/"+url.PathEscape(id)+"/removePrivileges", &privilegesRequest{Privileges: privileges})
	if err != nil {
		return false, fmt.Errorf("removing privileges from role %s: %w", id, err)
	}

	return ok, nil
}

// RemoveRolePrivilegesByName implements dmc.RolesClient.RemoveRolePrivilegesByName.
func (c *V3Client) RemoveRolePrivilegesByName(ctx context.Context, name string, privileges []string) (bool, error) {
	ok, err := c.mutate(ctx, http.MethodPut, rolesPath+"/name/"+url.PathEscape(name)+"/removePrivileges", &privilegesRequest{Privileges: privileges})
	if err != nil {
		return false, fmt.Errorf("removing privileges from role %s: %w", name, err)
	}

	return ok, nil
}

// DeleteRole implements dmc.RolesClient.DeleteRole.
func (c *V3Client) DeleteRole(ctx context.Context, id string) (bool, error) {
	ok, err := c.mutate(ctx, http.MethodDelete, rolesPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return false, fmt.Errorf("deleting role %s: %w", id, err)
	}

	return ok, nil
}

// ListUsers implements dmc.UsersClient.ListUsers. A limit of zero or less
// means 100 and a negative skip means 0.
func (c *V3Client) ListUsers(ctx context.Context, limit, skip int) (dmc.Records, error) {
	records, err := c.getRecords(ctx, usersPath, "", pageParams(limit, skip, constants.DefaultUserPageSize)...)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return records, nil
}

// GetUserByID implements dmc.UsersClient.GetUserByID.
func (c *V3Client) GetUserByID(ctx context.Context, id string) (dmc.Record, error) {
	return c.lookup(ctx, usersPath, "userId", "user", "id", id)
}

// GetUserByName implements dmc.UsersClient.GetUserByName.
func (c *V3Client) GetUserByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.lookup(ctx, usersPath, "userName", "user", "name", name)
}

// ListUserGroups implements dmc.UserGroupsClient.ListUserGroups. A limit of
// zero or less means 100 and a negative skip means 0.
func (c *V3Client) ListUserGroups(ctx context.Context, limit, skip int) (dmc.Records, error) {
	records, err := c.getRecords(ctx, userGroupsPath, "", pageParams(limit, skip, constants.DefaultUserPageSize)...)
	if err != nil {
		return nil, fmt.Errorf("listing user groups: %w", err)
	}

	return records, nil
}

// GetUserGroupByID implements dmc.UserGroupsClient.GetUserGroupByID.
func (c *V3Client) GetUserGroupByID(ctx context.Context, id string) (dmc.Record, error) {
	return c.lookup(ctx, userGroupsPath, "userGroupId", "user group", "id", id)
}

// GetUserGroupByName implements dmc.UserGroupsClient.GetUserGroupByName.
func (c *V3Client) GetUserGroupByName(ctx context.Context, name string) (dmc.Record, error) {
	return c.lookup(ctx, userGroupsPath, "userGroupName", "user group", "name", name)
}

// ListSAMLRoleMappings implements dmc.SAMLClient.ListSAMLRoleMappings. A
// limit of zero or less means 200 and a negative skip means 0.
func (c *V3Client) ListSAMLRoleMappings(ctx context.Context, limit, skip int) (dmc.Records, error) {
	return c.listSAML(ctx, "SAMLConfig/roleMappings", "role", limit, skip)
}

// ListSAMLGroupMappings implements dmc.SAMLClient.ListSAMLGroupMappings. A
// limit of zero or less means 200 and a negative skip means 0.
func (c *V3Client) ListSAMLGroupMappings(ctx context.Context, limit, skip int) (dmc.Records, error) {
	return c.listSAML(ctx, "SAMLConfig/groupMappings", "group", limit, skip)
}

// AddSAMLGroupMappings implements dmc.SAMLClient.AddSAMLGroupMappings.
func (c *V3Client) AddSAMLGroupMappings(ctx context.Context, mappings []dmc.SAMLGroupMapping, reuseGroup bool) (bool, error) {
	path, err := c.orgPath("addSamlGroupMappings")
	if err != nil {
		return false, fmt.Errorf("adding SAML group mappings: %w", err)
	}

	ok, err := c.mutate(ctx, http.MethodPut, path, &groupMappingsRequest{GroupMappings: nonNilMappings(mappings), ReuseGroup: &reuseGroup})
	if err != nil {
		return false, fmt.Errorf("adding SAML group mappings: %w", err)
	}

	return ok, nil
}

// RemoveSAMLGroupMappings implements dmc.SAMLClient.RemoveSAMLGroupMappings.
func (c *V3Client) RemoveSAMLGroupMappings(ctx context.Context, mappings []dmc.SAMLGroupMapping) (bool, error) {
	path, err := c.orgPath("removeSamlGroupMappings")
	if err != nil {
		return false, fmt.Errorf("removing SAML group mappings: %w", err)
	}

	ok, err := c.mutate(ctx, http.MethodPut, path, &groupMappingsRequest{GroupMappings: nonNilMappings(mappings)})
	if err != nil {
		return false, fmt.Errorf("removing SAML group mappings: %w", err)
	}

	return ok, nil
}

// ListSchedules implements dmc.SchedulesClient.ListSchedules.
func (c *V3Client) ListSchedules(ctx context.Context) (dmc.Records, error) {
	records, err := c.getRecords(ctx, "/public/core/v3/schedule", "schedules")
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}

	return records, nil
}

// lookup runs a q filter limited to one result and returns the match.
func (c *V3Client) lookup(ctx context.Context, path, field, resource, key, value string) (dmc.Record, error) {
	records, err := c.getRecords(ctx, path, "",
		WithParam("q", field+"=="+value),
		WithParam("limit", "1"),
		WithParam("skip", "0"),
	)
	if err != nil {
		return nil, fmt.Errorf("getting %s by %s %s: %w", resource, key, value, err)
	}

	return c.findOne(records, resource, key, value)
}

func (c *V3Client) listSAML(ctx context.Context, suffix, kind string, limit, skip int) (dmc.Records, error) {
	path, err := c.orgPath(suffix)
	if err != nil {
		return nil, fmt.Errorf("listing SAML %s mappings: %w", kind, err)
	}

	records, err := c.getRecords(ctx, path, "", pageParams(limit, skip, constants.DefaultSAMLPageSize)...)
	if err != nil {
		return nil, fmt.Errorf("listing SAML %s mappings: %w", kind, err)
	}

	return records, nil
}

func pageParams(limit, skip, defaultLimit int) []RequestOption {
	if limit <= 0 {
		limit = defaultLimit
	}

	if skip < 0 {
		skip = constants.DefaultSkip
	}

	return []RequestOption{
		WithParam("limit", strconv.Itoa(limit)),
		WithParam("skip", strconv.Itoa(skip)),
	}
}

func nonNilMappings(mappings []dmc.SAMLGroupMapping) []dmc.SAMLGroupMapping {
	if mappings == nil {
		return []dmc.SAMLGroupMapping{}
	}

	return mappings
}
