package dmc

import (
	"context"
	"net/http"
	"time"
)

// DocumentsClient lists frs documents through the v1 API.
type DocumentsClient interface {
	GetDocuments(ctx context.Context, documentType string) (Records, error)
}

// OrganizationsClient reads organization details through the v2 API.
type OrganizationsClient interface {
	GetOrgDetails(ctx context.Context) (Record, error)
	GetOrgByID(ctx context.Context, id string) (Record, error)
	GetOrgByName(ctx context.Context, name string) (Record, error)
}

// RuntimeEnvironmentsClient reads runtime environments through the v2 API.
type RuntimeEnvironmentsClient interface {
	GetRuntimeEnvironments(ctx context.Context) (Records, error)
	GetRuntimeEnvironmentByID(ctx context.Context, id string) (Record, error)
	GetRuntimeEnvironmentByName(ctx context.Context, name string) (Record, error)
}

// AgentsClient reads secure agents through the v2 API.
type AgentsClient interface {
	ListSecureAgents(ctx context.Context) (Records, error)
	GetAgentByID(ctx context.Context, id string) (Record, error)
	GetAgentByName(ctx context.Context, name string) (Record, error)
	GetAgentDetails(ctx context.Context, id string, statusOnly bool) (Record, error)
}

// ServerClient reads server information through the v2 API.
type ServerClient interface {
	GetServerTime(ctx context.Context) (Record, error)
}

// ConnectionsClient reads and tests connections through the v2 API.
type ConnectionsClient interface {
	ListConnections(ctx context.Context) (Records, error)
	GetConnection(ctx context.Context, id string) (Record, error)
	GetConnectionByName(ctx context.Context, name string) (Record, error)
	TestConnection(ctx context.Context, id string) (Record, error)
}

// SecurityClient reads organization security settings through the v3 API.
type SecurityClient interface {
	RetrieveTrustedIPs(ctx context.Context) (Record, error)
	ListPrivileges(ctx context.Context) (Records, error)
}

// RolesClient manages roles through the v3 API. Mutations report true only
// when the server answered 204 No Content.
type RolesClient interface {
	ListRoles(ctx context.Context) (Records, error)
	GetRoleDetails(ctx context.Context, name string) (Records, error)
	CreateRole(ctx context.Context, name, description string, privileges []string) (Record, error)
	AddRolePrivileges(ctx context.Context, id string, privileges []string) (bool, error)
	AddRolePrivilegesByName(ctx context.Context, name string, privileges []string) (bool, error)
	RemoveRolePrivileges(ctx context.Context, id string, privileges []string) (bool, error)
	RemoveRolePrivilegesByName(ctx context.Context, name string, privileges []string) (bool, error)
	DeleteRole(ctx context.Context, id string) (bool, error)
}

// UsersClient reads users through the v3 API. Lookups return NotFoundError
// when nothing matches.
type UsersClient interface {
	ListUsers(ctx context.Context, limit, skip int) (Records, error)
	GetUserByID(ctx context.Context, id string) (Record, error)
	GetUserByName(ctx context.Context, name string) (Record, error)
}

// UserGroupsClient reads user groups through the v3 API.
type UserGroupsClient interface {
	ListUserGroups(ctx context.Context, limit, skip int) (Records, error)
	GetUserGroupByID(ctx context.Context, id string) (Record, error)
	GetUserGroupByName(ctx context.Context, name string) (Record, error)
}

// SAMLClient manages SAML role and group mappings through the v3 API.
type SAMLClient interface {
	ListSAMLRoleMappings(ctx context.Context, limit, skip int) (Records, error)
	ListSAMLGroupMappings(ctx context.Context, limit, skip int) (Records, error)
	AddSAMLGroupMappings(ctx context.Context, mappings []SAMLGroupMapping, reuseGroup bool) (bool, error)
	RemoveSAMLGroupMappings(ctx context.Context, mappings []SAMLGroupMapping) (bool, error)
}

// SchedulesClient reads schedules through the v3 API.
type SchedulesClient interface {
	ListSchedules(ctx context.Context) (Records, error)
}

// SessionHolder exposes the most recent login of a version client.
type SessionHolder interface {
	Session() Session
}

// V1Client is the v1 API client.
type V1Client interface {
	SessionHolder
	DocumentsClient
}

// V2Client is the v2 API client.
type V2Client interface {
	SessionHolder
	OrganizationsClient
	RuntimeEnvironmentsClient
	AgentsClient
	ServerClient
	ConnectionsClient

	// AutoRetry reports the flag given at construction. It is not consulted.
	AutoRetry() bool
}

// V3Client is the v3 API client.
type V3Client interface {
	SessionHolder
	SecurityClient
	RolesClient
	UsersClient
	UserGroupsClient
	SAMLClient
	SchedulesClient

	// AutoRetry reports the flag given at construction. It is not consulted.
	AutoRetry() bool
}

// Client is the unified facade over the three API generations. Each
// operation is routed to a fixed version: documents to v1, organizations,
// runtime environments, agents, server time and connections to v2, and
// everything else to v3.
type Client interface {
	DocumentsClient
	OrganizationsClient
	RuntimeEnvironmentsClient
	AgentsClient
	ServerClient
	ConnectionsClient
	SecurityClient
	RolesClient
	UsersClient
	UserGroupsClient
	SAMLClient
	SchedulesClient

	V1() V1Client
	V2() V2Client
	V3() V3Client
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dmc.Client or one of
// the version clients.
//
// # Sessions
//
// Construction logs in immediately and fails if the login fails. Every
// authenticated call then logs in again before sending the request, so a
// single operation costs two round trips.
//
// # Timeouts
//
// Each request is bounded by Timeout and by the context passed to the
// operation, whichever expires first.
type Config struct {
	// Required fields
	// Username: IICS account username.
	Username string
	// Password: IICS account password.
	Password string

	// Optional configurations
	// AutoRetry: stored and reported by AutoRetry(); no retries are made.
	AutoRetry bool
	// LoginURL: login host. Defaults to https://dm1-us.informaticacloud.com.
	LoginURL string
	// V1ServerURL: server URL used by the v1 client, which ignores the
	// serverUrl of the login response. Defaults to
	// https://usw3.dm1-us.informaticacloud.com.
	V1ServerURL string
	// Timeout: per-request timeout. Defaults to 30s.
	Timeout time.Duration
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP and session layers.
	Logger Logger
	// HTTPClient: optional base client whose transport is reused for the
	// connection pool.
	HTTPClient *http.Client
}
