package constants

import "errors"

// Client construction errors.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrUnsupportedVersion  = errors.New("unsupported API version")
	ErrMissingSessionToken = errors.New("login response has no session token")
	ErrMissingServerURL    = errors.New("login response has no server URL")
	ErrNoSession           = errors.New("session manager returned no usable session")
)

// Operation errors.
var (
	ErrNoOrganizationID = errors.New("session has no organization id")
)

// CLI errors.
var (
	ErrUsernameRequired     = errors.New("username is required, use --username or DMC_USERNAME")
	ErrPasswordRequired     = errors.New("password is required, use --password or DMC_PASSWORD")
	ErrDocumentTypeRequired = errors.New("--type flag is required")
	ErrNameOrIDRequired     = errors.New("either an id argument or --name is required")
	ErrInvalidOutputFormat  = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidMapping       = errors.New("invalid mapping, expected ROLE=GROUP[,GROUP...]")
)
