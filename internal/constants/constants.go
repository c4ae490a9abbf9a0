package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for every request, logins included.
	DefaultHTTPTimeout = 30 * time.Second
)

// Service endpoints.
const (
	// DefaultLoginURL is the production login host.
	DefaultLoginURL = "https://dm1-us.informaticacloud.com"

	// DefaultV1ServerURL is the server the v1 API is always called on.
	DefaultV1ServerURL = "https://usw3.dm1-us.informaticacloud.com"

	// V2LoginPath is the login path shared by the v1 and v2 APIs.
	V2LoginPath = "/ma/api/v2/user/login"

	// V3LoginPath is the v3 login path.
	V3LoginPath = "/saas/public/core/v3/login"
)

// Session headers.
const (
	// V1SessionHeader carries the session token on v1 requests.
	V1SessionHeader = "IDS-SESSION-ID"

	// V2SessionHeader carries the session token on v2 requests.
	V2SessionHeader = "icSessionId"

	// V3SessionHeader carries the session token on v3 requests.
	V3SessionHeader = "INFA-SESSION-ID"
)

// Login response fields.
const (
	FieldServerURL = "serverUrl"
	FieldSessionID = "icSessionId"
	FieldOrgUUID   = "orgUuid"
	FieldOrgID     = "orgId"

	// LoginType is the "@type" discriminator of v1 and v2 login bodies.
	LoginType = "login"
)

// HTTP status codes.
const (
	// HTTPStatusNoContent is the only status that marks a mutation as applied.
	HTTPStatusNoContent = 204
)

// Pagination defaults.
const (
	// DefaultUserPageSize is the default limit for user and user group listings.
	DefaultUserPageSize = 100

	// DefaultSAMLPageSize is the default limit for SAML mapping listings.
	DefaultSAMLPageSize = 200

	// DefaultSkip is the default offset for listings.
	DefaultSkip = 0
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// StringTruncationLimit is how many characters of a secret are kept when masking.
	StringTruncationLimit = 4
)

// BooleanTrue is the query string form of true.
const BooleanTrue = "true"

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Default user agent.
const (
	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "dmc-go/1.0"
)
