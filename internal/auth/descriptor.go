package auth

import (
	"fmt"
	"time"

	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// Descriptor holds everything that differs between API generations in the
// login and session handling.
type Descriptor struct {
	Version       dmc.APIVersion
	LoginPath     string
	SessionHeader string
	// ServerURL, when set, is used as the session base URL and the
	// serverUrl field of the login response is ignored.
	ServerURL      string
	ServerURLField string
	TokenField     string
	OrgIDField     string
	// OrgNameField may be empty when the login response has no org name.
	OrgNameField string
	LoginBody    func(Credentials) interface{}
}

// V1Descriptor describes the v1 API. It logs in like v2 but always talks to
// serverURL.
func V1Descriptor(serverURL string) Descriptor {
	if serverURL == "" {
		serverURL = constants.DefaultV1ServerURL
	}

	return Descriptor{
		Version:        dmc.V1,
		LoginPath:      constants.V2LoginPath,
		SessionHeader:  constants.V1SessionHeader,
		ServerURL:      serverURL,
		ServerURLField: constants.FieldServerURL,
		TokenField:     constants.FieldSessionID,
		OrgIDField:     constants.FieldOrgUUID,
		OrgNameField:   constants.FieldOrgID,
		LoginBody:      typedLoginBody,
	}
}

// V2Descriptor describes the v2 API.
func V2Descriptor() Descriptor {
	return Descriptor{
		Version:        dmc.V2,
		LoginPath:      constants.V2LoginPath,
		SessionHeader:  constants.V2SessionHeader,
		ServerURLField: constants.FieldServerURL,
		TokenField:     constants.FieldSessionID,
		OrgIDField:     constants.FieldOrgUUID,
		OrgNameField:   constants.FieldOrgID,
		LoginBody:      typedLoginBody,
	}
}

// V3Descriptor describes the v3 API.
func V3Descriptor() Descriptor {
	return Descriptor{
		Version:        dmc.V3,
		LoginPath:      constants.V3LoginPath,
		SessionHeader:  constants.V3SessionHeader,
		ServerURLField: constants.FieldServerURL,
		TokenField:     constants.FieldSessionID,
		OrgIDField:     constants.FieldOrgID,
		LoginBody:      plainLoginBody,
	}
}

// DescriptorFor returns the descriptor of version. v1ServerURL is only used
// for v1.
func DescriptorFor(version dmc.APIVersion, v1ServerURL string) (Descriptor, error) {
	switch version {
	case dmc.V1:
		return V1Descriptor(v1ServerURL), nil
	case dmc.V2:
		return V2Descriptor(), nil
	case dmc.V3:
		return V3Descriptor(), nil
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", constants.ErrUnsupportedVersion, version)
	}
}

// NewSession maps a decoded login response to a Session.
func (d Descriptor) NewSession(payload dmc.Record, issuedAt time.Time) (dmc.Session, error) {
	token := payload.String(d.TokenField)
	if token == "" {
		return dmc.Session{}, fmt.Errorf("%w: field %q", constants.ErrMissingSessionToken, d.TokenField)
	}

	baseURL := d.ServerURL
	if baseURL == "" {
		baseURL = payload.String(d.ServerURLField)
	}

	if baseURL == "" {
		return dmc.Session{}, fmt.Errorf("%w: field %q", constants.ErrMissingServerURL, d.ServerURLField)
	}

	session := dmc.Session{
		Version:  d.Version,
		BaseURL:  baseURL,
		Token:    token,
		OrgID:    payload.String(d.OrgIDField),
		IssuedAt: issuedAt,
	}

	if d.OrgNameField != "" {
		session.OrgName = payload.String(d.OrgNameField)
	}

	return session, nil
}

// SessionHeaders returns the headers that authenticate a request.
func (d Descriptor) SessionHeaders(session dmc.Session) map[string]string {
	return map[string]string{d.SessionHeader: session.Token}
}

func typedLoginBody(credentials Credentials) interface{} {
	return map[string]string{
		"@type":    constants.LoginType,
		"username": credentials.Username,
		"password": credentials.Password,
	}
}

func plainLoginBody(credentials Credentials) interface{} {
	return map[string]string{
		"username": credentials.Username,
		"password": credentials.Password,
	}
}
