package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	dmchttp "github.com/iics-tools/dmc/internal/http"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// Credentials are the username and password a client logs in with.
type Credentials struct {
	Username string
	Password string
}

// Validate reports a missing username or password as an AuthenticationError.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return &dmc.AuthenticationError{Message: "No username provided"}
	}

	if c.Password == "" {
		return &dmc.AuthenticationError{Message: "No password provided"}
	}

	return nil
}

// Authenticator performs the unauthenticated login call of one API generation.
type Authenticator struct {
	httpClient  *dmchttp.Client
	loginURL    string
	descriptor  Descriptor
	credentials Credentials
	logger      dmc.Logger
	now         func() time.Time
}

// NewAuthenticator creates an Authenticator that posts to loginURL plus the
// descriptor's login path.
func NewAuthenticator(httpClient *dmchttp.Client, loginURL string, descriptor Descriptor, credentials Credentials, logger dmc.Logger) *Authenticator {
	return &Authenticator{
		httpClient:  httpClient,
		loginURL:    loginURL,
		descriptor:  descriptor,
		credentials: credentials,
		logger:      logger,
		now:         time.Now,
	}
}

// Login posts the credentials and maps the response to a Session. Any
// non-2xx response, transport failure or malformed body is an *dmc.APIError.
func (a *Authenticator) Login(ctx context.Context) (dmc.Session, error) {
	start := a.now()

	resp, err := a.httpClient.Do(ctx, &dmchttp.Request{
		Method:  http.MethodPost,
		BaseURL: a.loginURL,
		Path:    a.descriptor.LoginPath,
		Body:    a.descriptor.LoginBody(a.credentials),
	})
	if err != nil {
		a.logWarn("Login failed", map[string]interface{}{
			"version": string(a.descriptor.Version),
			"error":   err.Error(),
		})

		return dmc.Session{}, fmt.Errorf("%s login: %w", a.descriptor.Version, err)
	}

	var payload dmc.Record

	err = resp.Decode(&payload)
	if err != nil {
		return dmc.Session{}, a.malformed(resp, err)
	}

	session, err := a.descriptor.NewSession(payload, start)
	if err != nil {
		return dmc.Session{}, a.malformed(resp, err)
	}

	if a.logger != nil {
		a.logger.Debug("Login succeeded", map[string]interface{}{
			"version":  string(session.Version),
			"base_url": session.BaseURL,
			"org_id":   session.OrgID,
			"duration": a.now().Sub(start).String(),
		})
	}

	return session, nil
}

func (a *Authenticator) malformed(resp *dmchttp.Response, cause error) error {
	loginURL := dmchttp.JoinURL(a.loginURL, a.descriptor.LoginPath)

	return &dmc.APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Method:     http.MethodPost,
		URL:        loginURL,
		Body:       resp.Body,
		Message:    fmt.Sprintf("%s login: invalid response from %s: %v", a.descriptor.Version, loginURL, cause),
		Cause:      cause,
	}
}

func (a *Authenticator) logWarn(msg string, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Warn(msg, fields)
	}
}
