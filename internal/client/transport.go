package client

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/iics-tools/dmc/internal/auth"
	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/internal/http"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// Transport is the session and dispatch layer shared by the v1, v2 and v3
// clients. Everything version specific comes from its auth.Descriptor.
//
// A Transport is not safe for concurrent use: every call overwrites the
// stored session.
type Transport struct {
	httpClient    *http.Client
	authenticator *auth.Authenticator
	descriptor    auth.Descriptor
	sessions      auth.SessionManager
	session       dmc.Session
	autoRetry     bool
	logger        dmc.Logger
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithSessionManager replaces the default AlwaysRefresh policy. The factory
// receives the transport's login function.
func WithSessionManager(factory func(login auth.LoginFunc) auth.SessionManager) TransportOption {
	return func(t *Transport) {
		t.sessions = factory(t.Login)
	}
}

// NewTransport validates the credentials in config, builds the pooled HTTP
// client and logs in. The transport is returned only if the login succeeded.
func NewTransport(ctx context.Context, config *dmc.Config, descriptor auth.Descriptor, opts ...TransportOption) (*Transport, error) {
	if config == nil {
		return nil, constants.ErrConfigRequired
	}

	credentials := auth.Credentials{Username: config.Username, Password: config.Password}

	err := credentials.Validate()
	if err != nil {
		return nil, err
	}

	loginURL := config.LoginURL
	if loginURL == "" {
		loginURL = constants.DefaultLoginURL
	}

	httpClient := http.NewClient(loginURL, createHTTPClientOptions(config)...)

	transport := &Transport{
		httpClient:    httpClient,
		authenticator: auth.NewAuthenticator(httpClient, loginURL, descriptor, credentials, config.Logger),
		descriptor:    descriptor,
		autoRetry:     config.AutoRetry,
		logger:        config.Logger,
	}
	transport.sessions = auth.NewAlwaysRefresh(transport.Login)

	for _, opt := range opts {
		opt(transport)
	}

	_, err = transport.Login(ctx)
	if err != nil {
		return nil, err
	}

	return transport, nil
}

// createHTTPClientOptions creates HTTP client options based on config.
func createHTTPClientOptions(config *dmc.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	httpOpts = append(httpOpts,
		http.WithDebug(config.Debug),
		http.WithUserAgent(config.UserAgent),
		http.WithTimeout(config.Timeout),
		http.WithHTTPClient(config.HTTPClient),
	)

	return httpOpts
}

// Login performs a login and replaces the stored session. A failed login
// leaves the stored session untouched.
func (t *Transport) Login(ctx context.Context) (dmc.Session, error) {
	session, err := t.authenticator.Login(ctx)
	if err != nil {
		return dmc.Session{}, err
	}

	t.session = session

	return session, nil
}

// Session returns the session of the most recent successful login.
func (t *Transport) Session() dmc.Session {
	return t.session
}

// AutoRetry reports the flag the transport was built with. It is not consulted.
func (t *Transport) AutoRetry() bool {
	return t.autoRetry
}

// Version returns the API generation of the transport.
func (t *Transport) Version() dmc.APIVersion {
	return t.descriptor.Version
}

type requestOptions struct {
	query   url.Values
	body    interface{}
	timeout time.Duration
}

// RequestOption configures a single dispatched request.
type RequestOption func(*requestOptions)

// WithQuery merges values into the query string.
func WithQuery(values url.Values) RequestOption {
	return func(o *requestOptions) {
		for key, vals := range values {
			for _, value := range vals {
				o.query.Add(key, value)
			}
		}
	}
}

// WithParam adds one query parameter.
func WithParam(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.query.Add(key, value)
	}
}

// WithBody sets the JSON request body.
func WithBody(body interface{}) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.timeout = timeout
	}
}

// Dispatch obtains a session, then sends one authenticated request to the
// session's base URL. Any non-2xx response is returned with a *dmc.APIError.
// A session without a token or base URL fails with constants.ErrNoSession.
// The request carries a JSON body only when WithBody is given; otherwise no
// body and no Content-Type are sent.
func (t *Transport) Dispatch(ctx context.Context, method, path string, opts ...RequestOption) (*http.Response, error) {
	options := &requestOptions{query: url.Values{}}
	for _, opt := range opts {
		opt(options)
	}

	session, err := t.sessions.Session(ctx)
	if err != nil {
		return nil, err
	}

	if !session.Valid() {
		return nil, constants.ErrNoSession
	}

	start := time.Now()

	resp, err := t.httpClient.Do(ctx, &http.Request{
		Method:  method,
		BaseURL: session.BaseURL,
		Path:    path,
		Query:   options.query,
		Body:    options.body,
		Headers: t.descriptor.SessionHeaders(session),
		Timeout: options.timeout,
	})

	fields := map[string]interface{}{
		"version":  string(t.descriptor.Version),
		"method":   method,
		"path":     path,
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status"] = resp.StatusCode
	}

	if err != nil {
		t.log(func(logger dmc.Logger) { logger.Warn("Request failed", fields) })

		return resp, err
	}

	t.log(func(logger dmc.Logger) { logger.Debug("Request completed", fields) })

	return resp, nil
}

// orgPath formats a v3 path under /public/core/v3/Orgs/{orgId}.
func (t *Transport) orgPath(suffix string) (string, error) {
	orgID := t.session.OrgID
	if orgID == "" {
		return "", constants.ErrNoOrganizationID
	}

	return "/public/core/v3/Orgs/" + url.PathEscape(orgID) + "/" + strings.TrimPrefix(suffix, "/"), nil
}

func (t *Transport) log(fn func(dmc.Logger)) {
	if t.logger != nil {
		fn(t.logger)
	}
}
