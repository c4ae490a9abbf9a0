package auth

import (
	"context"

	"github.com/iics-tools/dmc/pkg/dmc"
)

// LoginFunc performs one login and returns the resulting session.
type LoginFunc func(ctx context.Context) (dmc.Session, error)

// SessionManager decides which session an authenticated call is sent with.
type SessionManager interface {
	Session(ctx context.Context) (dmc.Session, error)
}

// AlwaysRefresh logs in again for every call, so a request never carries a
// stale token.
type AlwaysRefresh struct {
	login LoginFunc
}

// NewAlwaysRefresh creates an AlwaysRefresh session manager.
func NewAlwaysRefresh(login LoginFunc) *AlwaysRefresh {
	return &AlwaysRefresh{login: login}
}

// Session performs a fresh login.
func (m *AlwaysRefresh) Session(ctx context.Context) (dmc.Session, error) {
	return m.login(ctx)
}
