// Package dmcclient provides the main entry point for creating IICS API clients
package dmcclient

import (
	"context"
	"strings"

	"github.com/iics-tools/dmc/internal/client"
	"github.com/iics-tools/dmc/internal/constants"
	"github.com/iics-tools/dmc/pkg/dmc"
)

// New creates the unified client. It logs in once per API generation and
// fails if any of the three logins fails.
func New(ctx context.Context, config *dmc.Config) (dmc.Client, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	facade, err := client.New(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return facade, nil
}

// NewV1 creates a v1 client.
func NewV1(ctx context.Context, config *dmc.Config) (dmc.V1Client, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	v1, err := client.NewV1Client(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return v1, nil
}

// NewV2 creates a v2 client.
func NewV2(ctx context.Context, config *dmc.Config) (dmc.V2Client, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	v2, err := client.NewV2Client(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return v2, nil
}

// NewV3 creates a v3 client.
func NewV3(ctx context.Context, config *dmc.Config) (dmc.V3Client, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	v3, err := client.NewV3Client(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return v3, nil
}

// NewWithPassword creates the unified client against the default login host.
func NewWithPassword(ctx context.Context, username, password string) (dmc.Client, error) {
	return New(ctx, &dmc.Config{
		Username: username,
		Password: password,
	})
}

// normalize copies config and cleans up its URLs: a trailing slash is
// trimmed and "https://" is added when no scheme is present.
func normalize(config *dmc.Config) (*dmc.Config, error) {
	if config == nil {
		return nil, constants.ErrConfigRequired
	}

	normalized := *config
	normalized.LoginURL = normalizeURL(config.LoginURL)
	normalized.V1ServerURL = normalizeURL(config.V1ServerURL)

	return &normalized, nil
}

func normalizeURL(raw string) string {
	if raw == "" {
		return ""
	}

	normalized := strings.TrimSuffix(raw, "/")
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}
