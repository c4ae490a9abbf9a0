//nolint:testpackage // Need access to internal helpers
package dmcclient

import (
	"testing"

	"github.com/iics-tools/dmc/pkg/dmc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected string
	}{
		{"", ""},
		{"dm1-us.informaticacloud.com", "https://dm1-us.informaticacloud.com"},
		{"https://dm1-us.informaticacloud.com/", "https://dm1-us.informaticacloud.com"},
		{"http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeURL(tt.raw), tt.raw)
	}
}

func TestNormalizeCopiesConfig(t *testing.T) {
	t.Parallel()

	config := &dmc.Config{Username: "user", LoginURL: "dm1-us.informaticacloud.com/", V1ServerURL: "v1.example.com"}

	normalized, err := normalize(config)
	require.NoError(t, err)
	assert.Equal(t, "https://dm1-us.informaticacloud.com", normalized.LoginURL)
	assert.Equal(t, "https://v1.example.com", normalized.V1ServerURL)
	assert.Equal(t, "user", normalized.Username)
	assert.Equal(t, "dm1-us.informaticacloud.com/", config.LoginURL)
}
