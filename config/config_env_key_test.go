package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"host": "localhost",
			},
		},
		"secretKey": map[string]any{
			"access": "secret",
		},
		"auth": map[string]any{
			"accessTokenTtl": "1h",
			"bcryptCost":     10,
		},
		"story": map[string]any{
			"sweepInterval": "10m",
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{
			name:     "aligns with existing camelCase leaf",
			rawKey:   "POSTGRES_SSLMODE",
			expected: "postgres.sslMode",
		},
		{
			name:     "aligns nested path",
			rawKey:   "POSTGRES_MASTER_HOST",
			expected: "postgres.master.host",
		},
		{
			name:     "aligns camelCase parent",
			rawKey:   "SECRETKEY_ACCESS",
			expected: "secretKey.access",
		},
		{
			name:     "aligns camelCase leaf under parent",
			rawKey:   "AUTH_ACCESSTOKENTTL",
			expected: "auth.accessTokenTtl",
		},
		{
			name:     "aligns sweep interval",
			rawKey:   "STORY_SWEEPINTERVAL",
			expected: "story.sweepInterval",
		},
		{
			name:     "falls back to lowercase for unknown keys",
			rawKey:   "UNKNOWN_KEY",
			expected: "unknown.key",
		},
		{
			name:     "unknown child under known parent",
			rawKey:   "POSTGRES_MAXIDLECONNS",
			expected: "postgres.maxidleconns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "accesstokenttl", normalizeToken("accessTokenTtl"))
	assert.Equal(t, "maxrequestbodysize", normalizeToken("max_request_body_size"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, defaultAccessTokenTTL, cfg.AccessTokenTTL())
	assert.Equal(t, defaultStoryTTL, cfg.StoryTTL())
	assert.Equal(t, defaultSweepInterval, cfg.SweepInterval())
}

func TestApplyBodySizeDefaults(t *testing.T) {
	cfg := &Config{}
	applyBodySizeDefaults(cfg)

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	// Must clear the 50MB video ceiling with room for multipart framing.
	assert.Equal(t, "52MB", cfg.HTTP.MaxUploadBodySize)
}

func TestApplyBodySizeDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.HTTP.MaxUploadBodySize = "80MB"
	applyBodySizeDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "80MB", cfg.HTTP.MaxUploadBodySize)
}
