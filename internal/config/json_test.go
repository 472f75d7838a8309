package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"token_sign_key": "secret",
			"token_issuer":   "noteshare",
			"token_duration": "2h",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://localhost/notes"},
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:8080",
			"request_timeout": "30s",
		},
		"client": map[string]any{
			"server_url": "http://localhost:8080",
			"cache_path": "/tmp/cache.db",
		},
		"notifier": map[string]any{"buffer_size": 64},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "noteshare", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerURL)
	assert.Equal(t, "/tmp/cache.db", cfg.Client.CachePath)
	assert.Equal(t, 64, cfg.Notifier.BufferSize)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"90s"`, 90 * time.Second, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"garbage", `"soon"`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tc.input))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, time.Duration(d))
		})
	}
}
