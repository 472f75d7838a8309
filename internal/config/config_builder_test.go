package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that non-zero fields from earlier
// configs win over later ones (mergo keeps the first non-zero value).
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenIssuer: "first"}},
		&StructuredConfig{
			Auth:    Auth{TokenIssuer: "second", TokenDuration: time.Hour},
			Storage: Storage{DB: DB{DSN: "postgres://db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
}

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// config file path was provided by earlier sources.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	before := len(b.configs)

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, before)
}

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier source is loaded and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"token_issuer":   "from-json",
			"token_duration": "45m",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Auth.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
}

// TestWithJSON_BadFile verifies that an unreadable config file surfaces as a
// build error.
func TestWithJSON_BadFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}
