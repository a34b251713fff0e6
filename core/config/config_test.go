package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "donations", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Donation.DataDir)
	assert.Empty(t, cfg.Donation.ReplacementFile)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "exports")
	t.Setenv("DONATION_DATA_DIR", "/srv/data")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "exports", cfg.Storage.Bucket)
	assert.Equal(t, "/srv/data", cfg.Donation.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}
