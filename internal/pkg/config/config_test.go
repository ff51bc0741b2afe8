package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContext_Defaults(t *testing.T) {
	cfg, err := LoadContext(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Development())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 4, cfg.Export.Workers)
	assert.Equal(t, "lead_console", cfg.Mongo.Database)
}

func TestLoadContext_Overrides(t *testing.T) {
	cfg, err := LoadContext(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":       "s3cret",
		"ENV":              "production",
		"BACKEND_URL":      "https://api.example.com/api",
		"NOTIFICATION_TTL": "8s",
		"REDIS_DB":         "2",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.Development())
	assert.Equal(t, "https://api.example.com/api", cfg.Backend.URL)
	assert.Equal(t, 8*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadContext_RequiresSecret(t *testing.T) {
	_, err := LoadContext(context.Background(), envconfig.MapLookuper(map[string]string{}))
	assert.Error(t, err)
}
