package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address())
	assert.Equal(t, "motofleet:notifications", cfg.Redis.Channel)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "0 8 * * *", cfg.Scheduler.ReminderCron)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Empty(t, cfg.SeedFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.test/abc")
	t.Setenv("SCHEDULER_JOB_TIMEOUT", "30s")
	t.Setenv("LOG_OUTPUT", "/tmp/motofleet.log")
	t.Setenv("SEED_FILE", "seed.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "https://hooks.slack.test/abc", cfg.Slack.WebhookURL)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.JobTimeout)
	assert.Equal(t, "/tmp/motofleet.log", cfg.Logger.Output)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
