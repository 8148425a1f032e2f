package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.Downstream.Timeout)
	assert.Equal(t, []string{"RESTRICTED", "CHILD"}, cfg.Engine.ReviewRestrictionTypes)
	assert.Contains(t, cfg.Engine.PriorityAppointmentCodes, "LEGAL")
	assert.Equal(t, "closed", cfg.Engine.SessionTypeFallback)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("VISITGATE_ADDR", ":9090")
	t.Setenv("VISITGATE_SUPPORTED_ALERT_CODES", "UPIU,URS")
	t.Setenv("VISITGATE_DOWNSTREAM_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"UPIU", "URS"}, cfg.Engine.SupportedAlertCodes)
	assert.Equal(t, 3*time.Second, cfg.Downstream.Timeout)
}

func TestFromEnvRejectsUnknownFallback(t *testing.T) {
	t.Setenv("VISITGATE_SESSION_TYPE_FALLBACK", "open")

	_, err := FromEnv()
	assert.Error(t, err)
}
