package monitor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reg-sentinel/errors"
)

func TestParseConfig(t *testing.T) {
	t.Run("should fail without notification_room", func(t *testing.T) {
		_, err := ParseConfig(map[string]any{
			"admin_token": "secret",
		})
		require.ErrorIs(t, err, errors.ErrMissingNotificationRoom)
	})

	t.Run("should fail without admin_token", func(t *testing.T) {
		_, err := ParseConfig(map[string]any{
			"notification_room": "!mods:example.org",
		})
		require.ErrorIs(t, err, errors.ErrMissingAdminToken)
	})

	t.Run("should apply defaults for every optional field", func(t *testing.T) {
		req := require.New(t)
		cfg, err := ParseConfig(map[string]any{
			"notification_room": "!mods:example.org",
			"admin_token":       "secret",
		})

		req.NoError(err)
		req.True(cfg.SuspendUsers)
		req.True(cfg.ForceJoinRoom)
		req.Empty(cfg.AdminUser)
		req.Empty(cfg.ServerName)
		req.Equal("Account suspended pending review", cfg.Reason)
		req.Equal("http://localhost:8008", cfg.HomeserverURL)
		req.Empty(cfg.WatchWords)
	})

	t.Run("should honor explicit overrides", func(t *testing.T) {
		req := require.New(t)
		cfg, err := ParseConfig(map[string]any{
			"notification_room": "!mods:example.org",
			"admin_token":       "secret",
			"suspend_users":     false,
			"force_join_room":   false,
			"admin_user":        "@mod:example.org",
			"server_name":       "corp.example.org",
			"reason":            "ToS review",
			"homeserver_url":    "https://synapse.internal:8448",
		})

		req.NoError(err)
		req.False(cfg.SuspendUsers)
		req.False(cfg.ForceJoinRoom)
		req.Equal("@mod:example.org", cfg.AdminUser)
		req.Equal("corp.example.org", cfg.ServerName)
		req.Equal("ToS review", cfg.Reason)
		req.Equal("https://synapse.internal:8448", cfg.HomeserverURL)
	})

	t.Run("should reject a malformed homeserver_url", func(t *testing.T) {
		_, err := ParseConfig(map[string]any{
			"notification_room": "!mods:example.org",
			"admin_token":       "secret",
			"homeserver_url":    "not a url",
		})
		require.ErrorIs(t, err, errors.ErrInvalidConfig)
	})

	t.Run("should accept watch_words from a YAML-shaped list", func(t *testing.T) {
		req := require.New(t)
		cfg, err := ParseConfig(map[string]any{
			"notification_room": "!mods:example.org",
			"admin_token":       "secret",
			"watch_words":       []any{"admin", "support"},
		})

		req.NoError(err)
		req.Equal([]string{"admin", "support"}, cfg.WatchWords)
	})
}
