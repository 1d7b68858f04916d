package monitor

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"reg-sentinel/errors"
)

var validate = validator.New()

// Config holds the policy parameters of the monitor. It is built once by
// ParseConfig and never mutated afterwards; handlers share it by value.
type Config struct {
	NotificationRoom string `validate:"required"`
	AdminToken       string `validate:"required"`
	SuspendUsers     bool
	ForceJoinRoom    bool
	AdminUser        string
	ServerName       string
	Reason           string `validate:"required"`
	HomeserverURL    string `validate:"required,url"`
	WatchWords       []string
}

// ParseConfig validates the raw key/value map handed over by the host and
// applies defaults for every optional field. Missing required fields are
// fatal: the host must not register any callback on such a failure.
func ParseConfig(raw map[string]any) (Config, error) {
	if stringValue(raw, "notification_room") == "" {
		return Config{}, errors.ErrMissingNotificationRoom
	}
	if stringValue(raw, "admin_token") == "" {
		return Config{}, errors.ErrMissingAdminToken
	}

	cfg := Config{
		NotificationRoom: stringValue(raw, "notification_room"),
		AdminToken:       stringValue(raw, "admin_token"),
		SuspendUsers:     boolOr(raw, "suspend_users", true),
		ForceJoinRoom:    boolOr(raw, "force_join_room", true),
		AdminUser:        stringValue(raw, "admin_user"),
		ServerName:       stringValue(raw, "server_name"),
		Reason:           stringOr(raw, "reason", "Account suspended pending review"),
		HomeserverURL:    stringOr(raw, "homeserver_url", "http://localhost:8008"),
		WatchWords:       stringSlice(raw, "watch_words"),
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

func stringValue(raw map[string]any, key string) string {
	v, _ := raw[key].(string)
	return v
}

func stringOr(raw map[string]any, key, fallback string) string {
	if v, ok := raw[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func boolOr(raw map[string]any, key string, fallback bool) bool {
	if v, ok := raw[key].(bool); ok {
		return v
	}
	return fallback
}

// stringSlice accepts both []string and the []any a YAML loader produces.
func stringSlice(raw map[string]any, key string) []string {
	switch v := raw[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
