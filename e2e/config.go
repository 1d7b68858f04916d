package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HomeserverURL string `envconfig:"E2E_HOMESERVER_URL"`
	AdminToken    string `envconfig:"E2E_ADMIN_TOKEN"`
	// E2E_ROOM_ID is the moderation room used for the forced join
	RoomID string `envconfig:"E2E_ROOM_ID"`
	// E2E_TEST_USER must be a throwaway account, it really gets suspended
	TestUser string `envconfig:"E2E_TEST_USER"`
	// E2E_SUSPEND opts into the destructive half of the scenario
	Suspend bool `envconfig:"E2E_SUSPEND" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
