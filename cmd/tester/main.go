package main

import (
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"reg-sentinel/admin"
)

// Exit codes for the tester application.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// Config defines the tester environment variables. TEST_USER must be a
// throwaway account: the calls below really join and suspend it.
type Config struct {
	HomeserverURL    string  `env:"HOMESERVER_URL,default=http://localhost:8008"`
	AdminToken       string  `env:"ADMIN_TOKEN,required=true"`
	NotificationRoom string  `env:"NOTIFICATION_ROOM,required=true"`
	TestUser         string  `env:"TEST_USER,required=true"`
	TestSuspend      bool    `env:"TEST_SUSPEND,default=false"`
	LogLevel         *string `env:"LOG_LEVEL"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Tester error: %v\n", err)
	}
	os.Exit(code)
}

// run drives the two admin API operations against a live homeserver and
// renders the outcome, so an operator can verify token and endpoints
// before enabling the module.
func run() (int, error) {
	// 1. Load configuration from .env / environment variables.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(lo.FromPtr(config.LogLevel))
	client := admin.NewClient(config.HomeserverURL, config.AdminToken, "smoke test", log)

	// 2. Exercise the endpoints. Join always; suspend only when asked for,
	// since it locks the account out.
	type outcome struct {
		action string
		target string
		ok     bool
	}
	results := []outcome{
		{"force join", config.NotificationRoom, client.ForceJoin(config.TestUser, config.NotificationRoom)},
	}
	if config.TestSuspend {
		results = append(results, outcome{"suspend", config.TestUser, client.Suspend(config.TestUser)})
	}

	// 3. Render the result table.
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Action", "Target", "Result"})

	failed := false
	for _, r := range results {
		status := color.Green.Sprint("OK")
		if !r.ok {
			status = color.Red.Sprint("FAILED")
			failed = true
		}
		table.Append([]string{r.action, r.target, status})
	}
	table.Render()

	if failed {
		return exitFailed, fmt.Errorf("one or more admin API calls failed, see logs above")
	}
	return exitOK, nil
}
