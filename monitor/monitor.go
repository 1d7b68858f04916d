package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"reg-sentinel/admin"
	"reg-sentinel/bridge"
	"reg-sentinel/contract"
	"reg-sentinel/domain/event"
	"reg-sentinel/observability"
	"reg-sentinel/watchlist"
)

// Monitor reacts to the two account-lifecycle events of the host: it alerts
// the moderation room on every registration attempt and restricts freshly
// created accounts through the admin API. It owns no user store and no room
// state; everything it touches is scoped to a single event.
type Monitor struct {
	config   Config
	host     contract.HostAPI
	admin    contract.AdminAPI
	notifier *Notifier
	watch    *watchlist.Watchlist
	stats    *observability.Stats
	log      *slog.Logger
}

// New parses the raw host-provided config, builds the admin client, and
// registers both callbacks on the host. When New returns an error, nothing
// was registered and the host must abort module initialization.
func New(raw map[string]any, host contract.HostAPI, log *slog.Logger) (*Monitor, error) {
	cfg, err := ParseConfig(raw)
	if err != nil {
		return nil, err
	}

	client := admin.NewClient(cfg.HomeserverURL, cfg.AdminToken, cfg.Reason, log)
	return NewWithAdmin(cfg, host, client, log)
}

// NewWithAdmin wires the monitor with an already validated config and an
// explicit admin API implementation.
func NewWithAdmin(cfg Config, host contract.HostAPI, adminAPI contract.AdminAPI, log *slog.Logger) (*Monitor, error) {
	m := &Monitor{
		config:   cfg,
		host:     host,
		admin:    adminAPI,
		notifier: NewNotifier(host),
		stats:    observability.NewStats(),
		log:      log,
	}

	if len(cfg.WatchWords) > 0 {
		watch, err := watchlist.New(cfg.WatchWords)
		if err != nil {
			return nil, err
		}
		m.watch = watch
	}

	host.RegisterRegistrationCallback(m.CheckRegistration)
	host.RegisterAccountCreatedCallback(m.OnAccountCreated)

	m.log.Info("Registration monitor initialized",
		"notification_room", cfg.NotificationRoom,
		"suspend_users", cfg.SuspendUsers,
		"force_join_room", cfg.ForceJoinRoom)

	return m, nil
}

// CheckRegistration screens a registration attempt. It only observes:
// an alert goes to the moderation room, the verdict is always Allow.
// Restriction happens after creation in OnAccountCreated, so an alerting
// failure never blocks a legitimate signup.
func (m *Monitor) CheckRegistration(ctx context.Context, attempt event.RegistrationAttempt) event.Verdict {
	// Early-stage probe with no identity yet, nothing to report.
	if attempt.Username == "" {
		return event.Allow
	}

	m.stats.RegistrationSeen()

	email := "No email provided"
	if attempt.Email != nil && attempt.Email.Address != "" {
		email = attempt.Email.Address
	}
	ip := attempt.SourceIP
	if ip == "" {
		ip = "Unknown IP"
	}
	auth := attempt.AuthProviderID
	if auth == "" {
		auth = "password"
	}

	var b strings.Builder
	b.WriteString("📝 New registration detected:\n")
	fmt.Fprintf(&b, "- Username: @%s:%s\n", attempt.Username, m.host.ServerName())
	fmt.Fprintf(&b, "- Email: %s\n", email)
	fmt.Fprintf(&b, "- IP Address: %s\n", ip)
	fmt.Fprintf(&b, "- Auth Method: %s", auth)

	if m.watch != nil {
		if hits := m.watch.Hits(attempt.Username); len(hits) > 0 {
			fmt.Fprintf(&b, "\n⚠️ Username matches watchlist: %s", strings.Join(hits, ", "))
		}
	}

	if m.config.SuspendUsers {
		b.WriteString("\n✋ User will be automatically suspended after registration.")
	}

	if err := m.notifier.Send(ctx, m.config.NotificationRoom, m.sender(), b.String()); err != nil {
		m.log.Error("Failed to send registration notification", "username", attempt.Username, "error", err)
		m.stats.AlertSent(false)
	} else {
		m.log.Info("Sent registration notification", "username", attempt.Username)
		m.stats.AlertSent(true)
	}

	return event.Allow
}

// OnAccountCreated applies the configured restrictions to a freshly created
// account and confirms what actually happened into the moderation room.
// Actions run one after the other; each failure is logged and simply left
// out of the confirmation, nothing propagates back to the host.
func (m *Monitor) OnAccountCreated(ctx context.Context, created event.AccountCreated) {
	log := m.log.With("user_id", created.UserID, "trace_id", uuid.NewString())

	var actions []string

	if m.config.ForceJoinRoom {
		ok := bridge.RunBlocking(ctx, m.host, func() bool {
			return m.admin.ForceJoin(created.UserID, m.config.NotificationRoom)
		})
		m.stats.JoinDone(ok)
		if ok {
			actions = append(actions, "joined to notification room")
		} else {
			log.Error("Failed to join user to notification room")
		}
	}

	if m.config.SuspendUsers {
		ok := bridge.RunBlocking(ctx, m.host, func() bool {
			return m.admin.Suspend(created.UserID)
		})
		m.stats.SuspensionDone(ok)
		if ok {
			actions = append(actions, "suspended")
		} else {
			log.Error("Failed to suspend user")
		}
	}

	if len(actions) == 0 {
		return
	}

	body := fmt.Sprintf("✅ User %s has been %s.", created.UserID, strings.Join(actions, " and "))
	if err := m.notifier.Send(ctx, m.config.NotificationRoom, m.sender(), body); err != nil {
		log.Error("Failed to send confirmation message", "error", err)
		return
	}
	m.stats.ConfirmationSent()
}

// Stats returns a snapshot of the action counters.
func (m *Monitor) Stats() observability.Snapshot {
	return m.stats.Snapshot()
}

func (m *Monitor) sender() string {
	return senderIdentity(m.config, m.host.ServerName())
}

// senderIdentity resolves the identity notifications are sent under: the
// configured admin_user wins, otherwise an admin handle is synthesized on
// the configured domain, falling back to the host's own domain.
func senderIdentity(cfg Config, hostDomain string) string {
	if cfg.AdminUser != "" {
		return cfg.AdminUser
	}
	domain := cfg.ServerName
	if domain == "" {
		domain = hostDomain
	}
	return "@admin:" + domain
}
