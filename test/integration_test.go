package test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"reg-sentinel/contract"
	"reg-sentinel/domain/event"
	"reg-sentinel/monitor"
)

// fakeHost is a minimal in-process stand-in for the host runtime: it hands
// the registered callbacks back to the test, records every message, and
// implements the cooperative sleep with a real (short) sleep.
type fakeHost struct {
	mu        sync.Mutex
	messages  []sentMessage
	regCb     contract.RegistrationCallback
	createdCb contract.AccountCreatedCallback
}

type sentMessage struct {
	roomID    string
	eventType string
	sender    string
	body      string
}

func (h *fakeHost) Sleep(_ context.Context, _ time.Duration) error {
	time.Sleep(time.Millisecond)
	return nil
}

func (h *fakeHost) RegisterRegistrationCallback(cb contract.RegistrationCallback) {
	h.regCb = cb
}

func (h *fakeHost) RegisterAccountCreatedCallback(cb contract.AccountCreatedCallback) {
	h.createdCb = cb
}

func (h *fakeHost) SendRoomMessage(_ context.Context, roomID, eventType, sender, body string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, sentMessage{roomID, eventType, sender, body})
	return nil
}

func (h *fakeHost) ServerName() string { return "example.org" }

func (h *fakeHost) sent() []sentMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]sentMessage(nil), h.messages...)
}

type adminRequest struct {
	method string
	path   string
	auth   string
}

// Test_Scenario exercises the whole pipeline: a registration attempt is
// screened and alerted, then the created account is joined, suspended and
// confirmed, all against a real HTTP admin endpoint.
func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)

	var (
		mu       sync.Mutex
		requests []adminRequest
	)
	homeserver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, adminRequest{r.Method, r.URL.Path, r.Header.Get("Authorization")})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer homeserver.Close()

	host := &fakeHost{}
	_, err := monitor.New(map[string]any{
		"notification_room": "!mods:example.org",
		"admin_token":       "secret",
		"homeserver_url":    homeserver.URL,
	}, host, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)
	req.NotNil(host.regCb)
	req.NotNil(host.createdCb)

	// 1. A registration attempt comes in through the host callback.
	verdict := host.regCb(ctx, event.RegistrationAttempt{
		Username: "newbie",
		SourceIP: "203.0.113.7",
	})
	req.Equal(event.Allow, verdict)

	alerts := host.sent()
	req.Len(alerts, 1)
	req.Equal("!mods:example.org", alerts[0].roomID)
	req.Equal("m.room.message", alerts[0].eventType)
	req.Equal("@admin:example.org", alerts[0].sender)
	req.Contains(alerts[0].body, "- Username: @newbie:example.org")
	req.Contains(alerts[0].body, "automatically suspended after registration")

	// 2. The account gets created; both admin actions run over HTTP.
	host.createdCb(ctx, event.AccountCreated{UserID: "@newbie:example.org"})

	mu.Lock()
	calls := append([]adminRequest(nil), requests...)
	mu.Unlock()
	req.Len(calls, 2)
	req.Equal(http.MethodPost, calls[0].method)
	req.Equal("/_synapse/admin/v1/join/!mods:example.org", calls[0].path)
	req.Equal("Bearer secret", calls[0].auth)
	req.Equal(http.MethodPut, calls[1].method)
	req.Equal("/_synapse/admin/v1/suspend/@newbie:example.org", calls[1].path)
	req.Equal("Bearer secret", calls[1].auth)

	// 3. The confirmation lists both performed actions.
	messages := host.sent()
	req.Len(messages, 2)
	req.Equal("✅ User @newbie:example.org has been joined to notification room and suspended.", messages[1].body)
}
