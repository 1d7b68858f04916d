package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// requestTimeout bounds every admin call. A timed-out request is an
// ordinary failure, not a special case.
const requestTimeout = 30 * time.Second

// Client drives the homeserver's synchronous administrative HTTP API.
// Both operations block for up to requestTimeout and must only be invoked
// through the bridge from a cooperative handler.
type Client struct {
	baseURL    string
	token      string
	reason     string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL, token, reason string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		reason:  reason,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

// Suspend marks the account as suspended via the admin API.
// Returns true only on HTTP 200. The remote API is expected to treat a
// repeated suspension as idempotent; a non-200 from such a call is still a
// failure here.
func (c *Client) Suspend(userID string) bool {
	endpoint := fmt.Sprintf("%s/_synapse/admin/v1/suspend/%s", c.baseURL, url.PathEscape(userID))

	ok := c.do(http.MethodPut, endpoint, map[string]any{"suspend": true})
	if ok {
		c.log.Info("Suspended user", "user_id", userID, "reason", c.reason)
	}
	return ok
}

// ForceJoin joins the account into the given room via the admin API.
func (c *Client) ForceJoin(userID, roomID string) bool {
	endpoint := fmt.Sprintf("%s/_synapse/admin/v1/join/%s", c.baseURL, url.PathEscape(roomID))

	ok := c.do(http.MethodPost, endpoint, map[string]any{"user_id": userID})
	if ok {
		c.log.Info("Joined user to room", "user_id", userID, "room_id", roomID)
	}
	return ok
}

// do issues one state-changing admin request and reports whether the
// remote API answered 200. Every other outcome (status, transport error,
// timeout) is logged and collapsed into false.
func (c *Client) do(method, endpoint string, body map[string]any) bool {
	payload, err := json.Marshal(body)
	if err != nil {
		c.log.Error("Failed to encode admin request body", "endpoint", endpoint, "error", err)
		return false
	}

	req, err := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	if err != nil {
		c.log.Error("Failed to build admin request", "endpoint", endpoint, "error", err)
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Admin request failed", "endpoint", endpoint, "error", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Admin request rejected",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"body", string(respBody))
		return false
	}

	return true
}
