//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"time"

	"reg-sentinel/domain/event"
)

// RegistrationCallback is invoked by the host while a registration attempt
// is in progress, before the account exists.
type RegistrationCallback func(ctx context.Context, attempt event.RegistrationAttempt) event.Verdict

// AccountCreatedCallback is invoked by the host once an account has been
// durably created.
type AccountCreatedCallback func(ctx context.Context, created event.AccountCreated)

// Sleeper suspends the current handler cooperatively, yielding control
// back to the host scheduler for the given duration.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// HostAPI is the narrow surface this module consumes from the host runtime.
// The host owns callback dispatch, message delivery and its own domain name;
// none of that is reimplemented here.
type HostAPI interface {
	Sleeper

	RegisterRegistrationCallback(cb RegistrationCallback)
	RegisterAccountCreatedCallback(cb AccountCreatedCallback)

	// SendRoomMessage delivers a text body into a room under the given
	// sender identity. Delivery semantics belong to the host.
	SendRoomMessage(ctx context.Context, roomID, eventType, sender, body string) error

	// ServerName returns the host's own configured domain.
	ServerName() string
}

// AdminAPI groups the two administrative actions taken against newly
// created accounts. Both calls block until the remote API answers and
// report success as a plain boolean; failures are logged by the
// implementation, never returned as errors.
type AdminAPI interface {
	Suspend(userID string) bool
	ForceJoin(userID, roomID string) bool
}
