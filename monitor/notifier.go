package monitor

import (
	"context"

	"reg-sentinel/contract"
)

// messageEventType is the room event type used for every notification.
const messageEventType = "m.room.message"

// Notifier posts plain text messages into a room through the host's
// message-send primitive. Delivery failures are the caller's concern:
// they are logged and swallowed, never retried.
type Notifier struct {
	host contract.HostAPI
}

func NewNotifier(host contract.HostAPI) *Notifier {
	return &Notifier{host: host}
}

func (n *Notifier) Send(ctx context.Context, roomID, sender, body string) error {
	return n.host.SendRoomMessage(ctx, roomID, messageEventType, sender, body)
}
