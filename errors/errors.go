package errors

import "fmt"

var (
	ErrMissingNotificationRoom = fmt.Errorf("missing required config field 'notification_room'")
	ErrMissingAdminToken       = fmt.Errorf("missing required config field 'admin_token'")
	ErrInvalidConfig           = fmt.Errorf("invalid config")
	ErrEmptyWatchWords         = fmt.Errorf("no watch words have been found")
)
