// Package notify is the process-wide notification center: an ordered list
// of transient user-facing messages that expire on their own.
package notify

import "time"

// Type is the severity of a notification.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
	Info    Type = "info"
)

// DefaultDuration is how long a notification lives when the caller does not
// say otherwise.
const DefaultDuration = 5 * time.Second

// Notification is one message in the center. A Duration of zero or less
// means it never expires on its own.
type Notification struct {
	ID       int64
	Type     Type
	Message  string
	Duration time.Duration
}

// Expires reports whether the notification schedules its own removal.
func (n Notification) Expires() bool { return n.Duration > 0 }
