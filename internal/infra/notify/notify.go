package notify

import (
	"context"
	"time"
)

// Notification is one delivery payload: a title plus a body naming the
// medicine and dosage.
type Notification struct {
	ReminderID   string
	MedicineName string
	Dosage       string
	Title        string
	Body         string
	FiredAt      time.Time
}

// Notifier is the capability-gated notification channel. Available
// reports whether the channel can currently deliver; an unavailable
// channel is a routing decision, not an error.
type Notifier interface {
	Available() bool
	Notify(ctx context.Context, n Notification) error
}

// Announcer speaks the notification body aloud, best-effort.
type Announcer interface {
	Announce(ctx context.Context, text string) error
}
