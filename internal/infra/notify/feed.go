package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const maxFeedEntries = 50

// Alert is one in-app fallback message, the transient "toast" shown
// when the system notification channel is not available.
type Alert struct {
	ReminderID string
	Title      string
	Body       string
	At         time.Time
}

// Feed is a bounded in-memory alert feed. It is always available, so
// it terminates the fallback chain.
type Feed struct {
	mu     sync.RWMutex
	alerts []Alert
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) Available() bool {
	return true
}

func (f *Feed) Notify(_ context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.alerts = append(f.alerts, Alert{
		ReminderID: n.ReminderID,
		Title:      n.Title,
		Body:       n.Body,
		At:         n.FiredAt,
	})

	if len(f.alerts) > maxFeedEntries {
		f.alerts = f.alerts[len(f.alerts)-maxFeedEntries:]
	}

	slog.Info("in-app alert queued",
		"reminder_id", n.ReminderID,
		"body", n.Body,
	)

	return nil
}

// Recent returns the queued alerts, newest last.
func (f *Feed) Recent() []Alert {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Alert, len(f.alerts))
	copy(out, f.alerts)

	return out
}
