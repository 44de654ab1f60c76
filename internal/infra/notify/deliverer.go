package notify

import (
	"context"
	"log/slog"
)

// Deliverer routes a notification to the primary channel, falling back
// to the in-app channel when the primary is unavailable or fails, and
// independently announces the body aloud. Failure of one channel never
// blocks the other.
type Deliverer struct {
	primary   Notifier
	fallback  Notifier
	announcer Announcer
}

func NewDeliverer(primary, fallback Notifier, announcer Announcer) *Deliverer {
	return &Deliverer{
		primary:   primary,
		fallback:  fallback,
		announcer: announcer,
	}
}

func (d *Deliverer) Deliver(ctx context.Context, n Notification) {
	d.notify(ctx, n)

	if d.announcer != nil {
		if err := d.announcer.Announce(ctx, n.Body); err != nil {
			slog.Warn("spoken announcement failed",
				"reminder_id", n.ReminderID,
				"error", err,
			)
		}
	}
}

func (d *Deliverer) notify(ctx context.Context, n Notification) {
	if d.primary != nil && d.primary.Available() {
		err := d.primary.Notify(ctx, n)
		if err == nil {
			return
		}

		slog.Warn("primary notification channel failed, falling back",
			"reminder_id", n.ReminderID,
			"error", err,
		)
	}

	if d.fallback == nil {
		slog.Warn("no fallback notification channel configured, dropping delivery",
			"reminder_id", n.ReminderID,
		)

		return
	}

	if err := d.fallback.Notify(ctx, n); err != nil {
		slog.Error("fallback notification channel failed",
			"reminder_id", n.ReminderID,
			"error", err,
		)
	}
}
