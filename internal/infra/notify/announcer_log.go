package notify

import (
	"context"
	"log/slog"
)

// LogAnnouncer stands in for the speech channel when no NATS publisher
// is configured: the announcement degrades to a structured log line.
type LogAnnouncer struct{}

func NewLogAnnouncer() *LogAnnouncer {
	return &LogAnnouncer{}
}

func (a *LogAnnouncer) Announce(_ context.Context, text string) error {
	slog.Info("speaking reminder aloud",
		"text", text,
	)

	return nil
}
