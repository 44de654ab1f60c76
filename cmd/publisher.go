package main

import (
	"context"
	"log/slog"

	"github.com/armaan1925/medremind/internal/config"
	"github.com/armaan1925/medremind/internal/infra/notify"
)

func initPublisher(ctx context.Context, cfg *config.Config) (*notify.NATSPublisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, event publishing disabled")

		return nil, nil
	}

	publisher, err := notify.NewNATSPublisher(ctx, notify.NATSPublisherConfig{
		URL: cfg.PubSub.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)

	return publisher, nil
}
