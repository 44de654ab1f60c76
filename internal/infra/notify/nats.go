package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/armaan1925/medremind/internal/observability/tracing"
)

// NATSPublisher delivers notification and speech events over NATS
// JetStream. The push-notification worker and the speech synthesis
// worker consume the two topics independently.
type NATSPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type NATSPublisherConfig struct {
	URL string
}

type deliveryEvent struct {
	ReminderID   string    `json:"reminder_id"`
	MedicineName string    `json:"medicine_name"`
	Dosage       string    `json:"dosage"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	FiredAt      time.Time `json:"fired_at"`
}

type speechEvent struct {
	Text    string    `json:"text"`
	SpokeAt time.Time `json:"spoke_at"`
}

func NewNATSPublisher(ctx context.Context, cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	streamName := "REMINDER_EVENTS"

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Stream for reminder delivery and speech events",
		Subjects:    []string{TopicReminderDelivery, TopicReminderSpeech},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024, // 100MB
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
	)

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *NATSPublisher) Available() bool {
	return p != nil && p.publisher != nil
}

func (p *NATSPublisher) Notify(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(deliveryEvent{
		ReminderID:   n.ReminderID,
		MedicineName: n.MedicineName,
		Dosage:       n.Dosage,
		Title:        n.Title,
		Body:         n.Body,
		FiredAt:      n.FiredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", "reminder.delivery")
	msg.Metadata.Set("reminder_id", n.ReminderID)
	tracing.InjectToMap(ctx, msg.Metadata)

	if err := p.publisher.Publish(TopicReminderDelivery, msg); err != nil {
		slog.Error("failed to publish delivery event",
			slog.String("reminder_id", n.ReminderID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.Debug("published delivery event",
		slog.String("reminder_id", n.ReminderID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *NATSPublisher) Announce(ctx context.Context, text string) error {
	payload, err := json.Marshal(speechEvent{
		Text:    text,
		SpokeAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", "reminder.speech")
	tracing.InjectToMap(ctx, msg.Metadata)

	if err := p.publisher.Publish(TopicReminderSpeech, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (p *NATSPublisher) Close() error {
	return p.publisher.Close()
}
