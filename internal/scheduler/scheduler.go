package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/armaan1925/medremind/internal/domain"
	"github.com/armaan1925/medremind/internal/infra/notify"
	"github.com/armaan1925/medremind/internal/observability/logging"
)

const (
	// DefaultTickInterval catches every whole minute reliably without
	// sub-second scheduling overhead.
	DefaultTickInterval = 15 * time.Second

	notificationTitle = "Medicine Reminder"
)

type Config struct {
	Interval time.Duration
	// Clock overrides the wall clock, for tests.
	Clock func() time.Time
}

// Scheduler is the delivery loop: a single repeating timer task that
// compares the current minute against every active reminder's slots
// and triggers at most one delivery per matching minute per slot.
type Scheduler struct {
	store     domain.ReminderStore
	deliverer *notify.Deliverer
	interval  time.Duration
	clock     func() time.Time

	// lastEvaluatedMinute guards against sub-minute tick granularity
	// triggering duplicate deliveries.
	lastEvaluatedMinute int

	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(store domain.ReminderStore, deliverer *notify.Deliverer, cfg Config) *Scheduler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Scheduler{
		store:               store,
		deliverer:           deliverer,
		interval:            interval,
		clock:               clock,
		lastEvaluatedMinute: -1,
	}
}

// Start launches the tick loop. It is a no-op if already running.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("reminder scheduler started",
		"interval", s.interval,
	)
}

// Stop releases the timer and waits for the loop to exit. No tick
// fires after Stop returns.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.done
	s.cancel = nil

	slog.Info("reminder scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ctx = logging.WithModule(ctx, logging.ModuleScheduler)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evaluate(ctx, s.clock())
		}
	}
}

// Evaluate runs one tick of the delivery loop at the given instant.
// The tick is skipped entirely when its wall-clock minute has already
// been evaluated.
func (s *Scheduler) Evaluate(ctx context.Context, now time.Time) {
	minute := now.Hour()*60 + now.Minute()
	if minute == s.lastEvaluatedMinute {
		return
	}

	s.lastEvaluatedMinute = minute

	for _, reminder := range s.store.FindAll(ctx) {
		for _, slot := range reminder.DueTimings(now) {
			slog.InfoContext(ctx, "reminder due",
				"reminder_id", reminder.ID().String(),
				"medicine_name", reminder.MedicineName(),
				"slot", slot.String(),
			)

			s.deliverer.Deliver(ctx, notify.Notification{
				ReminderID:   reminder.ID().String(),
				MedicineName: reminder.MedicineName(),
				Dosage:       reminder.Dosage(),
				Title:        notificationTitle,
				Body:         deliveryBody(reminder),
				FiredAt:      now,
			})
		}
	}
}

func deliveryBody(r *domain.Reminder) string {
	return fmt.Sprintf("Time to take your %s (%s).", r.MedicineName(), r.Dosage())
}
