package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/armaan1925/medremind/internal/domain"
)

// reminderStoreImpl persists the reminder collection as a single
// key-value row. Writers resolve last-writer-wins; readers never fail
// (unavailable backend or malformed payload degrades to an empty
// collection).
type reminderStoreImpl struct {
	db *gorm.DB
}

func NewReminderStore(db *gorm.DB) domain.ReminderStore {
	return &reminderStoreImpl{
		db: db,
	}
}

func (s *reminderStoreImpl) FindAll(ctx context.Context) []*domain.Reminder {
	var m CollectionModel

	result := s.db.WithContext(ctx).Where("key = ?", CollectionKey).First(&m)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Warn("reminder collection unavailable, treating as empty",
				"error", result.Error,
			)
		}

		return nil
	}

	var records []reminderRecord
	if err := json.Unmarshal(m.Data, &records); err != nil {
		slog.Warn("reminder collection malformed, treating as empty",
			"error", err,
		)

		return nil
	}

	reminders := make([]*domain.Reminder, 0, len(records))
	for _, record := range records {
		reminder, err := record.ToEntity()
		if err != nil {
			slog.Warn("skipping malformed reminder record",
				"reminder_id", record.ID,
				"error", err,
			)

			continue
		}

		reminders = append(reminders, reminder)
	}

	return reminders
}

func (s *reminderStoreImpl) ReplaceAll(ctx context.Context, reminders []*domain.Reminder) error {
	data, err := marshalCollection(reminders)
	if err != nil {
		slog.Error("failed to serialize reminder collection",
			"error", err,
		)

		return err
	}

	m := CollectionModel{
		Key:       CollectionKey,
		Data:      data,
		UpdatedAt: time.Now(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&m)
	if result.Error != nil {
		slog.Error("failed to persist reminder collection",
			"count", len(reminders),
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("reminder collection persisted",
		"count", len(reminders),
	)

	return nil
}

func (s *reminderStoreImpl) Append(ctx context.Context, reminders ...*domain.Reminder) error {
	existing := s.FindAll(ctx)

	return s.ReplaceAll(ctx, append(existing, reminders...))
}

func (s *reminderStoreImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	existing := s.FindAll(ctx)

	found := false
	for i, r := range existing {
		if r.ID().Equals(reminder.ID()) {
			existing[i] = reminder
			found = true

			break
		}
	}

	if !found {
		return domain.ErrReminderNotFound
	}

	return s.ReplaceAll(ctx, existing)
}

func (s *reminderStoreImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	existing := s.FindAll(ctx)

	remaining := make([]*domain.Reminder, 0, len(existing))
	for _, r := range existing {
		if r.ID().Equals(id) {
			continue
		}

		remaining = append(remaining, r)
	}

	if len(remaining) == len(existing) {
		return domain.ErrReminderNotFound
	}

	return s.ReplaceAll(ctx, remaining)
}
