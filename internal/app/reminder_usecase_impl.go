package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/armaan1925/medremind/internal/domain"
)

type reminderUseCaseImpl struct {
	store   domain.ReminderStore
	deriver *domain.ScheduleDeriver
	now     func() time.Time
}

func NewReminderUseCase(store domain.ReminderStore) ReminderUseCase {
	return &reminderUseCaseImpl{
		store:   store,
		deriver: domain.NewScheduleDeriver(),
		now:     time.Now,
	}
}

func (uc *reminderUseCaseImpl) CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error) {
	slog.Debug("creating reminder",
		"medicine_name", input.MedicineName,
		"timings_count", len(input.Timings),
	)

	timings, err := domain.ParseTimings(input.Timings)
	if err != nil {
		return ReminderOutput{}, NewValidationError("timings", err.Error())
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = uc.now()
	}

	reminder, err := domain.NewReminder(
		input.MedicineName,
		input.Dosage,
		timings,
		startDate,
		input.DurationDays,
		input.Notes,
	)
	if err != nil {
		return ReminderOutput{}, NewValidationError("duration_days", err.Error())
	}

	if err := uc.store.Append(ctx, reminder); err != nil {
		slog.Error("failed to save reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("reminder created",
		"reminder_id", reminder.ID().String(),
		"medicine_name", input.MedicineName,
	)

	return FromEntity(reminder, uc.now()), nil
}

func (uc *reminderUseCaseImpl) ListReminders(ctx context.Context) (RemindersOutput, error) {
	reminders := uc.store.FindAll(ctx)

	slog.Debug("reminders listed",
		"count", len(reminders),
	)

	return FromEntities(reminders, uc.now()), nil
}

func (uc *reminderUseCaseImpl) UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error) {
	slog.Debug("updating reminder",
		"reminder_id", input.ID,
	)

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("id", err.Error())
	}

	timings, err := domain.ParseTimings(input.Timings)
	if err != nil {
		return ReminderOutput{}, NewValidationError("timings", err.Error())
	}

	reminder, found := uc.findByID(ctx, id)
	if !found {
		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrReminderNotFound)
	}

	if err := reminder.Revise(
		input.MedicineName,
		input.Dosage,
		timings,
		input.StartDate,
		input.DurationDays,
		input.Notes,
	); err != nil {
		return ReminderOutput{}, NewValidationError("duration_days", err.Error())
	}

	reminder.SetActive(input.Active)

	if err := uc.store.Update(ctx, reminder); err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return ReminderOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to update reminder",
			"error", err,
			"reminder_id", input.ID,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("reminder updated",
		"reminder_id", input.ID,
	)

	return FromEntity(reminder, uc.now()), nil
}

func (uc *reminderUseCaseImpl) SetReminderActive(ctx context.Context, input SetReminderActiveInput) (ReminderOutput, error) {
	slog.Debug("setting reminder active flag",
		"reminder_id", input.ID,
		"active", input.Active,
	)

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("id", err.Error())
	}

	reminder, found := uc.findByID(ctx, id)
	if !found {
		slog.Warn("reminder not found for active toggle",
			"reminder_id", input.ID,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrNotFound, domain.ErrReminderNotFound)
	}

	reminder.SetActive(input.Active)

	if err := uc.store.Update(ctx, reminder); err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return ReminderOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to update active flag",
			"error", err,
			"reminder_id", input.ID,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Debug("reminder active flag updated",
		"reminder_id", input.ID,
		"active", reminder.IsActive(),
	)

	return FromEntity(reminder, uc.now()), nil
}

func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input DeleteReminderInput) error {
	slog.Debug("deleting reminder",
		"reminder_id", input.ID,
	)

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrReminderNotFound) {
			slog.Error("failed to delete reminder",
				"error", err,
				"reminder_id", input.ID,
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		slog.Info("reminder not found for deletion (idempotency)",
			"reminder_id", input.ID,
		)
	}

	slog.Debug("reminder deleted",
		"reminder_id", input.ID,
	)

	return nil
}

func (uc *reminderUseCaseImpl) DeriveFromPrescription(ctx context.Context, input DeriveFromPrescriptionInput) (RemindersOutput, error) {
	slog.Debug("deriving reminders from prescription",
		"medicines_count", len(input.Medicines),
	)

	if len(input.Medicines) == 0 {
		return RemindersOutput{}, NewValidationError("medicines", "at least one medicine is required")
	}

	entries := make([]domain.MedicineEntry, 0, len(input.Medicines))
	for _, m := range input.Medicines {
		entries = append(entries, domain.MedicineEntry{
			Name:     m.Name,
			Dosage:   m.Dosage,
			Timings:  m.Timings,
			Duration: m.Duration,
			Notes:    m.Notes,
		})
	}

	now := uc.now()
	reminders := uc.deriver.Derive(entries, now)

	if err := uc.store.Append(ctx, reminders...); err != nil {
		slog.Error("failed to save derived reminders",
			"error", err,
			"count", len(reminders),
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("reminders derived from prescription",
		"count", len(reminders),
	)

	return FromEntities(reminders, now), nil
}

func (uc *reminderUseCaseImpl) findByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, bool) {
	for _, r := range uc.store.FindAll(ctx) {
		if r.ID().Equals(id) {
			return r, true
		}
	}

	return nil, false
}
