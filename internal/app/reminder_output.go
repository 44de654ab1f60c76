package app

import (
	"time"

	"github.com/armaan1925/medremind/internal/domain"
)

type ReminderOutput struct {
	ID           string
	MedicineName string
	Dosage       string
	Timings      []string
	StartDate    time.Time
	DurationDays int
	Notes        string
	Active       bool
	Expired      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RemindersOutput struct {
	Reminders []ReminderOutput
	Count     int32
}

func FromEntity(reminder *domain.Reminder, now time.Time) ReminderOutput {
	return ReminderOutput{
		ID:           reminder.ID().String(),
		MedicineName: reminder.MedicineName(),
		Dosage:       reminder.Dosage(),
		Timings:      reminder.Timings().Strings(),
		StartDate:    reminder.StartDate(),
		DurationDays: reminder.DurationDays(),
		Notes:        reminder.Notes(),
		Active:       reminder.IsActive(),
		Expired:      reminder.IsExpired(now),
		CreatedAt:    reminder.CreatedAt(),
		UpdatedAt:    reminder.UpdatedAt(),
	}
}

func FromEntities(reminders []*domain.Reminder, now time.Time) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromEntity(r, now))
	}

	return RemindersOutput{
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}
