package app

import (
	"context"
)

type ReminderUseCase interface {
	CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error)
	ListReminders(ctx context.Context) (RemindersOutput, error)
	UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error)
	SetReminderActive(ctx context.Context, input SetReminderActiveInput) (ReminderOutput, error)
	DeleteReminder(ctx context.Context, input DeleteReminderInput) error
	DeriveFromPrescription(ctx context.Context, input DeriveFromPrescriptionInput) (RemindersOutput, error)
}
