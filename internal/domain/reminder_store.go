package domain

import "context"

// ReminderStore persists the full reminder collection for the current
// device. FindAll never fails: an unavailable backend or a malformed
// payload degrades to an empty collection inside the implementation.
// Mutating operations persist before returning; concurrent writers are
// resolved last-writer-wins.
type ReminderStore interface {
	FindAll(ctx context.Context) []*Reminder
	ReplaceAll(ctx context.Context, reminders []*Reminder) error
	Append(ctx context.Context, reminders ...*Reminder) error
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id ReminderID) error
}
