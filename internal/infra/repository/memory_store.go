package repository

import (
	"context"
	"sync"

	"github.com/armaan1925/medremind/internal/domain"
)

// memoryReminderStore keeps the collection in process memory.
// Used for standalone deployments without a database and in tests.
type memoryReminderStore struct {
	mu        sync.RWMutex
	reminders []*domain.Reminder
}

func NewMemoryReminderStore() domain.ReminderStore {
	return &memoryReminderStore{}
}

func (s *memoryReminderStore) FindAll(_ context.Context) []*domain.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Reminder, len(s.reminders))
	copy(out, s.reminders)

	return out
}

func (s *memoryReminderStore) ReplaceAll(_ context.Context, reminders []*domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = make([]*domain.Reminder, len(reminders))
	copy(s.reminders, reminders)

	return nil
}

func (s *memoryReminderStore) Append(_ context.Context, reminders ...*domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders = append(s.reminders, reminders...)

	return nil
}

func (s *memoryReminderStore) Update(_ context.Context, reminder *domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reminders {
		if r.ID().Equals(reminder.ID()) {
			s.reminders[i] = reminder

			return nil
		}
	}

	return domain.ErrReminderNotFound
}

func (s *memoryReminderStore) Delete(_ context.Context, id domain.ReminderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reminders {
		if r.ID().Equals(id) {
			s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)

			return nil
		}
	}

	return domain.ErrReminderNotFound
}
