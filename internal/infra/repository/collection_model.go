package repository

import (
	"encoding/json"
	"time"

	"github.com/armaan1925/medremind/internal/domain"
)

// CollectionKey is the fixed key the whole reminder collection is
// stored under, matching the browser origin's localStorage key.
const CollectionKey = "medicineReminders"

// CollectionModel is one key-value row holding the serialized reminder
// collection as a JSON array.
type CollectionModel struct {
	Key       string    `gorm:"column:key;type:varchar(255);primaryKey"`
	Data      []byte    `gorm:"column:data;type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (CollectionModel) TableName() string {
	return "reminder_collections"
}

type reminderRecord struct {
	ID           string    `json:"id"`
	MedicineName string    `json:"medicine_name"`
	Dosage       string    `json:"dosage"`
	Timings      []string  `json:"timings"`
	StartDate    time.Time `json:"start_date"`
	DurationDays int       `json:"duration_days"`
	Notes        string    `json:"notes"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r reminderRecord) ToEntity() (*domain.Reminder, error) {
	id, err := domain.ReminderIDFromString(r.ID)
	if err != nil {
		return nil, err
	}

	timings, err := domain.ParseTimings(r.Timings)
	if err != nil {
		return nil, err
	}

	if r.DurationDays < 0 {
		return nil, domain.ErrNegativeDuration
	}

	return domain.Reconstitute(
		id,
		r.MedicineName,
		r.Dosage,
		timings,
		r.StartDate,
		r.DurationDays,
		r.Notes,
		r.Active,
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}

func recordFromEntity(e *domain.Reminder) reminderRecord {
	return reminderRecord{
		ID:           e.ID().String(),
		MedicineName: e.MedicineName(),
		Dosage:       e.Dosage(),
		Timings:      e.Timings().Strings(),
		StartDate:    e.StartDate(),
		DurationDays: e.DurationDays(),
		Notes:        e.Notes(),
		Active:       e.IsActive(),
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}

func marshalCollection(reminders []*domain.Reminder) ([]byte, error) {
	records := make([]reminderRecord, 0, len(reminders))
	for _, r := range reminders {
		records = append(records, recordFromEntity(r))
	}

	return json.Marshal(records)
}
