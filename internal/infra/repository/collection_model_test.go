package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armaan1925/medremind/internal/domain"
)

func validRecord() reminderRecord {
	return reminderRecord{
		ID:           uuid.New().String(),
		MedicineName: "Paracetamol",
		Dosage:       "1 tablet",
		Timings:      []string{"09:00", "21:00"},
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 5,
		Notes:        "after food",
		Active:       true,
		CreatedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordToEntitySuccess(t *testing.T) {
	record := validRecord()

	reminder, err := record.ToEntity()

	require.NoError(t, err)
	assert.Equal(t, record.ID, reminder.ID().String())
	assert.Equal(t, "Paracetamol", reminder.MedicineName())
	assert.Equal(t, []string{"09:00", "21:00"}, reminder.Timings().Strings())
	assert.Equal(t, 5, reminder.DurationDays())
	assert.True(t, reminder.IsActive())
}

func TestRecordToEntityError(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *reminderRecord)
		expectedErr error
	}{
		{
			name: "invalid id",
			mutate: func(r *reminderRecord) {
				r.ID = "not-a-uuid"
			},
			expectedErr: domain.ErrInvalidReminderID,
		},
		{
			name: "malformed timing",
			mutate: func(r *reminderRecord) {
				r.Timings = []string{"morning"}
			},
			expectedErr: domain.ErrInvalidClockTime,
		},
		{
			name: "no timings",
			mutate: func(r *reminderRecord) {
				r.Timings = nil
			},
			expectedErr: domain.ErrEmptyTimings,
		},
		{
			name: "negative duration",
			mutate: func(r *reminderRecord) {
				r.DurationDays = -1
			},
			expectedErr: domain.ErrNegativeDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)

			_, err := record.ToEntity()

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestRecordEntityRoundTrip(t *testing.T) {
	timings, err := domain.ParseTimings([]string{"21:00", "09:00"})
	require.NoError(t, err)

	original, err := domain.NewReminder(
		"Amoxicillin",
		"500mg",
		timings,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		14,
		"finish the course",
	)
	require.NoError(t, err)

	restored, convErr := recordFromEntity(original).ToEntity()

	require.NoError(t, convErr)
	assert.True(t, original.ID().Equals(restored.ID()))
	assert.Equal(t, original.MedicineName(), restored.MedicineName())
	assert.Equal(t, original.Timings().Strings(), restored.Timings().Strings())
	assert.Equal(t, original.StartDate(), restored.StartDate())
	assert.Equal(t, original.DurationDays(), restored.DurationDays())
	assert.Equal(t, original.IsActive(), restored.IsActive())
}

func TestMarshalCollectionShape(t *testing.T) {
	timings, err := domain.ParseTimings([]string{"09:00"})
	require.NoError(t, err)

	reminder, err := domain.NewReminder("Paracetamol", "1 tablet", timings, time.Now(), 5, "")
	require.NoError(t, err)

	data, err := marshalCollection([]*domain.Reminder{reminder})
	require.NoError(t, err)

	var records []reminderRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, reminder.ID().String(), records[0].ID)

	empty, err := marshalCollection(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
