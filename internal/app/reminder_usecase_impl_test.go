package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armaan1925/medremind/internal/app"
	"github.com/armaan1925/medremind/internal/domain"
	"github.com/armaan1925/medremind/internal/infra/repository"
)

func setupUseCaseTest(t *testing.T) (app.ReminderUseCase, domain.ReminderStore) {
	t.Helper()

	store := repository.NewMemoryReminderStore()

	return app.NewReminderUseCase(store), store
}

func validCreateInput() app.CreateReminderInput {
	return app.CreateReminderInput{
		MedicineName: "Paracetamol",
		Dosage:       "1 tablet",
		Timings:      []string{"21:00", "09:00"},
		StartDate:    time.Now(),
		DurationDays: 5,
		Notes:        "after food",
	}
}

func TestCreateReminderSuccess(t *testing.T) {
	useCase, store := setupUseCaseTest(t)

	output, err := useCase.CreateReminder(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, "Paracetamol", output.MedicineName)
	assert.Equal(t, []string{"09:00", "21:00"}, output.Timings)
	assert.True(t, output.Active)
	assert.False(t, output.Expired)

	stored := store.FindAll(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, output.ID, stored[0].ID().String())
}

func TestCreateReminderDefaultsStartDate(t *testing.T) {
	useCase, _ := setupUseCaseTest(t)

	input := validCreateInput()
	input.StartDate = time.Time{}

	before := time.Now()
	output, err := useCase.CreateReminder(context.Background(), input)

	require.NoError(t, err)
	assert.False(t, output.StartDate.Before(before))
}

func TestCreateReminderValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *app.CreateReminderInput)
		field  string
	}{
		{
			name: "empty timings",
			mutate: func(input *app.CreateReminderInput) {
				input.Timings = nil
			},
			field: "timings",
		},
		{
			name: "malformed timing",
			mutate: func(input *app.CreateReminderInput) {
				input.Timings = []string{"morningish"}
			},
			field: "timings",
		},
		{
			name: "negative duration",
			mutate: func(input *app.CreateReminderInput) {
				input.DurationDays = -2
			},
			field: "duration_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase, store := setupUseCaseTest(t)

			input := validCreateInput()
			tt.mutate(&input)

			_, err := useCase.CreateReminder(context.Background(), input)

			require.Error(t, err)
			assert.True(t, app.IsValidationError(err))

			var validationErr *app.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)

			assert.Empty(t, store.FindAll(context.Background()))
		})
	}
}

func TestListRemindersIdempotent(t *testing.T) {
	useCase, _ := setupUseCaseTest(t)

	_, err := useCase.CreateReminder(context.Background(), validCreateInput())
	require.NoError(t, err)

	first, err := useCase.ListReminders(context.Background())
	require.NoError(t, err)

	second, err := useCase.ListReminders(context.Background())
	require.NoError(t, err)

	require.Equal(t, first.Count, second.Count)
	assert.Equal(t, first.Reminders[0].ID, second.Reminders[0].ID)
	assert.Equal(t, first.Reminders[0].Timings, second.Reminders[0].Timings)
}

func TestUpdateReminderSuccess(t *testing.T) {
	useCase, _ := setupUseCaseTest(t)

	created, err := useCase.CreateReminder(context.Background(), validCreateInput())
	require.NoError(t, err)

	output, err := useCase.UpdateReminder(context.Background(), app.UpdateReminderInput{
		ID:           created.ID,
		MedicineName: "Ibuprofen",
		Dosage:       "2 tablets",
		Timings:      []string{"14:00"},
		StartDate:    time.Now(),
		DurationDays: 3,
		Notes:        "with water",
		Active:       false,
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, output.ID)
	assert.Equal(t, "Ibuprofen", output.MedicineName)
	assert.Equal(t, []string{"14:00"}, output.Timings)
	assert.False(t, output.Active)
	assert.Equal(t, created.CreatedAt, output.CreatedAt)
}

func TestUpdateReminderNotFound(t *testing.T) {
	useCase, _ := setupUseCaseTest(t)

	_, err := useCase.UpdateReminder(context.Background(), app.UpdateReminderInput{
		ID:           uuid.New().String(),
		MedicineName: "Ibuprofen",
		Dosage:       "2 tablets",
		Timings:      []string{"14:00"},
		StartDate:    time.Now(),
		DurationDays: 3,
	})

	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestSetReminderActive(t *testing.T) {
	useCase, store := setupUseCaseTest(t)

	created, err := useCase.CreateReminder(context.Background(), validCreateInput())
	require.NoError(t, err)

	output, err := useCase.SetReminderActive(context.Background(), app.SetReminderActiveInput{
		ID:     created.ID,
		Active: false,
	})

	require.NoError(t, err)
	assert.False(t, output.Active)

	stored := store.FindAll(context.Background())
	require.Len(t, stored, 1)
	assert.False(t, stored[0].IsActive())
}

func TestSetReminderActiveNotFound(t *testing.T) {
	useCase, _ := setupUseCaseTest(t)

	_, err := useCase.SetReminderActive(context.Background(), app.SetReminderActiveInput{
		ID:     uuid.New().String(),
		Active: true,
	})

	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestDeleteReminderIdempotent(t *testing.T) {
	useCase, store := setupUseCaseTest(t)

	created, err := useCase.CreateReminder(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, useCase.DeleteReminder(context.Background(), app.DeleteReminderInput{ID: created.ID}))
	assert.Empty(t, store.FindAll(context.Background()))

	// second delete succeeds silently
	assert.NoError(t, useCase.DeleteReminder(context.Background(), app.DeleteReminderInput{ID: created.ID}))
}

func TestDeleteReminderInvalidID(t *testing.T) {
	useCase, _ := setupUseCaseTest(t)

	err := useCase.DeleteReminder(context.Background(), app.DeleteReminderInput{ID: "not-a-uuid"})

	assert.True(t, app.IsValidationError(err))
}

func TestDeriveFromPrescriptionSuccess(t *testing.T) {
	useCase, store := setupUseCaseTest(t)

	output, err := useCase.DeriveFromPrescription(context.Background(), app.DeriveFromPrescriptionInput{
		Medicines: []app.MedicineInput{
			{
				Name:     "Amoxicillin",
				Dosage:   "500mg",
				Timings:  []string{"morning", "night"},
				Duration: "2 weeks",
				Notes:    "finish the course",
			},
			{
				Name:     "Vitamin D",
				Duration: "as needed",
			},
		},
	})

	require.NoError(t, err)
	require.Equal(t, int32(2), output.Count)

	assert.Equal(t, []string{"09:00", "21:00"}, output.Reminders[0].Timings)
	assert.Equal(t, 14, output.Reminders[0].DurationDays)
	assert.Equal(t, []string{"09:00"}, output.Reminders[1].Timings)
	assert.Equal(t, 7, output.Reminders[1].DurationDays)

	assert.Len(t, store.FindAll(context.Background()), 2)
}

func TestDeriveFromPrescriptionEmpty(t *testing.T) {
	useCase, _ := setupUseCaseTest(t)

	_, err := useCase.DeriveFromPrescription(context.Background(), app.DeriveFromPrescriptionInput{})

	assert.True(t, app.IsValidationError(err))
}

func TestDeriveFromPrescriptionAppendsToExisting(t *testing.T) {
	useCase, store := setupUseCaseTest(t)

	_, err := useCase.CreateReminder(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, err = useCase.DeriveFromPrescription(context.Background(), app.DeriveFromPrescriptionInput{
		Medicines: []app.MedicineInput{
			{Name: "Amoxicillin", Timings: []string{"evening"}, Duration: "3 days"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, store.FindAll(context.Background()), 2)
}
