package handler

import (
	"time"

	"github.com/armaan1925/medremind/internal/app"
	"github.com/armaan1925/medremind/internal/infra/notify"
)

type ReminderResponse struct {
	ID           string    `json:"id"`
	MedicineName string    `json:"medicine_name"`
	Dosage       string    `json:"dosage"`
	Timings      []string  `json:"timings"`
	StartDate    time.Time `json:"start_date"`
	DurationDays int       `json:"duration_days"`
	Notes        string    `json:"notes"`
	Active       bool      `json:"active"`
	Expired      bool      `json:"expired"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
	Count     int32              `json:"count"`
}

type AlertResponse struct {
	ReminderID string    `json:"reminder_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	At         time.Time `json:"at"`
}

type AlertsResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Count  int32           `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromDTO(output app.ReminderOutput) ReminderResponse {
	return ReminderResponse{
		ID:           output.ID,
		MedicineName: output.MedicineName,
		Dosage:       output.Dosage,
		Timings:      output.Timings,
		StartDate:    output.StartDate,
		DurationDays: output.DurationDays,
		Notes:        output.Notes,
		Active:       output.Active,
		Expired:      output.Expired,
		CreatedAt:    output.CreatedAt,
		UpdatedAt:    output.UpdatedAt,
	}
}

func FromDTOs(output app.RemindersOutput) RemindersResponse {
	reminders := make([]ReminderResponse, 0, len(output.Reminders))
	for _, r := range output.Reminders {
		reminders = append(reminders, FromDTO(r))
	}

	return RemindersResponse{
		Reminders: reminders,
		Count:     output.Count,
	}
}

func FromAlerts(alerts []notify.Alert) AlertsResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertResponse{
			ReminderID: a.ReminderID,
			Title:      a.Title,
			Body:       a.Body,
			At:         a.At,
		})
	}

	return AlertsResponse{
		Alerts: out,
		Count:  int32(len(out)), //nolint:gosec
	}
}
