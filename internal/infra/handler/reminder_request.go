package handler

import "time"

type CreateReminderRequest struct {
	MedicineName string    `json:"medicine_name" binding:"required"`
	Dosage       string    `json:"dosage" binding:"required"`
	Timings      []string  `json:"timings" binding:"required,min=1,dive,required"`
	StartDate    time.Time `json:"start_date"`
	DurationDays int       `json:"duration_days" binding:"min=0"`
	Notes        string    `json:"notes"`
}

type UpdateReminderRequest struct {
	MedicineName string    `json:"medicine_name" binding:"required"`
	Dosage       string    `json:"dosage" binding:"required"`
	Timings      []string  `json:"timings" binding:"required,min=1,dive,required"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	DurationDays int       `json:"duration_days" binding:"min=0"`
	Notes        string    `json:"notes"`
	Active       bool      `json:"active"`
}

type SetReminderActiveRequest struct {
	Active bool `json:"active"`
}

type MedicineRequest struct {
	Name     string   `json:"name" binding:"required"`
	Dosage   string   `json:"dosage"`
	Timings  []string `json:"timings"`
	Duration string   `json:"duration"`
	Notes    string   `json:"notes"`
}

type DeriveRemindersRequest struct {
	Medicines []MedicineRequest `json:"medicines" binding:"required,min=1,dive"`
}
