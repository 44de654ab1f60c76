package app

import "time"

type CreateReminderInput struct {
	MedicineName string
	Dosage       string
	Timings      []string
	StartDate    time.Time
	DurationDays int
	Notes        string
}

type UpdateReminderInput struct {
	ID           string
	MedicineName string
	Dosage       string
	Timings      []string
	StartDate    time.Time
	DurationDays int
	Notes        string
	Active       bool
}

type SetReminderActiveInput struct {
	ID     string
	Active bool
}

type DeleteReminderInput struct {
	ID string
}

type MedicineInput struct {
	Name     string
	Dosage   string
	Timings  []string
	Duration string
	Notes    string
}

type DeriveFromPrescriptionInput struct {
	Medicines []MedicineInput
}
