package domain

import (
	"time"
)

// Reminder is one scheduled medicine course.
type Reminder struct {
	id           ReminderID
	medicineName string
	dosage       string
	timings      Timings
	startDate    time.Time
	durationDays int
	notes        string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReminder(
	medicineName string,
	dosage string,
	timings Timings,
	startDate time.Time,
	durationDays int,
	notes string,
) (*Reminder, error) {
	if durationDays < 0 {
		return nil, ErrNegativeDuration
	}

	now := time.Now()

	return &Reminder{
		id:           NewReminderID(),
		medicineName: medicineName,
		dosage:       dosage,
		timings:      timings,
		startDate:    startDate,
		durationDays: durationDays,
		notes:        notes,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstitute(
	id ReminderID,
	medicineName string,
	dosage string,
	timings Timings,
	startDate time.Time,
	durationDays int,
	notes string,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Reminder {
	return &Reminder{
		id:           id,
		medicineName: medicineName,
		dosage:       dosage,
		timings:      timings,
		startDate:    startDate,
		durationDays: durationDays,
		notes:        notes,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Revise replaces every user-editable field, keeping id and createdAt.
func (r *Reminder) Revise(
	medicineName string,
	dosage string,
	timings Timings,
	startDate time.Time,
	durationDays int,
	notes string,
) error {
	if durationDays < 0 {
		return ErrNegativeDuration
	}

	r.medicineName = medicineName
	r.dosage = dosage
	r.timings = timings
	r.startDate = startDate
	r.durationDays = durationDays
	r.notes = notes
	r.updatedAt = time.Now()

	return nil
}

func (r *Reminder) SetActive(active bool) {
	if r.active == active {
		return
	}

	r.active = active
	r.updatedAt = time.Now()
}

// End returns the exclusive end instant of the course.
// A course with durationDays == 0 has an empty window and never fires.
func (r *Reminder) End() time.Time {
	return r.startDate.Add(time.Duration(r.durationDays) * 24 * time.Hour)
}

// InWindow reports whether now falls within [startDate, End()).
func (r *Reminder) InWindow(now time.Time) bool {
	return !now.Before(r.startDate) && now.Before(r.End())
}

func (r *Reminder) IsExpired(now time.Time) bool {
	return !now.Before(r.End())
}

// DueTimings returns the slots matching now's wall-clock minute,
// or nil when the reminder is inactive or outside its course window.
func (r *Reminder) DueTimings(now time.Time) []ClockTime {
	if !r.active || !r.InWindow(now) {
		return nil
	}

	var due []ClockTime
	for _, t := range r.timings {
		if t.Matches(now) {
			due = append(due, t)
		}
	}

	return due
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) MedicineName() string {
	return r.medicineName
}

func (r *Reminder) Dosage() string {
	return r.dosage
}

func (r *Reminder) Timings() Timings {
	return r.timings
}

func (r *Reminder) StartDate() time.Time {
	return r.startDate
}

func (r *Reminder) DurationDays() int {
	return r.durationDays
}

func (r *Reminder) Notes() string {
	return r.notes
}

func (r *Reminder) IsActive() bool {
	return r.active
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	return r.updatedAt
}
