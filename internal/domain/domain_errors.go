package domain

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")

	ErrInvalidClockTime = errors.New("invalid clock time: expected HH:MM in 24-hour format")
	ErrEmptyTimings     = errors.New("at least one timing is required")
	ErrNegativeDuration = errors.New("duration days cannot be negative")

	ErrInvalidReminderID = errors.New("invalid reminder ID")
)
