package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armaan1925/medremind/internal/domain"
)

func TestParseClockTimeSuccess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "morning slot",
			input:    "09:00",
			expected: "09:00",
		},
		{
			name:     "single digit hour",
			input:    "9:05",
			expected: "09:05",
		},
		{
			name:     "midnight",
			input:    "00:00",
			expected: "00:00",
		},
		{
			name:     "last minute of day",
			input:    "23:59",
			expected: "23:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := domain.ParseClockTime(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ct.String())
		})
	}
}

func TestParseClockTimeError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "no separator",
			input: "0900",
		},
		{
			name:  "hour out of range",
			input: "24:00",
		},
		{
			name:  "minute out of range",
			input: "09:60",
		},
		{
			name:  "not a time",
			input: "morning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseClockTime(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidClockTime)
		})
	}
}

func TestClockTimeMinuteOfDay(t *testing.T) {
	assert.Equal(t, 0, domain.MustClockTime(0, 0).MinuteOfDay())
	assert.Equal(t, 9*60, domain.MustClockTime(9, 0).MinuteOfDay())
	assert.Equal(t, 21*60+30, domain.MustClockTime(21, 30).MinuteOfDay())
}

func TestClockTimeMatches(t *testing.T) {
	slot := domain.MustClockTime(9, 0)

	assert.True(t, slot.Matches(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
	assert.True(t, slot.Matches(time.Date(2026, 3, 1, 9, 0, 59, 0, time.UTC)))
	assert.False(t, slot.Matches(time.Date(2026, 3, 1, 9, 1, 0, 0, time.UTC)))
	assert.False(t, slot.Matches(time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)))
}

func TestNewTimingsSortsAndDeduplicates(t *testing.T) {
	timings, err := domain.NewTimings([]domain.ClockTime{
		domain.MustClockTime(21, 0),
		domain.MustClockTime(9, 0),
		domain.MustClockTime(21, 0),
		domain.MustClockTime(14, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:00", "21:00"}, timings.Strings())
	assert.Equal(t, 3, timings.Count())
}

func TestNewTimingsEmpty(t *testing.T) {
	_, err := domain.NewTimings(nil)

	assert.ErrorIs(t, err, domain.ErrEmptyTimings)
}

func TestParseTimings(t *testing.T) {
	timings, err := domain.ParseTimings([]string{"21:00", "09:00"})

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "21:00"}, timings.Strings())

	_, err = domain.ParseTimings([]string{"09:00", "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidClockTime)
}
