package domain

import (
	"fmt"
	"sort"
	"time"
)

// ClockTime is a time-of-day slot in 24-hour format, independent of date.
type ClockTime struct {
	hour   int
	minute int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, hour, minute)
	}

	return ClockTime{hour: hour, minute: minute}, nil
}

func ParseClockTime(s string) (ClockTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	return NewClockTime(hour, minute)
}

func MustClockTime(hour, minute int) ClockTime {
	ct, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}

	return ct
}

func (c ClockTime) Hour() int {
	return c.hour
}

func (c ClockTime) Minute() int {
	return c.minute
}

func (c ClockTime) MinuteOfDay() int {
	return c.hour*60 + c.minute
}

// Matches reports whether t falls in this slot's wall-clock minute.
func (c ClockTime) Matches(t time.Time) bool {
	return t.Hour() == c.hour && t.Minute() == c.minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// Timings is an ordered set of time-of-day slots,
// de-duplicated and sorted ascending by minute of day.
type Timings []ClockTime

func NewTimings(times []ClockTime) (Timings, error) {
	if len(times) == 0 {
		return nil, ErrEmptyTimings
	}

	seen := make(map[int]struct{}, len(times))
	deduped := make([]ClockTime, 0, len(times))

	for _, t := range times {
		if _, ok := seen[t.MinuteOfDay()]; ok {
			continue
		}

		seen[t.MinuteOfDay()] = struct{}{}
		deduped = append(deduped, t)
	}

	sort.Slice(deduped, func(i, j int) bool {
		return deduped[i].MinuteOfDay() < deduped[j].MinuteOfDay()
	})

	return Timings(deduped), nil
}

func ParseTimings(values []string) (Timings, error) {
	times := make([]ClockTime, 0, len(values))
	for _, v := range values {
		ct, err := ParseClockTime(v)
		if err != nil {
			return nil, err
		}

		times = append(times, ct)
	}

	return NewTimings(times)
}

func (t Timings) ToSlice() []ClockTime {
	return t
}

func (t Timings) Count() int {
	return len(t)
}

func (t Timings) Strings() []string {
	out := make([]string, len(t))
	for i, ct := range t {
		out[i] = ct.String()
	}

	return out
}
