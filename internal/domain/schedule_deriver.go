package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MedicineEntry is one AI-extracted medicine description: qualitative
// timing tags and a free-text duration phrase, produced upstream by the
// prescription summarization flow.
type MedicineEntry struct {
	Name     string
	Dosage   string
	Timings  []string
	Duration string
	Notes    string
}

const defaultDurationDays = 7

var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(day|week|month)s?`)

// timing tags form a closed set; anything unrecognized maps to the
// morning slot as a safe default.
var timingTagTimes = map[string]ClockTime{
	"morning":   {hour: 9, minute: 0},
	"afternoon": {hour: 14, minute: 0},
	"evening":   {hour: 19, minute: 0},
	"night":     {hour: 21, minute: 0},
}

// ScheduleDeriver turns prescription medicine entries into concrete
// reminders. It is pure data transformation and never fails: missing
// or malformed input fields degrade to defaults.
type ScheduleDeriver struct{}

func NewScheduleDeriver() *ScheduleDeriver {
	return &ScheduleDeriver{}
}

// TimeForTag maps a qualitative timing tag to its clock time.
func TimeForTag(tag string) ClockTime {
	if t, ok := timingTagTimes[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return t
	}

	return timingTagTimes["morning"]
}

// ParseDurationDays scans a free-text duration phrase for
// "<integer> <day|week|month>(s)" and converts it to days.
// Unparseable phrases ("as needed", "") default to 7 days.
func ParseDurationDays(phrase string) int {
	m := durationPattern.FindStringSubmatch(phrase)
	if m == nil {
		return defaultDurationDays
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultDurationDays
	}

	switch strings.ToLower(m[2]) {
	case "week":
		return value * 7
	case "month":
		return value * 30
	default:
		return value
	}
}

// Derive produces one active reminder per entry, starting at now.
func (d *ScheduleDeriver) Derive(entries []MedicineEntry, now time.Time) []*Reminder {
	reminders := make([]*Reminder, 0, len(entries))

	for _, entry := range entries {
		reminders = append(reminders, d.deriveOne(entry, now))
	}

	return reminders
}

func (d *ScheduleDeriver) deriveOne(entry MedicineEntry, now time.Time) *Reminder {
	times := make([]ClockTime, 0, len(entry.Timings))
	for _, tag := range entry.Timings {
		times = append(times, TimeForTag(tag))
	}

	if len(times) == 0 {
		times = append(times, TimeForTag("morning"))
	}

	// cannot fail: times is non-empty by construction
	timings, _ := NewTimings(times)

	return &Reminder{
		id:           NewReminderID(),
		medicineName: entry.Name,
		dosage:       entry.Dosage,
		timings:      timings,
		startDate:    now,
		durationDays: ParseDurationDays(entry.Duration),
		notes:        entry.Notes,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}
}
