package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM within 00:00-23:59")
	ErrInvalidWeekday   = errors.New("unknown weekday name")
)

// TimeOfDay is a wall-clock time without a date, used for workday bounds.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

// On anchors the clock time to the date (and location) of day.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// WorkPolicy holds the company-wide scheduling rules: default workday
// bounds, the break buffer between consecutive bookings of one cleaner,
// and the weekly closing day.
type WorkPolicy struct {
	DayStart      TimeOfDay
	DayEnd        TimeOfDay
	Break         time.Duration
	ClosedWeekday time.Weekday
}

func NewWorkPolicy(dayStart, dayEnd TimeOfDay, breakBuffer time.Duration, closed time.Weekday) (WorkPolicy, error) {
	if !dayStart.On(time.Time{}).Before(dayEnd.On(time.Time{})) {
		return WorkPolicy{}, fmt.Errorf("workday start %s must be before end %s", dayStart, dayEnd)
	}
	if breakBuffer < 0 {
		return WorkPolicy{}, errors.New("break buffer must not be negative")
	}
	return WorkPolicy{
		DayStart:      dayStart,
		DayEnd:        dayEnd,
		Break:         breakBuffer,
		ClosedWeekday: closed,
	}, nil
}

func DefaultWorkPolicy() WorkPolicy {
	return WorkPolicy{
		DayStart:      TimeOfDay{hour: 8},
		DayEnd:        TimeOfDay{hour: 22},
		Break:         30 * time.Minute,
		ClosedWeekday: time.Friday,
	}
}

// Workday resolves the working interval for the given date. A cleaner may
// override either bound; each nil override falls back to the policy
// default independently.
func (p WorkPolicy) Workday(date time.Time, startOverride, endOverride *TimeOfDay) Interval {
	start := p.DayStart
	if startOverride != nil {
		start = *startOverride
	}
	end := p.DayEnd
	if endOverride != nil {
		end = *endOverride
	}
	return Interval{start: start.On(date), end: end.On(date)}
}

func (p WorkPolicy) ClosedOn(date time.Time) bool {
	return date.Weekday() == p.ClosedWeekday
}

// WithinWorkingHours reports whether both endpoints fall on the same
// calendar day and inside the default workday bounds.
func (p WorkPolicy) WithinWorkingHours(start, end time.Time) bool {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}
	return !start.Before(p.DayStart.On(start)) && !end.After(p.DayEnd.On(start))
}

func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, ErrInvalidWeekday
}
