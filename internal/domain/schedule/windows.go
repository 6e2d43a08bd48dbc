package schedule

import (
	"slices"
	"time"
)

// FreeWindows computes the gaps of a cleaner's workday that remain open
// around the given bookings.
//
// Each booking occupies its own span plus the break buffer after it; the
// buffer before a booking is deliberately not blocked out here, it is
// enforced by IsAvailable when a concrete slot is requested. Occupied
// spans falling entirely outside the workday are dropped, the rest are
// clamped to it. A window is emitted for every gap between the sorted
// occupied spans; zero-length windows are never produced.
func FreeWindows(workday Interval, booked []Interval, buffer time.Duration) []Interval {
	occupied := make([]Interval, 0, len(booked))
	for _, b := range booked {
		widened := Interval{start: b.start, end: b.end.Add(buffer)}
		clamped, ok := widened.Clamp(workday)
		if !ok {
			continue
		}
		occupied = append(occupied, clamped)
	}

	slices.SortStableFunc(occupied, func(a, b Interval) int {
		return a.start.Compare(b.start)
	})

	var windows []Interval
	cursor := workday.start
	for _, o := range occupied {
		if cursor.Before(o.start) {
			windows = append(windows, Interval{start: cursor, end: o.start})
		}
		// Occupied spans may nest or overlap; the cursor only moves forward.
		if o.end.After(cursor) {
			cursor = o.end
		}
	}
	if cursor.Before(workday.end) {
		windows = append(windows, Interval{start: cursor, end: workday.end})
	}
	return windows
}
