package schedule

import (
	"time"

	"github.com/google/uuid"
)

// BookedInterval is an already-confirmed slot of some cleaner, tagged with
// the booking it belongs to so that reschedule checks can ignore it.
type BookedInterval struct {
	BookingID uuid.UUID
	Slot      Interval
}

// IsAvailable reports whether requested fits alongside every existing
// booking with the break buffer respected on both sides. An empty
// schedule is always available. The scan short-circuits on the first
// conflict.
func IsAvailable(requested Interval, existing []BookedInterval, buffer time.Duration) bool {
	for _, booked := range existing {
		if requested.OverlapsWithBuffer(booked.Slot, buffer) {
			return false
		}
	}
	return true
}

// IsAvailableExcluding is the reschedule variant: bookings carrying
// ignoreID are skipped so a booking never conflicts with itself.
func IsAvailableExcluding(requested Interval, existing []BookedInterval, ignoreID uuid.UUID, buffer time.Duration) bool {
	for _, booked := range existing {
		if booked.BookingID == ignoreID {
			continue
		}
		if requested.OverlapsWithBuffer(booked.Slot, buffer) {
			return false
		}
	}
	return true
}
