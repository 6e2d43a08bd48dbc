package shared

import (
	"context"
	"time"

	"cleaning-scheduler/internal/domain/booking"
	"cleaning-scheduler/internal/domain/schedule"
	"cleaning-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// CleanerRecord is the read-side projection of a cleaner joined with its
// vehicle. Workday overrides are nil when the cleaner follows the policy
// defaults.
type CleanerRecord struct {
	ID          uuid.UUID
	Name        string
	VehicleID   uuid.UUID
	VehicleName string
	WorkStart   *schedule.TimeOfDay
	WorkEnd     *schedule.TimeOfDay
}

// BookedSlot is one cleaner-assignment row of a confirmed booking.
type BookedSlot struct {
	BookingID uuid.UUID
	CleanerID uuid.UUID
	Start     time.Time
	End       time.Time
}

// BookingRecord is the full read-side projection of a booking.
type BookingRecord struct {
	ID                   uuid.UUID
	StartDateTime        time.Time
	EndDateTime          time.Time
	DurationHours        int
	RequiredCleanerCount int
	CustomerName         string
	Status               string
	CleanerIDs           []uuid.UUID
	VehicleID            uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type CleanerReadStore interface {
	ListAll(ctx context.Context) ([]CleanerRecord, error)
	// ListBookedSlots returns the confirmed slots of one cleaner on the
	// calendar day of date.
	ListBookedSlots(ctx context.Context, cleanerID uuid.UUID, date time.Time) ([]BookedSlot, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRecord, error)
	// ListSlotsOnDate returns every cleaner-assignment slot of the day.
	ListSlotsOnDate(ctx context.Context, date time.Time) ([]BookedSlot, error)
}

// BookingRepository is the write side. Implementations persist the
// booking and its cleaner assignments atomically and signal persist-time
// double bookings through the conflict error kind.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
}

// BookedIntervals converts store rows into the engine's interval form.
func BookedIntervals(slots []BookedSlot) ([]schedule.BookedInterval, error) {
	out := make([]schedule.BookedInterval, 0, len(slots))
	for _, s := range slots {
		iv, err := schedule.NewInterval(s.Start, s.End)
		if err != nil {
			return nil, errs.Wrap(err, "stored booking slot has invalid bounds")
		}
		out = append(out, schedule.BookedInterval{BookingID: s.BookingID, Slot: iv})
	}
	return out, nil
}
