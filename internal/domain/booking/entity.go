package booking

import (
	"errors"
	"slices"

	"cleaning-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrCleanerCountMismatch = errors.New("assigned cleaners do not match the required count")

type Status string

const StatusConfirmed Status = "CONFIRMED"

// Booking is a confirmed appointment: a time slot, the customer, and the
// cleaners (all from one vehicle) serving it. Cleaners and the vehicle are
// referenced by id only.
type Booking struct {
	id                   uuid.UUID
	slot                 schedule.Interval
	requiredCleanerCount int
	customerName         string
	status               Status
	cleanerIDs           []uuid.UUID
	vehicleID            uuid.UUID
}

func NewBooking(
	slot schedule.Interval,
	requiredCleanerCount int,
	customerName string,
	cleanerIDs []uuid.UUID,
	vehicleID uuid.UUID,
) (*Booking, error) {
	if len(cleanerIDs) != requiredCleanerCount {
		return nil, ErrCleanerCountMismatch
	}
	return &Booking{
		id:                   uuid.New(),
		slot:                 slot,
		requiredCleanerCount: requiredCleanerCount,
		customerName:         customerName,
		status:               StatusConfirmed,
		cleanerIDs:           slices.Clone(cleanerIDs),
		vehicleID:            vehicleID,
	}, nil
}

// ReconstructBooking rebuilds a persisted booking without revalidating it.
func ReconstructBooking(
	id uuid.UUID,
	slot schedule.Interval,
	requiredCleanerCount int,
	customerName string,
	status Status,
	cleanerIDs []uuid.UUID,
	vehicleID uuid.UUID,
) *Booking {
	return &Booking{
		id:                   id,
		slot:                 slot,
		requiredCleanerCount: requiredCleanerCount,
		customerName:         customerName,
		status:               status,
		cleanerIDs:           slices.Clone(cleanerIDs),
		vehicleID:            vehicleID,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Slot() schedule.Interval  { return b.slot }
func (b *Booking) RequiredCleanerCount() int { return b.requiredCleanerCount }
func (b *Booking) CustomerName() string     { return b.customerName }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) VehicleID() uuid.UUID     { return b.vehicleID }

func (b *Booking) DurationHours() int {
	return b.slot.Hours()
}

func (b *Booking) CleanerIDs() []uuid.UUID {
	return slices.Clone(b.cleanerIDs)
}

// Reschedule moves the booking to a new slot keeping the given cleaners.
// The set must still match the required count; partial crews are rejected
// here so the caller can decide how to surface that.
func (b *Booking) Reschedule(slot schedule.Interval, cleanerIDs []uuid.UUID) error {
	if len(cleanerIDs) != b.requiredCleanerCount {
		return ErrCleanerCountMismatch
	}
	b.slot = slot
	b.cleanerIDs = slices.Clone(cleanerIDs)
	return nil
}
