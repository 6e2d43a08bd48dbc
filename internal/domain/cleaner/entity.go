package cleaner

import (
	"cleaning-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

// Vehicle groups cleaners that travel together; a booking is always
// served by cleaners of a single vehicle.
type Vehicle struct {
	ID   uuid.UUID
	Name string
}

// Cleaner is a flat record: it points at its vehicle by id and carries
// optional per-cleaner workday overrides. Nil overrides mean the policy
// defaults apply.
type Cleaner struct {
	ID        uuid.UUID
	Name      string
	VehicleID uuid.UUID
	WorkStart *schedule.TimeOfDay
	WorkEnd   *schedule.TimeOfDay
}
