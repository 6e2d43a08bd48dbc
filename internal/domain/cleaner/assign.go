package cleaner

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNoVehicleWithCapacity = errors.New("no single vehicle has enough available cleaners")

// Candidate is a cleaner already known to be free for the requested slot.
type Candidate struct {
	CleanerID   uuid.UUID
	CleanerName string
	VehicleID   uuid.UUID
	VehicleName string
}

// AssignFunc picks the cleaners to serve a booking out of the available
// candidates. Implementations must be deterministic for a given candidate
// order.
type AssignFunc func(candidates []Candidate, required int) ([]Candidate, error)

// AssignSameVehicle groups candidates by vehicle, preserving the order in
// which each vehicle first appears, and takes the first required members
// of the first vehicle that has enough. It never mixes vehicles.
func AssignSameVehicle(candidates []Candidate, required int) ([]Candidate, error) {
	var vehicleOrder []uuid.UUID
	byVehicle := make(map[uuid.UUID][]Candidate)
	for _, c := range candidates {
		if _, seen := byVehicle[c.VehicleID]; !seen {
			vehicleOrder = append(vehicleOrder, c.VehicleID)
		}
		byVehicle[c.VehicleID] = append(byVehicle[c.VehicleID], c)
	}

	for _, vehicleID := range vehicleOrder {
		crew := byVehicle[vehicleID]
		if len(crew) >= required {
			return crew[:required:required], nil
		}
	}
	return nil, ErrNoVehicleWithCapacity
}
