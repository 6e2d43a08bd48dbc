package response

import (
	"cleaning-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

const clockLayout = "15:04"

// TimeWindowResponse renders a free window as wall-clock times; the date
// is already fixed by the request.
type TimeWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CleanerResponse struct {
	CleanerID   uuid.UUID `json:"cleanerId"`
	CleanerName string    `json:"cleanerName"`
	VehicleID   uuid.UUID `json:"vehicleId"`
	VehicleName string    `json:"vehicleName"`
}

type CleanerAvailabilityResponse struct {
	CleanerResponse
	AvailableWindows []TimeWindowResponse `json:"availableWindows"`
}

func FromCleanerView(v queries.CleanerView) CleanerResponse {
	return CleanerResponse{
		CleanerID:   v.CleanerID,
		CleanerName: v.CleanerName,
		VehicleID:   v.VehicleID,
		VehicleName: v.VehicleName,
	}
}

func FromCleanerAvailabilityView(v queries.CleanerAvailabilityView) CleanerAvailabilityResponse {
	windows := make([]TimeWindowResponse, 0, len(v.Windows))
	for _, w := range v.Windows {
		windows = append(windows, TimeWindowResponse{
			Start: w.Start.Format(clockLayout),
			End:   w.End.Format(clockLayout),
		})
	}
	return CleanerAvailabilityResponse{
		CleanerResponse: CleanerResponse{
			CleanerID:   v.CleanerID,
			CleanerName: v.CleanerName,
			VehicleID:   v.VehicleID,
			VehicleName: v.VehicleName,
		},
		AvailableWindows: windows,
	}
}
