package response

import (
	"time"

	"cleaning-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                   uuid.UUID   `json:"id"`
	StartDateTime        time.Time   `json:"startDateTime"`
	EndDateTime          time.Time   `json:"endDateTime"`
	DurationHours        int         `json:"durationHours"`
	RequiredCleanerCount int         `json:"requiredCleanerCount"`
	CustomerName         string      `json:"customerName"`
	Status               string      `json:"status"`
	CleanerIDs           []uuid.UUID `json:"cleanerIds"`
	VehicleID            uuid.UUID   `json:"vehicleId"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                   v.ID,
		StartDateTime:        v.StartDateTime,
		EndDateTime:          v.EndDateTime,
		DurationHours:        v.DurationHours,
		RequiredCleanerCount: v.RequiredCleanerCount,
		CustomerName:         v.CustomerName,
		Status:               v.Status,
		CleanerIDs:           v.CleanerIDs,
		VehicleID:            v.VehicleID,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}
