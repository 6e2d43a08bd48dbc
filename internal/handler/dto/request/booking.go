package request

import "time"

type CreateBookingRequest struct {
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
	DurationHours int       `json:"durationHours" binding:"required"`
	CleanerCount  int       `json:"cleanerCount" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required"`
}

type UpdateBookingRequest struct {
	NewStartDateTime time.Time `json:"newStartDateTime" binding:"required"`
}
