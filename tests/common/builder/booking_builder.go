//go:build unit

package builder

import (
	"time"

	reqdto "cleaning-scheduler/internal/handler/dto/request"
	"cleaning-scheduler/internal/usecase/queries"
	"cleaning-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	StartDateTime time.Time
	DurationHours int
	CleanerCount  int
	CustomerName  string
	Status        string
	CleanerIDs    []uuid.UUID
	VehicleID     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            uuid.New(),
		StartDateTime: time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
		DurationHours: 2,
		CleanerCount:  2,
		CustomerName:  "Jane Doe",
		Status:        "CONFIRMED",
		CleanerIDs:    []uuid.UUID{uuid.New(), uuid.New()},
		VehicleID:     uuid.New(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StartDateTime: b.StartDateTime,
		DurationHours: b.DurationHours,
		CleanerCount:  b.CleanerCount,
		CustomerName:  b.CustomerName,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		NewStartDateTime: b.StartDateTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                   b.ID,
		StartDateTime:        b.StartDateTime,
		EndDateTime:          b.StartDateTime.Add(time.Duration(b.DurationHours) * time.Hour),
		DurationHours:        b.DurationHours,
		RequiredCleanerCount: b.CleanerCount,
		CustomerName:         b.CustomerName,
		Status:               b.Status,
		CleanerIDs:           b.CleanerIDs,
		VehicleID:            b.VehicleID,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildRecord() *shared.BookingRecord {
	return &shared.BookingRecord{
		ID:                   b.ID,
		StartDateTime:        b.StartDateTime,
		EndDateTime:          b.StartDateTime.Add(time.Duration(b.DurationHours) * time.Hour),
		DurationHours:        b.DurationHours,
		RequiredCleanerCount: b.CleanerCount,
		CustomerName:         b.CustomerName,
		Status:               b.Status,
		CleanerIDs:           b.CleanerIDs,
		VehicleID:            b.VehicleID,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithStart(start time.Time) *BookingBuilder {
	b.StartDateTime = start
	return b
}

func (b *BookingBuilder) WithDurationHours(hours int) *BookingBuilder {
	b.DurationHours = hours
	return b
}

func (b *BookingBuilder) WithCleanerCount(count int) *BookingBuilder {
	b.CleanerCount = count
	b.CleanerIDs = make([]uuid.UUID, count)
	for i := range b.CleanerIDs {
		b.CleanerIDs[i] = uuid.New()
	}
	return b
}

func (b *BookingBuilder) WithCleanerIDs(ids []uuid.UUID) *BookingBuilder {
	b.CleanerIDs = ids
	b.CleanerCount = len(ids)
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithVehicleID(id uuid.UUID) *BookingBuilder {
	b.VehicleID = id
	return b
}
