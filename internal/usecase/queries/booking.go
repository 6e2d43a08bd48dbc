package queries

import (
	"context"
	"errors"
	"time"

	"cleaning-scheduler/internal/infra"
	"cleaning-scheduler/internal/pkg/errs"
	"cleaning-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingView is what the HTTP layer renders for a booking.
type BookingView struct {
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

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingReadStore
}

func NewBookingQueries(bookings shared.BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	record, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return toBookingView(record)
}

func toBookingView(record *shared.BookingRecord) (*BookingView, error) {
	var view BookingView
	if err := copier.Copy(&view, record); err != nil {
		return nil, errs.Wrap(err, "failed to convert booking record")
	}
	return &view, nil
}
