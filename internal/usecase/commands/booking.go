package commands

import (
	"context"
	"errors"
	"time"

	"cleaning-scheduler/internal/domain/booking"
	"cleaning-scheduler/internal/domain/cleaner"
	"cleaning-scheduler/internal/domain/schedule"
	"cleaning-scheduler/internal/infra"
	"cleaning-scheduler/internal/pkg/clock"
	"cleaning-scheduler/internal/pkg/errs"
	"cleaning-scheduler/internal/usecase/queries"
	"cleaning-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoCleanersAvailable  = errors.New("no cleaners are available for the requested slot")
	ErrInsufficientCleaners = errors.New("not enough of the assigned cleaners are free at the new time")
	ErrBookingConflict      = errors.New("booking slot was taken concurrently")

	// Error marker for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CreateBookingInput struct {
	StartDateTime time.Time
	DurationHours int
	CleanerCount  int
	CustomerName  string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, newStart time.Time) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo shared.BookingRepository
	bookingRead shared.BookingReadStore
	cleanerRead shared.CleanerReadStore
	views       queries.BookingQueries
	validator   *booking.Validator
	assign      cleaner.AssignFunc
	policy      schedule.WorkPolicy
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo shared.BookingRepository,
	bookingRead shared.BookingReadStore,
	cleanerRead shared.CleanerReadStore,
	views queries.BookingQueries,
	validator *booking.Validator,
	assign cleaner.AssignFunc,
	policy schedule.WorkPolicy,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		bookingRead: bookingRead,
		cleanerRead: cleanerRead,
		views:       views,
		validator:   validator,
		assign:      assign,
		policy:      policy,
		clock:       clk,
	}
}

// CreateBooking validates the request, collects the cleaners free for the
// slot, assigns a same-vehicle crew and persists the result. Nothing is
// read from the stores until validation has passed.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error) {
	end := in.StartDateTime.Add(time.Duration(in.DurationHours) * time.Hour)
	if err := c.validator.Validate(booking.Request{
		Start:        in.StartDateTime,
		End:          end,
		CleanerCount: in.CleanerCount,
		Today:        c.clock.Today(),
	}); err != nil {
		return nil, err
	}

	slot, err := schedule.NewInterval(in.StartDateTime, end)
	if err != nil {
		return nil, booking.ErrInvalidTimeRange
	}

	candidates, err := c.availableCandidates(ctx, slot)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCleanersAvailable
	}

	crew, err := c.assign(candidates, in.CleanerCount)
	if err != nil {
		return nil, err
	}
	crewIDs := make([]uuid.UUID, 0, len(crew))
	for _, m := range crew {
		crewIDs = append(crewIDs, m.CleanerID)
	}

	entity, err := booking.NewBooking(slot, in.CleanerCount, in.CustomerName, crewIDs, crew[0].VehicleID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking")
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.views.GetBooking(ctx, entity.ID())
}

// UpdateBooking moves an existing booking to a new start, keeping its
// duration and crew size. Only the cleaners already assigned are
// considered; if any of them cannot make the new time the update is
// rejected and the original booking stays untouched.
func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, id uuid.UUID, newStart time.Time) (*queries.BookingView, error) {
	record, err := c.bookingRead.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newEnd := newStart.Add(time.Duration(record.DurationHours) * time.Hour)
	if err := c.validator.Validate(booking.Request{
		Start:        newStart,
		End:          newEnd,
		CleanerCount: record.RequiredCleanerCount,
		Today:        c.clock.Today(),
	}); err != nil {
		return nil, err
	}

	newSlot, err := schedule.NewInterval(newStart, newEnd)
	if err != nil {
		return nil, booking.ErrInvalidTimeRange
	}

	survivors := make([]uuid.UUID, 0, len(record.CleanerIDs))
	for _, cleanerID := range record.CleanerIDs {
		free, err := c.cleanerFreeAt(ctx, cleanerID, newSlot, record.ID)
		if err != nil {
			return nil, err
		}
		if free {
			survivors = append(survivors, cleanerID)
		}
	}
	if len(survivors) < record.RequiredCleanerCount {
		return nil, ErrInsufficientCleaners
	}

	oldSlot, err := schedule.NewInterval(record.StartDateTime, record.EndDateTime)
	if err != nil {
		return nil, errs.Wrap(err, "stored booking has invalid bounds")
	}
	entity := booking.ReconstructBooking(
		record.ID,
		oldSlot,
		record.RequiredCleanerCount,
		record.CustomerName,
		booking.Status(record.Status),
		record.CleanerIDs,
		record.VehicleID,
	)
	if err := entity.Reschedule(newSlot, survivors); err != nil {
		return nil, errs.Wrap(err, "failed to reschedule booking")
	}

	if err := c.bookingRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.views.GetBooking(ctx, entity.ID())
}

func (c *bookingCommandsImpl) availableCandidates(ctx context.Context, slot schedule.Interval) ([]cleaner.Candidate, error) {
	cleaners, err := c.cleanerRead.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	candidates := make([]cleaner.Candidate, 0, len(cleaners))
	for _, cl := range cleaners {
		slots, err := c.cleanerRead.ListBookedSlots(ctx, cl.ID, slot.Start())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		booked, err := shared.BookedIntervals(slots)
		if err != nil {
			return nil, err
		}
		if schedule.IsAvailable(slot, booked, c.policy.Break) {
			candidates = append(candidates, cleaner.Candidate{
				CleanerID:   cl.ID,
				CleanerName: cl.Name,
				VehicleID:   cl.VehicleID,
				VehicleName: cl.VehicleName,
			})
		}
	}
	return candidates, nil
}

func (c *bookingCommandsImpl) cleanerFreeAt(ctx context.Context, cleanerID uuid.UUID, slot schedule.Interval, ignoreBooking uuid.UUID) (bool, error) {
	slots, err := c.cleanerRead.ListBookedSlots(ctx, cleanerID, slot.Start())
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	booked, err := shared.BookedIntervals(slots)
	if err != nil {
		return false, err
	}
	return schedule.IsAvailableExcluding(slot, booked, ignoreBooking, c.policy.Break), nil
}
