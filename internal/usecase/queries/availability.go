package queries

import (
	"context"
	"time"

	"cleaning-scheduler/internal/domain/booking"
	"cleaning-scheduler/internal/domain/schedule"
	"cleaning-scheduler/internal/pkg/clock"
	"cleaning-scheduler/internal/pkg/errs"
	"cleaning-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// TimeWindowView is a free span of a cleaner's workday.
type TimeWindowView struct {
	Start time.Time
	End   time.Time
}

// CleanerAvailabilityView lists the free windows of one cleaner on a day.
type CleanerAvailabilityView struct {
	CleanerID   uuid.UUID
	CleanerName string
	VehicleID   uuid.UUID
	VehicleName string
	Windows     []TimeWindowView
}

// CleanerView identifies a cleaner able to take a concrete slot.
type CleanerView struct {
	CleanerID   uuid.UUID
	CleanerName string
	VehicleID   uuid.UUID
	VehicleName string
}

type AvailabilityQueries interface {
	// DayAvailability returns, per cleaner, the free windows of the given
	// date. Cleaners with no free window are omitted; a closed day yields
	// an empty result.
	DayAvailability(ctx context.Context, date time.Time) ([]CleanerAvailabilityView, error)
	// AvailableCleaners returns the cleaners free for the concrete slot
	// starting at start and running durationHours.
	AvailableCleaners(ctx context.Context, start time.Time, durationHours int) ([]CleanerView, error)
}

type availabilityQueriesImpl struct {
	cleaners shared.CleanerReadStore
	bookings shared.BookingReadStore
	policy   schedule.WorkPolicy
	clock    clock.Clock
}

func NewAvailabilityQueries(
	cleaners shared.CleanerReadStore,
	bookings shared.BookingReadStore,
	policy schedule.WorkPolicy,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		cleaners: cleaners,
		bookings: bookings,
		policy:   policy,
		clock:    clk,
	}
}

func (q *availabilityQueriesImpl) DayAvailability(ctx context.Context, date time.Time) ([]CleanerAvailabilityView, error) {
	if dayOf(date).Before(q.clock.Today()) {
		return nil, booking.ErrPastDate
	}
	if q.policy.ClosedOn(date) {
		return []CleanerAvailabilityView{}, nil
	}

	cleaners, err := q.cleaners.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list cleaners")
	}
	slots, err := q.bookings.ListSlotsOnDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list booked slots")
	}

	bookedByCleaner := make(map[uuid.UUID][]schedule.Interval)
	for _, s := range slots {
		iv, err := schedule.NewInterval(s.Start, s.End)
		if err != nil {
			return nil, errs.Wrap(err, "stored booking slot has invalid bounds")
		}
		bookedByCleaner[s.CleanerID] = append(bookedByCleaner[s.CleanerID], iv)
	}

	views := make([]CleanerAvailabilityView, 0, len(cleaners))
	for _, cl := range cleaners {
		workday := q.policy.Workday(date, cl.WorkStart, cl.WorkEnd)
		windows := schedule.FreeWindows(workday, bookedByCleaner[cl.ID], q.policy.Break)
		if len(windows) == 0 {
			continue
		}
		view := CleanerAvailabilityView{
			CleanerID:   cl.ID,
			CleanerName: cl.Name,
			VehicleID:   cl.VehicleID,
			VehicleName: cl.VehicleName,
			Windows:     make([]TimeWindowView, 0, len(windows)),
		}
		for _, w := range windows {
			view.Windows = append(view.Windows, TimeWindowView{Start: w.Start(), End: w.End()})
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *availabilityQueriesImpl) AvailableCleaners(ctx context.Context, start time.Time, durationHours int) ([]CleanerView, error) {
	if dayOf(start).Before(q.clock.Today()) {
		return nil, booking.ErrPastDate
	}
	if durationHours != 2 && durationHours != 4 {
		return nil, booking.ErrInvalidDuration
	}
	end := start.Add(time.Duration(durationHours) * time.Hour)
	if q.policy.ClosedOn(start) || !q.policy.WithinWorkingHours(start, end) {
		return []CleanerView{}, nil
	}

	slot, err := schedule.NewInterval(start, end)
	if err != nil {
		return nil, booking.ErrInvalidTimeRange
	}

	cleaners, err := q.cleaners.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list cleaners")
	}

	views := make([]CleanerView, 0, len(cleaners))
	for _, cl := range cleaners {
		slots, err := q.cleaners.ListBookedSlots(ctx, cl.ID, start)
		if err != nil {
			return nil, errs.Wrap(err, "failed to list booked slots")
		}
		booked, err := shared.BookedIntervals(slots)
		if err != nil {
			return nil, err
		}
		if schedule.IsAvailable(slot, booked, q.policy.Break) {
			views = append(views, CleanerView{
				CleanerID:   cl.ID,
				CleanerName: cl.Name,
				VehicleID:   cl.VehicleID,
				VehicleName: cl.VehicleName,
			})
		}
	}
	return views, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
