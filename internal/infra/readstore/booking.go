package readstore

import (
	"context"
	"errors"
	"time"

	"cleaning-scheduler/internal/infra"
	"cleaning-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingSQL = `
SELECT b.id, b.start_datetime, b.end_datetime, b.duration_hours, b.required_cleaner_count,
       b.customer_name, b.status, b.vehicle_id, b.created_at, b.updated_at,
       COALESCE(array_agg(bc.cleaner_id ORDER BY bc.position) FILTER (WHERE bc.cleaner_id IS NOT NULL), '{}') AS cleaner_ids
FROM bookings b
LEFT JOIN booking_cleaners bc ON bc.booking_id = b.id
WHERE b.id = $1
GROUP BY b.id`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingRecord, error) {
	var rec shared.BookingRecord
	err := s.db.QueryRow(ctx, findBookingSQL, id).Scan(
		&rec.ID, &rec.StartDateTime, &rec.EndDateTime, &rec.DurationHours,
		&rec.RequiredCleanerCount, &rec.CustomerName, &rec.Status, &rec.VehicleID,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.CleanerIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}
	return &rec, nil
}

const daySlotsSQL = `
SELECT bc.booking_id, bc.cleaner_id, bc.start_datetime, bc.end_datetime
FROM booking_cleaners bc
JOIN bookings b ON b.id = bc.booking_id
WHERE b.status = 'CONFIRMED'
  AND bc.start_datetime >= $1
  AND bc.start_datetime < $2
ORDER BY bc.start_datetime`

func (s *BookingReadStore) ListSlotsOnDate(ctx context.Context, date time.Time) ([]shared.BookedSlot, error) {
	dayStart, dayEnd := dayBounds(date)
	rows, err := s.db.Query(ctx, daySlotsSQL, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list day slots", err)
	}
	defer rows.Close()

	return scanBookedSlots(rows)
}

func scanBookedSlots(rows pgx.Rows) ([]shared.BookedSlot, error) {
	var slots []shared.BookedSlot
	for rows.Next() {
		var s shared.BookedSlot
		if err := rows.Scan(&s.BookingID, &s.CleanerID, &s.Start, &s.End); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booked slot", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booked slots", err)
	}
	return slots, nil
}
