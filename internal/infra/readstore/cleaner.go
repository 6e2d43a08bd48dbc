package readstore

import (
	"context"
	"time"

	"cleaning-scheduler/internal/domain/schedule"
	"cleaning-scheduler/internal/infra"
	"cleaning-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CleanerReadStore serves the read side of the cleaner roster. ListAll
// keeps a stable vehicle/name ordering because the assignment strategy is
// first-fit over the order the rows come back in.
type CleanerReadStore struct {
	db *pgxpool.Pool
}

func NewCleanerReadStore(db *pgxpool.Pool) *CleanerReadStore {
	return &CleanerReadStore{db: db}
}

const listCleanersSQL = `
SELECT c.id, c.name, c.vehicle_id, v.name AS vehicle_name, c.work_start, c.work_end
FROM cleaners c
JOIN vehicles v ON v.id = c.vehicle_id
ORDER BY v.name, c.name`

func (s *CleanerReadStore) ListAll(ctx context.Context) ([]shared.CleanerRecord, error) {
	rows, err := s.db.Query(ctx, listCleanersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list cleaners", err)
	}
	defer rows.Close()

	var records []shared.CleanerRecord
	for rows.Next() {
		var rec shared.CleanerRecord
		var workStart, workEnd *string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.VehicleID, &rec.VehicleName, &workStart, &workEnd); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan cleaner row", err)
		}
		if rec.WorkStart, err = parseOverride(workStart); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid work_start override", err)
		}
		if rec.WorkEnd, err = parseOverride(workEnd); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid work_end override", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read cleaner rows", err)
	}
	return records, nil
}

const cleanerSlotsSQL = `
SELECT bc.booking_id, bc.cleaner_id, bc.start_datetime, bc.end_datetime
FROM booking_cleaners bc
JOIN bookings b ON b.id = bc.booking_id
WHERE bc.cleaner_id = $1
  AND b.status = 'CONFIRMED'
  AND bc.start_datetime >= $2
  AND bc.start_datetime < $3
ORDER BY bc.start_datetime`

func (s *CleanerReadStore) ListBookedSlots(ctx context.Context, cleanerID uuid.UUID, date time.Time) ([]shared.BookedSlot, error) {
	dayStart, dayEnd := dayBounds(date)
	rows, err := s.db.Query(ctx, cleanerSlotsSQL, cleanerID, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list booked slots", err)
	}
	defer rows.Close()

	return scanBookedSlots(rows)
}

func parseOverride(s *string) (*schedule.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := schedule.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
