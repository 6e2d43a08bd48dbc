package repository

import (
	"context"
	"errors"
	"log/slog"

	"cleaning-scheduler/internal/domain/booking"
	"cleaning-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository owns the write path: a booking row and its cleaner
// assignment rows always change in one transaction. Assignment rows carry
// the slot times so the database can reject overlapping assignments of
// the same cleaner via an exclusion constraint.
type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (id, start_datetime, end_datetime, duration_hours, required_cleaner_count, customer_name, status, vehicle_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const insertAssignmentSQL = `
INSERT INTO booking_cleaners (booking_id, cleaner_id, position, start_datetime, end_datetime)
VALUES ($1, $2, $3, $4, $5)`

const updateBookingSQL = `
UPDATE bookings
SET start_datetime = $2, end_datetime = $3, updated_at = now()
WHERE id = $1`

const deleteAssignmentsSQL = `
DELETE FROM booking_cleaners WHERE booking_id = $1`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	_, err = tx.Exec(ctx, insertBookingSQL,
		b.ID(), b.Slot().Start(), b.Slot().End(), b.DurationHours(),
		b.RequiredCleanerCount(), b.CustomerName(), string(b.Status()), b.VehicleID(),
	)
	if err != nil {
		return mapWriteErr("failed to insert booking", err)
	}

	if err := r.insertAssignments(ctx, tx, b); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to commit booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	tag, err := tx.Exec(ctx, updateBookingSQL, b.ID(), b.Slot().Start(), b.Slot().End())
	if err != nil {
		return mapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}

	if _, err := tx.Exec(ctx, deleteAssignmentsSQL, b.ID()); err != nil {
		return mapWriteErr("failed to clear booking assignments", err)
	}
	if err := r.insertAssignments(ctx, tx, b); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to commit booking update", err)
	}
	return nil
}

func (r *BookingRepository) insertAssignments(ctx context.Context, tx pgx.Tx, b *booking.Booking) error {
	for i, cleanerID := range b.CleanerIDs() {
		_, err := tx.Exec(ctx, insertAssignmentSQL,
			b.ID(), cleanerID, i, b.Slot().Start(), b.Slot().End(),
		)
		if err != nil {
			return mapWriteErr("failed to insert booking assignment", err)
		}
	}
	return nil
}

func mapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23P01", "40001": // unique, exclusion, serialization
			return infra.WrapRepoErr(infra.KindConflict, msg, err)
		case "23503":
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
