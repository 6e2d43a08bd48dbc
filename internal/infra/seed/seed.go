package seed

import (
	"context"
	"fmt"
	"log/slog"

	"cleaning-scheduler/internal/pkg/config"
	"cleaning-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The exclusion constraint on booking_cleaners is the persist-time guard
// against double-booking a cleaner: two transactions may both pass the
// in-memory availability check, but only one insert wins.
const schemaSQL = `
CREATE EXTENSION IF NOT EXISTS btree_gist;

CREATE TABLE IF NOT EXISTS vehicles (
    id uuid PRIMARY KEY,
    name text NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS cleaners (
    id uuid PRIMARY KEY,
    name text NOT NULL,
    vehicle_id uuid NOT NULL REFERENCES vehicles(id),
    work_start text,
    work_end text
);

CREATE TABLE IF NOT EXISTS bookings (
    id uuid PRIMARY KEY,
    start_datetime timestamptz NOT NULL,
    end_datetime timestamptz NOT NULL,
    duration_hours int NOT NULL,
    required_cleaner_count int NOT NULL,
    customer_name text NOT NULL,
    status text NOT NULL,
    vehicle_id uuid NOT NULL REFERENCES vehicles(id),
    created_at timestamptz NOT NULL DEFAULT now(),
    updated_at timestamptz NOT NULL DEFAULT now(),
    CHECK (start_datetime < end_datetime)
);

CREATE TABLE IF NOT EXISTS booking_cleaners (
    booking_id uuid NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    cleaner_id uuid NOT NULL REFERENCES cleaners(id),
    position int NOT NULL,
    start_datetime timestamptz NOT NULL,
    end_datetime timestamptz NOT NULL,
    PRIMARY KEY (booking_id, cleaner_id),
    EXCLUDE USING gist (cleaner_id WITH =, tstzrange(start_datetime, end_datetime) WITH &&)
);`

const (
	vehicleCount       = 5
	cleanersPerVehicle = 5
)

// EnsureSchema creates the tables on first start.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "failed to ensure schema")
	}
	return nil
}

// Run seeds the demo roster: 5 vehicles with 5 cleaners each, all on the
// default 08:00-22:00 workday. Skipped when any vehicle already exists.
func Run(ctx context.Context, db *pgxpool.Pool, cfg config.ScheduleConfig) error {
	if !cfg.SeedDemoData {
		return nil
	}

	var existing int
	if err := db.QueryRow(ctx, "SELECT count(*) FROM vehicles").Scan(&existing); err != nil {
		return errs.Wrap(err, "failed to count vehicles")
	}
	if existing > 0 {
		slog.Info("seed skipped, roster already present", "vehicles", existing)
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin seed transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for v := 1; v <= vehicleCount; v++ {
		vehicleID := uuid.New()
		vehicleName := fmt.Sprintf("Vehicle-%d", v)
		if _, err := tx.Exec(ctx,
			"INSERT INTO vehicles (id, name) VALUES ($1, $2)",
			vehicleID, vehicleName,
		); err != nil {
			return errs.Wrap(err, "failed to insert vehicle")
		}
		for c := 1; c <= cleanersPerVehicle; c++ {
			if _, err := tx.Exec(ctx,
				"INSERT INTO cleaners (id, name, vehicle_id, work_start, work_end) VALUES ($1, $2, $3, $4, $5)",
				uuid.New(), fmt.Sprintf("Cleaner-%d-%d", v, c), vehicleID, cfg.WorkStart, cfg.WorkEnd,
			); err != nil {
				return errs.Wrap(err, "failed to insert cleaner")
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit seed data")
	}
	slog.Info("seeded demo roster", "vehicles", vehicleCount, "cleaners", vehicleCount*cleanersPerVehicle)
	return nil
}
