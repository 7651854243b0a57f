package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

// attendances.employee_id has no foreign key: records outlive deleted employees.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		contact TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT employees_email_key UNIQUE (email),
		CONSTRAINT employees_contact_key UNIQUE (contact)
	)`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL,
		employee_name TEXT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		place_name TEXT,
		timestamp TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS attendances_employee_timestamp_idx ON attendances (employee_id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS attendances_timestamp_idx ON attendances (timestamp)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}
