// README: Optional Postgres store for past packing-list runs.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles packing_runs persistence. It is optional: the pipeline
// runs without one, and write failures are logged by callers, never fatal.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the packing_runs table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS packing_runs (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			locations TEXT NOT NULL,
			duration_days INT NOT NULL,
			luggage_volume_l DOUBLE PRECISION NOT NULL,
			provider TEXT NOT NULL,
			parsed BOOLEAN NOT NULL,
			validation_message TEXT NOT NULL DEFAULT '',
			raw_response TEXT NOT NULL
		)
	`)
	return err
}

// Save inserts a run. ID and CreatedAt are filled in when zero.
func (s *Store) Save(ctx context.Context, run Run) (Run, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO packing_runs (id, created_at, locations, duration_days, luggage_volume_l, provider, parsed, validation_message, raw_response)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, run.ID, run.CreatedAt, run.Locations, run.DurationDays, run.LuggageVolumeL, run.Provider, run.Parsed, run.ValidationMessage, run.RawResponse)
	return run, err
}

// Recent returns the newest runs, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, created_at, locations, duration_days, luggage_volume_l, provider, parsed, validation_message, raw_response
		FROM packing_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Locations, &r.DurationDays, &r.LuggageVolumeL, &r.Provider, &r.Parsed, &r.ValidationMessage, &r.RawResponse); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
