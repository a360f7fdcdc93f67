package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/rumbus/shuttle/internal/pkg/database"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/services/stops"
)

// pgUniqueViolation is the postgres SQLSTATE for duplicate keys
const pgUniqueViolation = "23505"

// StopRepo implements stops.StopRepo on postgres
type StopRepo struct {
	db *sqlx.DB
}

// NewStopRepo creates a new stop repository
func NewStopRepo(client *database.PostgresClient) stops.StopRepo {
	return &StopRepo{db: client.GetDB()}
}

// ListStops returns every stop. The read is never cached so callers always see the current set.
func (r *StopRepo) ListStops(ctx context.Context) ([]*models.Stop, error) {
	query := `
		SELECT lat, lon, name
		FROM stops
		ORDER BY created_at
	`

	result := []*models.Stop{}
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, fmt.Errorf("%w: failed to list stops: %v", models.ErrStorageUnavailable, err)
	}

	return result, nil
}

// GetStop returns the stop registered at (lat, lon)
func (r *StopRepo) GetStop(ctx context.Context, lat, lon float64) (*models.Stop, error) {
	query := `
		SELECT lat, lon, name
		FROM stops
		WHERE lat = $1 AND lon = $2
	`

	var stop models.Stop
	if err := r.db.GetContext(ctx, &stop, query, lat, lon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrStopNotFound
		}
		return nil, fmt.Errorf("%w: failed to get stop: %v", models.ErrStorageUnavailable, err)
	}

	return &stop, nil
}

// CreateStop inserts a stop. A stop already registered at the same coordinates is a conflict.
func (r *StopRepo) CreateStop(ctx context.Context, stop *models.Stop) error {
	query := `
		INSERT INTO stops (lat, lon, name)
		VALUES (:lat, :lon, :name)
	`

	if _, err := r.db.NamedExecContext(ctx, query, stop); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.ErrStopConflict
		}
		return fmt.Errorf("%w: failed to create stop: %v", models.ErrStorageUnavailable, err)
	}

	return nil
}

// UpdateStopName renames the stop at (lat, lon)
func (r *StopRepo) UpdateStopName(ctx context.Context, lat, lon float64, name string) error {
	query := `
		UPDATE stops
		SET name = $3
		WHERE lat = $1 AND lon = $2
	`

	result, err := r.db.ExecContext(ctx, query, lat, lon, name)
	if err != nil {
		return fmt.Errorf("%w: failed to update stop: %v", models.ErrStorageUnavailable, err)
	}

	return expectOneRow(result)
}

// DeleteStop removes the stop at (lat, lon)
func (r *StopRepo) DeleteStop(ctx context.Context, lat, lon float64) error {
	query := `
		DELETE FROM stops
		WHERE lat = $1 AND lon = $2
	`

	result, err := r.db.ExecContext(ctx, query, lat, lon)
	if err != nil {
		return fmt.Errorf("%w: failed to delete stop: %v", models.ErrStorageUnavailable, err)
	}

	return expectOneRow(result)
}

func expectOneRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read affected rows: %v", models.ErrStorageUnavailable, err)
	}
	if rows == 0 {
		return models.ErrStopNotFound
	}
	return nil
}
