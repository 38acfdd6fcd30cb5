// Package stats provides PostgreSQL-backed operation counters.
package stats

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sensitivewords/internal/dbx"
	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Increment bumps the counter for (operationType, resourceType), creating
// the row on first use. The upsert is a single statement, so concurrent
// increments are never lost.
func (r *PostgresRepository) Increment(ctx context.Context, operationType, resourceType string) error {
	query := `
		INSERT INTO operation_stats (operation_type, resource_type, count, last_updated)
		VALUES ($1, $2, 1, now())
		ON CONFLICT (operation_type, resource_type)
		DO UPDATE SET count = operation_stats.count + 1, last_updated = now()`

	if _, err := r.db.ExecContext(ctx, query, operationType, resourceType); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const selectStats = `SELECT id, operation_type, resource_type, count, last_updated FROM operation_stats`

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.OperationStat, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []*models.OperationStat{}
	for rows.Next() {
		s := &models.OperationStat{}
		if err := rows.Scan(&s.ID, &s.OperationType, &s.ResourceType, &s.Count, &s.LastUpdated); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.OperationStat, error) {
	return r.query(ctx, selectStats+` ORDER BY operation_type, resource_type`)
}

func (r *PostgresRepository) ListByType(ctx context.Context, operationType string) ([]*models.OperationStat, error) {
	return r.query(ctx, selectStats+` WHERE operation_type = $1 ORDER BY resource_type`, operationType)
}

// Reset sets every counter back to zero. Rows are kept.
func (r *PostgresRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE operation_stats SET count = 0, last_updated = now()`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
