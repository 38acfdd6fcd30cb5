// Package words provides the PostgreSQL-backed store of sensitive words.
package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sensitivewords/internal/common"
	"github.com/dmitrijs2005/sensitivewords/internal/dbx"
	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `SELECT id, word, is_active, created_at, updated_at FROM sensitive_words`

type scanner interface {
	Scan(dest ...any) error
}

func scanWord(s scanner) (*models.SensitiveWord, error) {
	w := &models.SensitiveWord{}
	if err := s.Scan(&w.ID, &w.Word, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return w, nil
}

func wrapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

// Create inserts a new word. A duplicate word yields common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, w *models.SensitiveWord) error {
	query := `
		INSERT INTO sensitive_words (id, word, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, w.ID, w.Word, w.IsActive, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.SensitiveWord, error) {
	w, err := scanWord(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return w, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.SensitiveWord, error) {
	return r.getOne(ctx, selectColumns+` WHERE id::text = $1`, id)
}

// List returns words ordered by text, optionally only the active ones.
func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*models.SensitiveWord, error) {
	query := selectColumns
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY word`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.SensitiveWord
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// ActiveWords returns the text of every active word.
func (r *PostgresRepository) ActiveWords(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT word FROM sensitive_words WHERE is_active`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// Exists reports whether word is stored under an id other than excludeID.
// Pass an empty excludeID to check all rows.
func (r *PostgresRepository) Exists(ctx context.Context, word, excludeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM sensitive_words WHERE word = $1 AND id::text <> $2)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, word, excludeID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

// Update writes w back only if the stored row still carries expectedUpdatedAt.
// Otherwise the row was changed (or removed) concurrently and
// common.ErrVersionConflict is returned.
func (r *PostgresRepository) Update(ctx context.Context, w *models.SensitiveWord, expectedUpdatedAt time.Time) error {
	query := `
		UPDATE sensitive_words
		SET word = $2, is_active = $3, updated_at = $4
		WHERE id::text = $1 AND updated_at = $5`

	res, err := r.db.ExecContext(ctx, query, w.ID, w.Word, w.IsActive, w.UpdatedAt, expectedUpdatedAt)
	if err != nil {
		return wrapErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrVersionConflict
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sensitive_words WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// BulkInsert inserts ws, silently skipping words that already exist, and
// returns the number of rows actually inserted.
func (r *PostgresRepository) BulkInsert(ctx context.Context, ws []*models.SensitiveWord) (int, error) {
	query := `
		INSERT INTO sensitive_words (id, word, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (word) DO NOTHING`

	inserted := 0
	for _, w := range ws {
		res, err := r.db.ExecContext(ctx, query, w.ID, w.Word, w.IsActive, w.CreatedAt, w.UpdatedAt)
		if err != nil {
			return inserted, fmt.Errorf("db error: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("db error: %w", err)
		}
		inserted += int(n)
	}
	return inserted, nil
}
