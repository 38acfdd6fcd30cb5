// Package services contains server-side business logic: the sensitive word
// registry, message sanitization and operation statistics.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/sensitivewords/internal/common"
	"github.com/dmitrijs2005/sensitivewords/internal/dbx"
	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/repomanager"
)

// WordService manages the registry of sensitive words.
type WordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWordService(db *sql.DB, m repomanager.RepositoryManager) *WordService {
	return &WordService{db: db, repomanager: m}
}

func (s *WordService) List(ctx context.Context, activeOnly bool) ([]*models.SensitiveWord, error) {
	return s.repomanager.Words(s.db).List(ctx, activeOnly)
}

// Get returns the word with the given id or common.ErrorNotFound.
func (s *WordService) Get(ctx context.Context, id string) (*models.SensitiveWord, error) {
	return s.repomanager.Words(s.db).GetByID(ctx, id)
}

// Create normalizes text and stores it as a new active word.
// An existing word with the same text yields common.ErrAlreadyExists.
func (s *WordService) Create(ctx context.Context, text string) (*models.SensitiveWord, error) {
	w, err := models.NewSensitiveWord(text)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Words(s.db)
	exists, err := repo.Exists(ctx, w.Word, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: word %q", common.ErrAlreadyExists, w.Word)
	}

	if err := repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Update changes the text and/or active flag of a word. At least one of
// text and active must be set.
//
// The word is loaded, mutated and written back in one transaction; the write
// is conditional on the row being unchanged since it was loaded, so a
// concurrent update surfaces as common.ErrVersionConflict instead of being
// silently overwritten.
func (s *WordService) Update(ctx context.Context, id string, text *string, active *bool) error {
	if text == nil && active == nil {
		return fmt.Errorf("%w: nothing to update", common.ErrValidation)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Words(tx)

		w, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		loadedAt := w.UpdatedAt

		if text != nil {
			if err := w.Rename(*text); err != nil {
				return err
			}
			exists, err := repo.Exists(ctx, w.Word, w.ID)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: word %q", common.ErrAlreadyExists, w.Word)
			}
		}

		if active != nil {
			if *active {
				w.Activate()
			} else {
				w.Deactivate()
			}
		}

		return repo.Update(ctx, w, loadedAt)
	})
}

func (s *WordService) SetActive(ctx context.Context, id string, active bool) error {
	return s.Update(ctx, id, nil, &active)
}

func (s *WordService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Words(s.db).Delete(ctx, id)
}

// BulkImport normalizes texts and inserts the ones not stored yet, all in
// one transaction. Blank entries and duplicates are skipped; an entry that is
// too long fails the whole import. It returns the number of inserted words.
func (s *WordService) BulkImport(ctx context.Context, texts []string) (int, error) {
	seen := make(map[string]struct{}, len(texts))
	batch := make([]*models.SensitiveWord, 0, len(texts))

	for _, t := range texts {
		if models.NormalizeWord(t) == "" {
			continue
		}
		w, err := models.NewSensitiveWord(t)
		if err != nil {
			return 0, err
		}
		if _, dup := seen[w.Word]; dup {
			continue
		}
		seen[w.Word] = struct{}{}
		batch = append(batch, w)
	}

	if len(batch) == 0 {
		return 0, nil
	}

	var inserted int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		inserted, err = s.repomanager.Words(tx).BulkInsert(ctx, batch)
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
