package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sensitivewords/internal/sanitizer"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/repomanager"
)

// SanitizeService masks the currently active sensitive words in messages.
type SanitizeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSanitizeService(db *sql.DB, m repomanager.RepositoryManager) *SanitizeService {
	return &SanitizeService{db: db, repomanager: m}
}

// Sanitize fetches the active words once and masks them in message.
// An empty message is answered without touching the database. A failure to
// load the words is returned as is and no partial result is produced.
func (s *SanitizeService) Sanitize(ctx context.Context, message string) (sanitizer.Result, error) {
	if message == "" {
		return sanitizer.Result{}, nil
	}

	words, err := s.repomanager.Words(s.db).ActiveWords(ctx)
	if err != nil {
		return sanitizer.Result{}, err
	}

	return sanitizer.Sanitize(message, words), nil
}
