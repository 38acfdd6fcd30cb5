package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sensitivewords/internal/common"
	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/repomanager"
)

// StatsService exposes the operation counters.
type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewStatsService(db *sql.DB, m repomanager.RepositoryManager) *StatsService {
	return &StatsService{db: db, repomanager: m}
}

func (s *StatsService) Record(ctx context.Context, operationType, resourceType string) error {
	return s.repomanager.Stats(s.db).Increment(ctx, operationType, resourceType)
}

func (s *StatsService) List(ctx context.Context) ([]*models.OperationStat, error) {
	return s.repomanager.Stats(s.db).List(ctx)
}

// ListByType returns the counters of one operation type, matched
// case-insensitively. An unknown type yields an empty list.
func (s *StatsService) ListByType(ctx context.Context, operationType string) ([]*models.OperationStat, error) {
	op := strings.ToUpper(strings.TrimSpace(operationType))
	if op == "" {
		return nil, fmt.Errorf("%w: operation type must not be empty", common.ErrValidation)
	}
	return s.repomanager.Stats(s.db).ListByType(ctx, op)
}

func (s *StatsService) Reset(ctx context.Context) error {
	return s.repomanager.Stats(s.db).Reset(ctx)
}
