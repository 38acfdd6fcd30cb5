package stats

import (
	"context"

	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
)

type Repository interface {
	Increment(ctx context.Context, operationType, resourceType string) error
	List(ctx context.Context) ([]*models.OperationStat, error)
	ListByType(ctx context.Context, operationType string) ([]*models.OperationStat, error)
	Reset(ctx context.Context) error
}
