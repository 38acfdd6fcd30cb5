package words

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, w *models.SensitiveWord) error
	GetByID(ctx context.Context, id string) (*models.SensitiveWord, error)
	List(ctx context.Context, activeOnly bool) ([]*models.SensitiveWord, error)
	ActiveWords(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, word, excludeID string) (bool, error)
	Update(ctx context.Context, w *models.SensitiveWord, expectedUpdatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	BulkInsert(ctx context.Context, ws []*models.SensitiveWord) (int, error)
}
