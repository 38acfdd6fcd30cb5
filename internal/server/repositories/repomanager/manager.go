package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sensitivewords/internal/dbx"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/stats"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/words"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code on a pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Words(db dbx.DBTX) words.Repository
	Stats(db dbx.DBTX) stats.Repository
}
