package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sensitivewords/internal/common"
	"github.com/dmitrijs2005/sensitivewords/internal/dbx"
	"github.com/dmitrijs2005/sensitivewords/internal/server/models"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/stats"
	"github.com/dmitrijs2005/sensitivewords/internal/server/repositories/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

// fakeWordsRepo keeps words in memory, keyed by id.
type fakeWordsRepo struct {
	byID map[string]*models.SensitiveWord

	activeCalls int

	activeErr error
	existsErr error
	updateErr error
	bulkErr   error
}

func newFakeWordsRepo(ws ...*models.SensitiveWord) *fakeWordsRepo {
	f := &fakeWordsRepo{byID: map[string]*models.SensitiveWord{}}
	for _, w := range ws {
		cp := *w
		f.byID[w.ID] = &cp
	}
	return f
}

func (f *fakeWordsRepo) Create(_ context.Context, w *models.SensitiveWord) error {
	for _, v := range f.byID {
		if v.Word == w.Word {
			return common.ErrAlreadyExists
		}
	}
	cp := *w
	f.byID[w.ID] = &cp
	return nil
}

func (f *fakeWordsRepo) GetByID(_ context.Context, id string) (*models.SensitiveWord, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeWordsRepo) List(_ context.Context, activeOnly bool) ([]*models.SensitiveWord, error) {
	var out []*models.SensitiveWord
	for _, v := range f.byID {
		if activeOnly && !v.IsActive {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeWordsRepo) ActiveWords(_ context.Context) ([]string, error) {
	f.activeCalls++
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	var out []string
	for _, v := range f.byID {
		if v.IsActive {
			out = append(out, v.Word)
		}
	}
	return out, nil
}

func (f *fakeWordsRepo) Exists(_ context.Context, word, excludeID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for id, v := range f.byID {
		if v.Word == word && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWordsRepo) Update(_ context.Context, w *models.SensitiveWord, expected time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cur, ok := f.byID[w.ID]
	if !ok || !cur.UpdatedAt.Equal(expected) {
		return common.ErrVersionConflict
	}
	cp := *w
	f.byID[w.ID] = &cp
	return nil
}

func (f *fakeWordsRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeWordsRepo) BulkInsert(_ context.Context, ws []*models.SensitiveWord) (int, error) {
	if f.bulkErr != nil {
		return 0, f.bulkErr
	}
	n := 0
	for _, w := range ws {
		if f.hasWord(w.Word) {
			continue
		}
		cp := *w
		f.byID[w.ID] = &cp
		n++
	}
	return n, nil
}

type increment struct{ op, res string }

type fakeStatsRepo struct {
	increments []increment
	rows       []*models.OperationStat
	lastType   string
	resets     int
	err        error
}

func (f *fakeStatsRepo) Increment(_ context.Context, op, res string) error {
	if f.err != nil {
		return f.err
	}
	f.increments = append(f.increments, increment{op, res})
	return nil
}

func (f *fakeStatsRepo) List(context.Context) ([]*models.OperationStat, error) {
	return f.rows, f.err
}

func (f *fakeStatsRepo) ListByType(_ context.Context, op string) ([]*models.OperationStat, error) {
	f.lastType = op
	return f.rows, f.err
}

func (f *fakeStatsRepo) Reset(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.resets++
	return nil
}

type fakeRepoManager struct {
	w *fakeWordsRepo
	s *fakeStatsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Words(dbx.DBTX) words.Repository            { return m.w }
func (m *fakeRepoManager) Stats(dbx.DBTX) stats.Repository            { return m.s }

func (f *fakeWordsRepo) hasWord(word string) bool {
	for _, v := range f.byID {
		if v.Word == word {
			return true
		}
	}
	return false
}
