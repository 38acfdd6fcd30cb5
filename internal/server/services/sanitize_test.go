package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sensitivewords/internal/sanitizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeService_Sanitize(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := newFakeWordsRepo(
		storedWord("1", "SELECT * FROM", true),
		storedWord("2", "SELECT", true),
		storedWord("3", "USERS", false),
	)
	s := NewSanitizeService(db, &fakeRepoManager{w: repo})

	got, err := s.Sanitize(context.Background(), "select * from users; SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, sanitizer.Result{
		Original:  "select * from users; SELECT 1",
		Sanitized: "************* users; ****** 1",
		Replaced:  2,
	}, got)
	assert.Equal(t, 1, repo.activeCalls)
}

func TestSanitizeService_EmptyMessageSkipsFetch(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := newFakeWordsRepo(storedWord("1", "DROP", true))
	repo.activeErr = errors.New("must not be called")
	s := NewSanitizeService(db, &fakeRepoManager{w: repo})

	got, err := s.Sanitize(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, sanitizer.Result{}, got)
	assert.Zero(t, repo.activeCalls)
}

func TestSanitizeService_FetchErrorPropagates(t *testing.T) {
	db, _ := newSQLMockDB(t)
	wantErr := errors.New("db down")
	repo := newFakeWordsRepo()
	repo.activeErr = wantErr
	s := NewSanitizeService(db, &fakeRepoManager{w: repo})

	got, err := s.Sanitize(context.Background(), "drop table")
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, sanitizer.Result{}, got)
}
