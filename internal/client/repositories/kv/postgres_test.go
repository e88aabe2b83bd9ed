package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgStoreWithMock(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLStore(sqlx.NewDb(db, DriverPostgres)), mock
}

func TestPostgres_GetUsesDollarPlaceholders(t *testing.T) {
	s, mock := newPgStoreWithMock(t)

	mock.ExpectQuery(`^SELECT value FROM kv WHERE key = \$1$`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("[]"))

	v, ok, err := s.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetNoRows(t *testing.T) {
	s, mock := newPgStoreWithMock(t)

	mock.ExpectQuery(`SELECT value FROM kv`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPostgres_SetUpsert(t *testing.T) {
	s, mock := newPgStoreWithMock(t)

	mock.ExpectExec(`(?s)INSERT INTO kv \(key, value\) VALUES \(\$1, \$2\)\s+ON CONFLICT\(key\) DO UPDATE`).
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_RemoveError(t *testing.T) {
	s, mock := newPgStoreWithMock(t)

	mock.ExpectExec(`DELETE FROM kv WHERE key = \$1`).
		WithArgs("k").
		WillReturnError(errors.New("db down"))

	err := s.Remove(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete kv[k]")
}

func TestPostgres_UpdateRunsInTransaction(t *testing.T) {
	s, mock := newPgStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)$`).
		WithArgs("history_a@x.com").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \$1`).
		WithArgs("history_a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))
	mock.ExpectExec(`INSERT INTO kv`).
		WithArgs("history_a@x.com", "[1]").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), "history_a@x.com", func(cur string, ok bool) (string, error) {
		assert.False(t, ok)
		return "[1]", nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateRollsBackOnSetError(t *testing.T) {
	s, mock := newPgStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT value FROM kv`).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("a"))
	mock.ExpectExec(`INSERT INTO kv`).
		WithArgs("k", "ab").
		WillReturnError(errors.New("write failed"))
	mock.ExpectRollback()

	err := s.Update(context.Background(), "k", func(cur string, _ bool) (string, error) {
		return cur + "b", nil
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateLockFailureSkipsWrite(t *testing.T) {
	s, mock := newPgStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).
		WithArgs("users").
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	called := false
	err := s.Update(context.Background(), "users", func(string, bool) (string, error) {
		called = true
		return "[]", nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to lock kv[users]")
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_UsesSeam(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		assert.Equal(t, ".", dir)
		return nil
	}
	require.NoError(t, RunMigrations(context.Background(), db, DriverPostgres))
	assert.True(t, called)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	err = RunMigrations(context.Background(), db, DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")

	require.Error(t, RunMigrations(context.Background(), db, "oracle"))
}
