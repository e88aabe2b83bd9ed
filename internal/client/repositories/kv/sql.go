package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/toneflow/internal/dbx"
	"github.com/jmoiron/sqlx"
)

// SQLStore keeps pairs in the kv table. Queries are written with ?
// placeholders and rebound for the driver, so the same code serves
// sqlite and postgres.
type SQLStore struct {
	db dbx.DBTX
	// conn is set when the store owns a pool (not a transaction) and can
	// start transactions of its own.
	conn *sqlx.DB
}

func NewSQLStore(db dbx.DBTX) *SQLStore {
	s := &SQLStore{db: db}
	if conn, ok := db.(*sqlx.DB); ok {
		s.conn = conn
	}
	return s
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, s.db.Rebind(`SELECT value FROM kv WHERE key = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`), key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM kv WHERE key = ?`), key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

type pair struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func (s *SQLStore) List(ctx context.Context) (map[string]string, error) {
	var rows []pair
	if err := s.db.SelectContext(ctx, &rows, `SELECT key, value FROM kv`); err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	result := make(map[string]string, len(rows))
	for _, r := range rows {
		result[r.Key] = r.Value
	}
	return result, nil
}

// Update runs fn inside a transaction when the store owns its pool.
// A store already bound to a transaction reads and writes through it.
//
// On postgres the transaction first takes an advisory lock on the key, so
// concurrent updates of one key run one after another even when the row
// does not exist yet. sqlite runs with a single connection and needs no
// lock.
func (s *SQLStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if s.conn == nil {
		return update(ctx, s, key, fn)
	}
	lock := s.conn.DriverName() == DriverPostgres
	return dbx.WithTx(ctx, s.conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if lock {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`SELECT pg_advisory_xact_lock(hashtext(?))`), key); err != nil {
				return fmt.Errorf("failed to lock kv[%s]: %w", key, err)
			}
		}
		return update(ctx, NewSQLStore(tx), key, fn)
	})
}

func update(ctx context.Context, s *SQLStore, key string, fn UpdateFunc) error {
	cur, ok, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(cur, ok)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, next)
}

// Close releases the pool, if the store owns one.
func (s *SQLStore) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
