// Package kv provides the string key-value store that backs users, the
// active session, per-user history and scratch buffers.
package kv

import "context"

// Store is a flat string key-value store. A missing key is reported by
// ok=false, not by an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}

// UpdateFunc computes a new value from the current one. ok is false when
// the key is absent.
type UpdateFunc func(current string, ok bool) (string, error)

// Updater is implemented by stores that can run a read-modify-write
// atomically.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Update applies fn to key. Stores implementing Updater do so atomically;
// for the rest it is a plain Get followed by Set, last write wins.
func Update(ctx context.Context, s Store, key string, fn UpdateFunc) error {
	if u, ok := s.(Updater); ok {
		return u.Update(ctx, key, fn)
	}
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
