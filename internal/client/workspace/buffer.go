package workspace

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/toneflow/internal/client/repositories/kv"
	"github.com/dmitrijs2005/toneflow/internal/logging"
)

// Buffer is a text input bound to a store key. Every change schedules a
// debounced write; a crash inside the debounce window loses the delta.
type Buffer struct {
	key   string
	store kv.Store
	log   logging.Logger
	deb   *Debouncer

	mu   sync.RWMutex
	text string
}

func NewBuffer(store kv.Store, key string, interval time.Duration, log logging.Logger) *Buffer {
	b := &Buffer{key: key, store: store, log: log}
	b.deb = NewDebouncer(interval, b.persist)
	return b
}

// Load replaces the in-memory text with the persisted value, if any.
func (b *Buffer) Load(ctx context.Context) error {
	v, ok, err := b.store.Get(ctx, b.key)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if ok {
		b.text = v
	} else {
		b.text = ""
	}
	return nil
}

func (b *Buffer) Key() string { return b.key }

func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Set replaces the text.
func (b *Buffer) Set(s string) {
	b.mu.Lock()
	b.text = s
	b.mu.Unlock()
	b.deb.Trigger()
}

// Append adds s to the end of the text.
func (b *Buffer) Append(s string) {
	if s == "" {
		return
	}
	b.mu.Lock()
	b.text += s
	b.mu.Unlock()
	b.deb.Trigger()
}

func (b *Buffer) Clear() { b.Set("") }

// WordCount counts whitespace separated words.
func (b *Buffer) WordCount() int {
	return len(strings.Fields(b.Text()))
}

// Flush writes a pending change immediately.
func (b *Buffer) Flush() { b.deb.Flush() }

func (b *Buffer) persist() {
	ctx := context.Background()
	if err := b.store.Set(ctx, b.key, b.Text()); err != nil {
		b.log.Warn(ctx, "failed to persist buffer", "key", b.key, "error", err)
		return
	}
	b.log.Debug(ctx, "buffer persisted", "key", b.key)
}
