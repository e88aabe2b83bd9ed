package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/client/repositories/kv"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
)

// HistoryService is the per-user bounded log of successful operations.
//
// Append assigns an id and timestamp, inserts at the head and trims the
// list to the configured limit. List returns entries newest first; a
// missing or unreadable list is an empty history.
type HistoryService interface {
	Append(ctx context.Context, session *models.Session, item models.HistoryItem) (models.HistoryItem, error)
	List(ctx context.Context, email string) ([]models.HistoryItem, error)
	Stats(ctx context.Context, email string) (HistoryStats, error)
}

type historyService struct {
	store kv.Store
	log   logging.Logger
	limit int
	now   func() time.Time
}

// NewHistoryService constructs a HistoryService keeping at most limit
// entries per user. limit <= 0 selects common.DefaultHistoryLimit.
func NewHistoryService(store kv.Store, log logging.Logger, limit int) HistoryService {
	if limit <= 0 {
		limit = common.DefaultHistoryLimit
	}
	return &historyService{store: store, log: log, limit: limit, now: time.Now}
}

// NewHistoryID returns the generation time followed by 9 random base36
// characters.
func NewHistoryID(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano) + common.RandSuffix(9)
}

func (h *historyService) decode(ctx context.Context, email, raw string, ok bool) []models.HistoryItem {
	if !ok || raw == "" {
		return nil
	}
	var items []models.HistoryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		h.log.Warn(ctx, "history unreadable, treating as empty",
			"email", email, "error", fmt.Errorf("%w: %v", common.ErrPersistenceCorruption, err))
		return nil
	}
	return items
}

func (h *historyService) Append(ctx context.Context, session *models.Session, item models.HistoryItem) (models.HistoryItem, error) {
	if session == nil || common.IsBlank(session.Email) {
		return models.HistoryItem{}, fmt.Errorf("%w: no active session", common.ErrValidation)
	}

	now := h.now()
	item.ID = NewHistoryID(now)
	item.Timestamp = now.UTC()

	key := common.HistoryKey(session.Email)
	err := kv.Update(ctx, h.store, key, func(raw string, ok bool) (string, error) {
		items := h.decode(ctx, session.Email, raw, ok)
		items = append([]models.HistoryItem{item}, items...)
		if len(items) > h.limit {
			items = items[:h.limit]
		}
		b, err := json.Marshal(items)
		if err != nil {
			return "", err
		}
		return string(b), nil
	})
	if err != nil {
		return models.HistoryItem{}, fmt.Errorf("append history: %w", err)
	}

	h.log.Debug(ctx, "history appended", "email", session.Email, "type", item.Type, "id", item.ID)
	return item, nil
}

func (h *historyService) List(ctx context.Context, email string) ([]models.HistoryItem, error) {
	raw, ok, err := h.store.Get(ctx, common.HistoryKey(email))
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	items := h.decode(ctx, email, raw, ok)
	if items == nil {
		items = []models.HistoryItem{}
	}
	return items, nil
}
