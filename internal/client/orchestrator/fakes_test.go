package orchestrator

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"

	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/client/repositories/kv"
	"github.com/dmitrijs2005/toneflow/internal/client/services"
	"github.com/dmitrijs2005/toneflow/internal/client/workspace"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	tone     models.ToneAnalysis
	clarity  models.ClarityReport
	rewrite  string
	drafts   []models.Draft
	speech   string
	err      error
	speechFn func(ctx context.Context) error

	// block, when set, holds every call until it is closed.
	block chan struct{}
}

func (g *fakeGateway) enter(ctx context.Context, op string) error {
	g.mu.Lock()
	g.calls = append(g.calls, op)
	block := g.block
	g.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return g.err
}

func (g *fakeGateway) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func (g *fakeGateway) AnalyzeTone(ctx context.Context, _ string) (models.ToneAnalysis, error) {
	if err := g.enter(ctx, "tone"); err != nil {
		return models.ToneAnalysis{}, err
	}
	return g.tone, nil
}

func (g *fakeGateway) RewriteText(ctx context.Context, _, _ string) (string, error) {
	if err := g.enter(ctx, "rewrite"); err != nil {
		return "", err
	}
	return g.rewrite, nil
}

func (g *fakeGateway) CheckClarity(ctx context.Context, _ string) (models.ClarityReport, error) {
	if err := g.enter(ctx, "clarity"); err != nil {
		return models.ClarityReport{}, err
	}
	return g.clarity, nil
}

func (g *fakeGateway) GenerateDrafts(ctx context.Context, _, _ string) ([]models.Draft, error) {
	if err := g.enter(ctx, "drafts"); err != nil {
		return nil, err
	}
	return g.drafts, nil
}

func (g *fakeGateway) GenerateSpeech(ctx context.Context, _ string) (string, error) {
	if err := g.enter(ctx, "speech"); err != nil {
		return "", err
	}
	if g.speech != "" {
		return g.speech, nil
	}
	return base64.StdEncoding.EncodeToString(make([]byte, 480)), nil
}

type fakePlayer struct {
	mu     sync.Mutex
	played [][]byte
	err    error
}

func (p *fakePlayer) Play(_ context.Context, wav []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, wav)
	return p.err
}

func (p *fakePlayer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.played)
}

type fakeClipboard struct {
	text     string
	written  string
	readErr  error
	writeErr error
}

func (c *fakeClipboard) ReadText(context.Context) (string, error) { return c.text, c.readErr }

func (c *fakeClipboard) WriteText(_ context.Context, s string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.written = s
	return nil
}

// holdRecognizer emits nothing and ends when ctx is cancelled.
type holdRecognizer struct {
	started chan struct{}
}

func (r *holdRecognizer) Start(ctx context.Context) (<-chan workspace.Segment, error) {
	ch := make(chan workspace.Segment)
	go func() {
		defer close(ch)
		<-ctx.Done()
	}()
	if r.started != nil {
		close(r.started)
	}
	return ch, nil
}

type fakeSessions struct{ s *models.Session }

func (f fakeSessions) Current() *models.Session { return f.s }

type fixture struct {
	store   *kv.MemoryStore
	gw      *fakeGateway
	player  *fakePlayer
	clip    *fakeClipboard
	history services.HistoryService
	deps    Deps
}

const testEmail = "ann@example.com"

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemoryStore()
	f := &fixture{
		store:   store,
		gw:      &fakeGateway{},
		player:  &fakePlayer{},
		clip:    &fakeClipboard{},
		history: services.NewHistoryService(store, logging.Discard(), 0),
	}
	f.deps = Deps{
		Gateway:   f.gw,
		History:   f.history,
		Sessions:  fakeSessions{s: &models.Session{Email: testEmail}},
		Player:    f.player,
		Clipboard: f.clip,
		Logger:    logging.Discard(),
	}
	return f
}

func (f *fixture) buffer(key string) *workspace.Buffer {
	return workspace.NewBuffer(f.store, key, 0, logging.Discard())
}

func (f *fixture) textAnalysis(text string) *TextAnalysis {
	b := f.buffer(common.KeyTextAnalysisContent)
	b.Set(text)
	return NewTextAnalysis(f.deps, b)
}

func (f *fixture) historyItems(t *testing.T) []models.HistoryItem {
	t.Helper()
	items, err := f.history.List(context.Background(), testEmail)
	require.NoError(t, err)
	return items
}
