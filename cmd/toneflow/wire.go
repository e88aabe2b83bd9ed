package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/toneflow/internal/client/audio"
	"github.com/dmitrijs2005/toneflow/internal/client/cli"
	"github.com/dmitrijs2005/toneflow/internal/client/config"
	"github.com/dmitrijs2005/toneflow/internal/client/gateway"
	"github.com/dmitrijs2005/toneflow/internal/client/orchestrator"
	"github.com/dmitrijs2005/toneflow/internal/client/repositories/kv"
	"github.com/dmitrijs2005/toneflow/internal/client/services"
	"github.com/dmitrijs2005/toneflow/internal/client/workspace"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/filex"
	"github.com/dmitrijs2005/toneflow/internal/logging"
)

// openStore returns the configured store and a function releasing it.
func openStore(ctx context.Context, cfg *config.Config) (kv.Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return kv.NewMemoryStore(), func() error { return nil }, nil
	case config.StorePostgres:
		s, err := kv.Open(ctx, kv.DriverPostgres, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		path := cfg.SQLitePath()
		if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, nil, err
		}
		s, err := kv.Open(ctx, kv.DriverSQLite, path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
}

// newArchive returns nil when archiving is disabled.
func newArchive(ctx context.Context, cfg *config.Config) (audio.Archive, error) {
	switch cfg.ArchiveKind {
	case config.ArchiveDir:
		dir := cfg.ArchiveDir
		if dir == "" {
			dir = filepath.Join(cfg.DataDir, "speech")
		}
		return audio.NewDirArchive(dir), nil
	case config.ArchiveS3:
		return audio.NewS3Archive(ctx, audio.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	default:
		return nil, nil
	}
}

// newRecognizer returns nil when no dictation command is configured, which
// the panels report as unsupported.
func newRecognizer(cfg *config.Config) workspace.Recognizer {
	if cfg.DictationCommand == "" {
		return nil
	}
	return &workspace.CommandRecognizer{Command: cfg.DictationCommand}
}

// panels builds both orchestrator panels over buffers restored from store.
func panels(ctx context.Context, cfg *config.Config, store kv.Store, deps orchestrator.Deps,
	log logging.Logger) (*orchestrator.TextAnalysis, *orchestrator.DraftGenerator, []*workspace.Buffer) {
	text := workspace.NewBuffer(store, common.KeyTextAnalysisContent, cfg.DebounceInterval, log)
	msg := workspace.NewBuffer(store, common.KeyDraftGenMessage, cfg.DebounceInterval, log)
	instr := workspace.NewBuffer(store, common.KeyDraftGenInstruction, cfg.DebounceInterval, log)

	bufs := []*workspace.Buffer{text, msg, instr}
	for _, b := range bufs {
		if err := b.Load(ctx); err != nil {
			log.Warn(ctx, "failed to restore buffer", "key", b.Key(), "error", err)
		}
	}
	return orchestrator.NewTextAnalysis(deps, text), orchestrator.NewDraftGenerator(deps, msg, instr), bufs
}

func run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn(ctx, "failed to close store", "error", err)
		}
	}()

	archive, err := newArchive(ctx, cfg)
	if err != nil {
		return fmt.Errorf("speech archive: %w", err)
	}

	auth := services.NewAuthService(store, log)
	history := services.NewHistoryService(store, log, cfg.HistoryLimit)

	deps := orchestrator.Deps{
		Gateway: gateway.NewGemini(gateway.Options{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			TextModel:   cfg.TextModel,
			SpeechModel: cfg.SpeechModel,
			Voice:       cfg.Voice,
			Timeout:     cfg.RequestTimeout,
			Logger:      log,
		}),
		History:    history,
		Sessions:   auth,
		Player:     &audio.CommandPlayer{Command: cfg.PlayerCommand},
		Clipboard:  &workspace.CommandClipboard{PasteCommand: cfg.ClipboardPaste, CopyCommand: cfg.ClipboardCopy},
		Archive:    archive,
		Recognizer: newRecognizer(cfg),
		Logger:     log,
	}
	if cfg.APIKey == "" {
		log.Warn(ctx, "no API key configured; set GEMINI_API_KEY or -key")
	}

	text, drafts, bufs := panels(ctx, cfg, store, deps, log)
	defer func() {
		for _, b := range bufs {
			b.Flush()
		}
	}()

	cli.NewApp(auth, history, text, drafts, log).Run(ctx)
	return nil
}
