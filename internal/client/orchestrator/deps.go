package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/toneflow/internal/client/audio"
	"github.com/dmitrijs2005/toneflow/internal/client/gateway"
	"github.com/dmitrijs2005/toneflow/internal/client/models"
	"github.com/dmitrijs2005/toneflow/internal/client/services"
	"github.com/dmitrijs2005/toneflow/internal/client/workspace"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
)

// Sessions yields the active session; services.AuthService satisfies it.
type Sessions interface {
	Current() *models.Session
}

// Deps are the collaborators shared by both panels. Archive, Clipboard
// and Recognizer may be nil.
type Deps struct {
	Gateway    gateway.Gateway
	History    services.HistoryService
	Sessions   Sessions
	Player     audio.Player
	Archive    audio.Archive
	Clipboard  workspace.Clipboard
	Recognizer workspace.Recognizer
	Logger     logging.Logger
}

func (d *Deps) logger() logging.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}

var errNoSession = fmt.Errorf("%w: no active session", common.ErrValidation)

func blankInput(what string) error {
	return fmt.Errorf("%w: %s is empty", common.ErrValidation, what)
}

// record appends a history entry. Failures are logged, not surfaced.
func (d *Deps) record(ctx context.Context, s *models.Session, item models.HistoryItem) {
	if _, err := d.History.Append(ctx, s, item); err != nil {
		d.logger().Warn(ctx, "failed to record history", "type", item.Type, "error", err)
	}
}

// speak synthesizes text, archives it when an archive is configured and
// plays it.
func (d *Deps) speak(ctx context.Context, s *models.Session, text string) error {
	payload, err := d.Gateway.GenerateSpeech(ctx, text)
	if err != nil {
		return err
	}
	pcm, err := audio.DecodePCM(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrService, err)
	}
	wav := audio.WAV(pcm)

	if d.Archive != nil && s != nil {
		if loc, err := d.Archive.Save(ctx, s.Email, wav); err != nil {
			d.logger().Warn(ctx, "failed to archive speech", "error", err)
		} else {
			d.logger().Info(ctx, "speech archived", "location", loc, "duration", audio.Duration(pcm))
		}
	}

	if d.Player == nil {
		return fmt.Errorf("audio player: %w", common.ErrUnsupportedCapability)
	}
	return d.Player.Play(ctx, wav)
}

func (d *Deps) copyText(ctx context.Context, text string) error {
	if d.Clipboard == nil {
		return fmt.Errorf("clipboard: %w", common.ErrUnsupportedCapability)
	}
	return d.Clipboard.WriteText(ctx, text)
}

func (d *Deps) paste(ctx context.Context, buf *workspace.Buffer) error {
	if d.Clipboard == nil {
		return fmt.Errorf("clipboard: %w", common.ErrUnsupportedCapability)
	}
	return workspace.Paste(ctx, d.Clipboard, buf)
}

func dictationMessage(err error) string {
	if errors.Is(err, common.ErrUnsupportedCapability) {
		return MsgVoiceUnsupported
	}
	return MsgDictation
}
