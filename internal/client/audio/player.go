package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/filex"
)

// Player plays a WAV image and returns when playback ends.
type Player interface {
	Play(ctx context.Context, wav []byte) error
}

// CommandPlayer writes the WAV to a temp file and runs Command with the
// file path appended, e.g. "afplay" or "aplay -q".
type CommandPlayer struct {
	Command string
}

var _ Player = (*CommandPlayer)(nil)

func (p *CommandPlayer) Play(ctx context.Context, wav []byte) error {
	fields := strings.Fields(p.Command)
	if len(fields) == 0 {
		return fmt.Errorf("audio player: %w", common.ErrUnsupportedCapability)
	}

	path, err := filex.WriteTemp("toneflow-*.wav", wav)
	if err != nil {
		return fmt.Errorf("audio player: %w", err)
	}
	defer os.Remove(path)

	args := append(fields[1:], path)
	out, err := exec.CommandContext(ctx, fields[0], args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("audio player: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
