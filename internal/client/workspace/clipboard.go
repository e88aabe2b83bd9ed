package workspace

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dmitrijs2005/toneflow/internal/common"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// CommandClipboard shells out to clipboard tools such as pbpaste/pbcopy
// or xclip. Commands are split on whitespace; no shell quoting.
type CommandClipboard struct {
	PasteCommand string
	CopyCommand  string
}

var _ Clipboard = (*CommandClipboard)(nil)

func command(ctx context.Context, line string) (*exec.Cmd, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, common.ErrUnsupportedCapability
	}
	return exec.CommandContext(ctx, fields[0], fields[1:]...), nil
}

func (c *CommandClipboard) ReadText(ctx context.Context) (string, error) {
	cmd, err := command(ctx, c.PasteCommand)
	if err != nil {
		return "", fmt.Errorf("clipboard paste: %w", err)
	}
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("clipboard paste: %w", err)
	}
	return string(out), nil
}

func (c *CommandClipboard) WriteText(ctx context.Context, text string) error {
	cmd, err := command(ctx, c.CopyCommand)
	if err != nil {
		return fmt.Errorf("clipboard copy: %w", err)
	}
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("clipboard copy: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Paste appends the clipboard contents to buf.
func Paste(ctx context.Context, clip Clipboard, buf *Buffer) error {
	text, err := clip.ReadText(ctx)
	if err != nil {
		return err
	}
	buf.Append(text)
	return nil
}
