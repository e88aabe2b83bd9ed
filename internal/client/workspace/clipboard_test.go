package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/toneflow/internal/client/repositories/kv"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	Text     string
	ReadErr  error
	WriteErr error
	Written  []string
}

func (f *fakeClipboard) ReadText(context.Context) (string, error) { return f.Text, f.ReadErr }

func (f *fakeClipboard) WriteText(_ context.Context, s string) error {
	f.Written = append(f.Written, s)
	return f.WriteErr
}

func TestPaste_AppendsToBuffer(t *testing.T) {
	b := NewBuffer(kv.NewMemoryStore(), "k", 0, logging.Discard())
	b.Set("Hi ")

	require.NoError(t, Paste(context.Background(), &fakeClipboard{Text: "there"}, b))
	assert.Equal(t, "Hi there", b.Text())
}

func TestPaste_ErrorLeavesBuffer(t *testing.T) {
	b := NewBuffer(kv.NewMemoryStore(), "k", 0, logging.Discard())
	b.Set("keep")

	err := Paste(context.Background(), &fakeClipboard{ReadErr: errors.New("denied")}, b)
	require.Error(t, err)
	assert.Equal(t, "keep", b.Text())
}

func TestCommandClipboard_Unconfigured(t *testing.T) {
	c := &CommandClipboard{}
	_, err := c.ReadText(context.Background())
	require.ErrorIs(t, err, common.ErrUnsupportedCapability)
	require.ErrorIs(t, c.WriteText(context.Background(), "x"), common.ErrUnsupportedCapability)
}

func TestCommandClipboard_RunsCommands(t *testing.T) {
	out := filepath.Join(t.TempDir(), "clip.txt")
	c := &CommandClipboard{PasteCommand: "echo pasted", CopyCommand: "tee " + out}

	s, err := c.ReadText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pasted\n", s)

	require.NoError(t, c.WriteText(context.Background(), "copied"))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "copied", string(b))
}

func TestCommandClipboard_CommandFails(t *testing.T) {
	c := &CommandClipboard{PasteCommand: "false", CopyCommand: "false"}
	_, err := c.ReadText(context.Background())
	require.Error(t, err)
	require.Error(t, c.WriteText(context.Background(), "x"))
}
