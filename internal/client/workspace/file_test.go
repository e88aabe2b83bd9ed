package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/toneflow/internal/client/repositories/kv"
	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/dmitrijs2005/toneflow/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestLoadTextFile_PlainText(t *testing.T) {
	p := writeFile(t, "note.txt", []byte("Dear team,\nplease review.\n"))
	s, err := LoadTextFile(p)
	require.NoError(t, err)
	assert.Equal(t, "Dear team,\nplease review.\n", s)
}

func TestLoadTextFile_TextDescendantsAccepted(t *testing.T) {
	p := writeFile(t, "data.txt", []byte("a,b,c\n1,2,3\n4,5,6\n"))
	_, err := LoadTextFile(p)
	require.NoError(t, err)
}

func TestLoadTextFile_RejectsBinary(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	p := writeFile(t, "image.txt", png)

	_, err := LoadTextFile(p)
	require.ErrorIs(t, err, common.ErrUnsupportedFile)
}

func TestLoadTextFile_Missing(t *testing.T) {
	_, err := LoadTextFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestDropFile_Appends(t *testing.T) {
	b := NewBuffer(kv.NewMemoryStore(), "k", 0, logging.Discard())
	b.Set("Intro. ")

	require.NoError(t, DropFile(writeFile(t, "x.txt", []byte("Body.")), b))
	assert.Equal(t, "Intro. Body.", b.Text())

	bin := writeFile(t, "x.bin", []byte{0x00, 0x01, 0x02, 0x03})
	require.ErrorIs(t, DropFile(bin, b), common.ErrUnsupportedFile)
	assert.Equal(t, "Intro. Body.", b.Text())
}
