package workspace

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/toneflow/internal/common"
	"github.com/gabriel-vasile/mimetype"
)

// LoadTextFile reads path if its content sniffs as plain text (or a
// text/plain descendant such as CSV). Anything else is
// common.ErrUnsupportedFile.
func LoadTextFile(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	if !isPlainText(mt) {
		return "", fmt.Errorf("%w: %s is %s", common.ErrUnsupportedFile, path, mt.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func isPlainText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// DropFile appends the text of path to buf.
func DropFile(path string, buf *Buffer) error {
	text, err := LoadTextFile(path)
	if err != nil {
		return err
	}
	buf.Append(text)
	return nil
}
