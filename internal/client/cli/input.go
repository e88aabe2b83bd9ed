package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// ReadEmail asks for the account email on w and reads it from reader.
// Surrounding whitespace is dropped; io.EOF means nothing was typed.
func ReadEmail(reader *bufio.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Email: "); err != nil {
		return "", err
	}
	line, ok := readLine(reader)
	if !ok {
		return "", io.EOF
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword reads the account password from the terminal without echo.
func ReadPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// ReadBufferText collects the new content of the named buffer, one line
// at a time, until an empty line or EOF. Indentation inside the text is
// kept, so pasted messages keep their shape.
func ReadBufferText(reader *bufio.Reader, name string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "Type the %s. An empty line finishes it.\n", name); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, ok := readLine(reader)
		if !ok || line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// readLine reads one line from reader. ok is false on EOF with no input.
func readLine(reader *bufio.Reader) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
