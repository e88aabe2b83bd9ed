package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestReadEmail(t *testing.T) {
	var out bytes.Buffer
	got, err := ReadEmail(rdr("  ann@example.com \n"), &out)
	require.NoError(t, err)
	require.Equal(t, "ann@example.com", got)
	require.Equal(t, "Email: ", out.String())

	got, err = ReadEmail(rdr("bob@example.com"), &out)
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", got, "last line without newline")

	_, err = ReadEmail(rdr(""), &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	got, err := ReadPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Equal(t, "Password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = ReadPassword(&out)
	require.Error(t, err)
}

func TestReadBufferText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "stop on empty line", input: "Hi team,\nsee you at 5\n\nignored\n", expected: "Hi team,\nsee you at 5"},
		{name: "Windows CRLF", input: "a\r\nb\r\n\r\n", expected: "a\nb"},
		{name: "immediate blank line", input: "\n", expected: ""},
		{name: "EOF without trailing blank line", input: "a\nb", expected: "a\nb"},
		{name: "indentation kept", input: "  - item\n\n", expected: "  - item"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadBufferText(rdr(tc.input), "message", &out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
			require.Contains(t, out.String(), "Type the message.")
		})
	}
}

func TestReadLine(t *testing.T) {
	r := rdr("one\r\ntwo")
	l, ok := readLine(r)
	require.True(t, ok)
	require.Equal(t, "one", l)
	l, ok = readLine(r)
	require.True(t, ok)
	require.Equal(t, "two", l)
	_, ok = readLine(r)
	require.False(t, ok)
}
